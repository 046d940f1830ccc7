package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// crudService 后台列表型资源的通用操作
type crudService[T any, R any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, req *R) (*T, error)
	Update(ctx context.Context, id int64, req *R) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// crudMessages 各操作的提示；失败提示为空时直接使用错误分类后的提示
type crudMessages struct {
	loadFailed   string
	created      string
	createFailed string
	updated      string
	updateFailed string
	deleted      string
}

type crudHandler[T any, R any] struct {
	svc crudService[T, R]
	msg crudMessages
}

// List GET /admin/<resource>
func (h *crudHandler[T, R]) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, h.msg.loadFailed)
		return
	}
	if list == nil {
		list = []T{}
	}
	response.OK(c, list)
}

// Create POST /admin/<resource>
func (h *crudHandler[T, R]) Create(c *gin.Context) {
	var req R
	if !MustBindJSON(c, &req) {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, h.msg.createFailed)
		return
	}
	response.CreatedWithMessage(c, h.msg.created, item)
}

// Update PUT /admin/<resource>/:id
func (h *crudHandler[T, R]) Update(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}
	var req R
	if !MustBindJSON(c, &req) {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, h.msg.updateFailed)
		return
	}
	response.OKWithMessage(c, h.msg.updated, item)
}

// Delete DELETE /admin/<resource>/:id
func (h *crudHandler[T, R]) Delete(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "刪除失敗")
		return
	}
	response.OKWithMessage(c, h.msg.deleted, nil)
}

// ────────────────────── 公告 ──────────────────────

// AnnouncementHandler 后台公告
type AnnouncementHandler struct {
	crudHandler[model.Announcement, dto.AnnouncementRequest]
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{crudHandler[model.Announcement, dto.AnnouncementRequest]{
		svc: svc,
		msg: crudMessages{
			loadFailed:   "無法載入公告列表",
			created:      "公告新增成功",
			createFailed: "新增失敗",
			updated:      "公告更新成功",
			updateFailed: "更新失敗",
			deleted:      "公告刪除成功",
		},
	}}
}

// ────────────────────── 作业 ──────────────────────

// AssignmentHandler 后台作业
type AssignmentHandler struct {
	crudHandler[model.Assignment, dto.AssignmentRequest]
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(svc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{crudHandler[model.Assignment, dto.AssignmentRequest]{
		svc: svc,
		msg: crudMessages{
			loadFailed:   "無法載入作業列表",
			created:      "作業新增成功",
			createFailed: "新增失敗",
			updated:      "作業更新成功",
			updateFailed: "更新失敗",
			deleted:      "作業刪除成功",
		},
	}}
}

// ────────────────────── 学习资源 ──────────────────────

// ResourceHandler 后台资源
type ResourceHandler struct {
	crudHandler[model.Resource, dto.ResourceRequest]
}

// NewResourceHandler 创建 ResourceHandler
func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{crudHandler[model.Resource, dto.ResourceRequest]{
		svc: svc,
		msg: crudMessages{
			loadFailed:   "無法載入資源列表",
			created:      "資源新增成功",
			createFailed: "新增失敗",
			updated:      "資源更新成功",
			updateFailed: "更新失敗",
			deleted:      "資源刪除成功",
		},
	}}
}

// ────────────────────── 班规 ──────────────────────

// RuleHandler 后台班规
type RuleHandler struct {
	crudHandler[model.Rule, dto.RuleRequest]
}

// NewRuleHandler 创建 RuleHandler
func NewRuleHandler(svc service.RuleService) *RuleHandler {
	return &RuleHandler{crudHandler[model.Rule, dto.RuleRequest]{
		svc: svc,
		msg: crudMessages{
			loadFailed:   "無法載入班規列表",
			created:      "班規新增成功",
			createFailed: "新增失敗",
			updated:      "班規更新成功",
			updateFailed: "更新失敗",
			deleted:      "班規刪除成功",
		},
	}}
}

// ────────────────────── 用户 ──────────────────────

// UserHandler 后台用户
// 新增与更新失败时直接显示 API 给出的原因
type UserHandler struct {
	crudHandler[model.User, dto.UserRequest]
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{crudHandler[model.User, dto.UserRequest]{
		svc: svc,
		msg: crudMessages{
			loadFailed: "無法載入使用者列表",
			created:    "使用者新增成功",
			updated:    "使用者更新成功",
			deleted:    "使用者刪除成功",
		},
	}}
}
