package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// 后台内容管理：表单校验通过后才会发出请求，校验失败返回 *dto.ValidationError

// ────────────────────── 公告 ──────────────────────

// AnnouncementService 后台公告管理
type AnnouncementService interface {
	// List 按建立时间从新到旧
	List(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type announcementService struct {
	api    client.AnnouncementAPI
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(api client.AnnouncementAPI, logger *zap.Logger) AnnouncementService {
	return &announcementService{api: api, logger: logger}
}

func (s *announcementService) List(ctx context.Context) ([]model.Announcement, error) {
	list, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortAnnouncements(list), nil
}

func (s *announcementService) Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Create(ctx, req)
}

func (s *announcementService) Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *announcementService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}

// ────────────────────── 作业 ──────────────────────

// AssignmentService 后台作业管理
type AssignmentService interface {
	// List 按截止日期从晚到早
	List(ctx context.Context) ([]model.Assignment, error)
	Create(ctx context.Context, req *dto.AssignmentRequest) (*model.Assignment, error)
	Update(ctx context.Context, id int64, req *dto.AssignmentRequest) (*model.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

type assignmentService struct {
	api    client.AssignmentAPI
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(api client.AssignmentAPI, logger *zap.Logger) AssignmentService {
	return &assignmentService{api: api, logger: logger}
}

func (s *assignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	list, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortAssignments(list), nil
}

func (s *assignmentService) Create(ctx context.Context, req *dto.AssignmentRequest) (*model.Assignment, error) {
	// 新增表单默认状态为 open
	if req.Status == "" {
		req.Status = model.AssignmentOpen
	}
	if err := prepareAssignment(req); err != nil {
		return nil, err
	}
	return s.api.Create(ctx, req)
}

func (s *assignmentService) Update(ctx context.Context, id int64, req *dto.AssignmentRequest) (*model.Assignment, error) {
	if err := prepareAssignment(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *assignmentService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}

// prepareAssignment 校验表单并把截止日期统一为 YYYY-MM-DD
func prepareAssignment(req *dto.AssignmentRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	deadline, err := model.ParseTime(strings.TrimSpace(req.Deadline))
	if err != nil {
		return &dto.ValidationError{Field: "Deadline", Message: "請選擇期限"}
	}
	req.Deadline = deadline.Format(model.DateLayout)
	return nil
}

// ────────────────────── 学习资源 ──────────────────────

// ResourceService 后台资源管理，列表保持 API 顺序
type ResourceService interface {
	List(ctx context.Context) ([]model.Resource, error)
	Create(ctx context.Context, req *dto.ResourceRequest) (*model.Resource, error)
	Update(ctx context.Context, id int64, req *dto.ResourceRequest) (*model.Resource, error)
	Delete(ctx context.Context, id int64) error
}

type resourceService struct {
	api    client.ResourceAPI
	logger *zap.Logger
}

// NewResourceService 创建 ResourceService 实例
func NewResourceService(api client.ResourceAPI, logger *zap.Logger) ResourceService {
	return &resourceService{api: api, logger: logger}
}

func (s *resourceService) List(ctx context.Context) ([]model.Resource, error) {
	return s.api.List(ctx)
}

func (s *resourceService) Create(ctx context.Context, req *dto.ResourceRequest) (*model.Resource, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Create(ctx, req)
}

func (s *resourceService) Update(ctx context.Context, id int64, req *dto.ResourceRequest) (*model.Resource, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *resourceService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}

// ────────────────────── 班规 ──────────────────────

// RuleService 后台班规管理
type RuleService interface {
	List(ctx context.Context) ([]model.Rule, error)
	Create(ctx context.Context, req *dto.RuleRequest) (*model.Rule, error)
	Update(ctx context.Context, id int64, req *dto.RuleRequest) (*model.Rule, error)
	Delete(ctx context.Context, id int64) error
}

type ruleService struct {
	api    client.RuleAPI
	logger *zap.Logger
}

// NewRuleService 创建 RuleService 实例
func NewRuleService(api client.RuleAPI, logger *zap.Logger) RuleService {
	return &ruleService{api: api, logger: logger}
}

func (s *ruleService) List(ctx context.Context) ([]model.Rule, error) {
	return s.api.List(ctx)
}

func (s *ruleService) Create(ctx context.Context, req *dto.RuleRequest) (*model.Rule, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Create(ctx, req)
}

func (s *ruleService) Update(ctx context.Context, id int64, req *dto.RuleRequest) (*model.Rule, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *ruleService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}
