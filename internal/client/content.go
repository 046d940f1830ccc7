package client

import (
	"context"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// ── 公告 ──

// AnnouncementAPI 后台公告接口 /admin/announcements
type AnnouncementAPI interface {
	List(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type announcementAPI struct {
	crud crud[model.Announcement]
}

func (a *announcementAPI) List(ctx context.Context) ([]model.Announcement, error) {
	return a.crud.list(ctx)
}

func (a *announcementAPI) Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	return a.crud.create(ctx, req)
}

func (a *announcementAPI) Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	return a.crud.update(ctx, id, req)
}

func (a *announcementAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}

// ── 作业 ──

// AssignmentAPI 后台作业接口 /admin/assignments
type AssignmentAPI interface {
	List(ctx context.Context) ([]model.Assignment, error)
	Create(ctx context.Context, req *dto.AssignmentRequest) (*model.Assignment, error)
	Update(ctx context.Context, id int64, req *dto.AssignmentRequest) (*model.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

type assignmentAPI struct {
	crud crud[model.Assignment]
}

func (a *assignmentAPI) List(ctx context.Context) ([]model.Assignment, error) {
	return a.crud.list(ctx)
}

func (a *assignmentAPI) Create(ctx context.Context, req *dto.AssignmentRequest) (*model.Assignment, error) {
	return a.crud.create(ctx, req)
}

func (a *assignmentAPI) Update(ctx context.Context, id int64, req *dto.AssignmentRequest) (*model.Assignment, error) {
	return a.crud.update(ctx, id, req)
}

func (a *assignmentAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}

// ── 学习资源 ──

// ResourceAPI 后台资源接口 /admin/resources
type ResourceAPI interface {
	List(ctx context.Context) ([]model.Resource, error)
	Create(ctx context.Context, req *dto.ResourceRequest) (*model.Resource, error)
	Update(ctx context.Context, id int64, req *dto.ResourceRequest) (*model.Resource, error)
	Delete(ctx context.Context, id int64) error
}

type resourceAPI struct {
	crud crud[model.Resource]
}

func (a *resourceAPI) List(ctx context.Context) ([]model.Resource, error) {
	return a.crud.list(ctx)
}

func (a *resourceAPI) Create(ctx context.Context, req *dto.ResourceRequest) (*model.Resource, error) {
	return a.crud.create(ctx, req)
}

func (a *resourceAPI) Update(ctx context.Context, id int64, req *dto.ResourceRequest) (*model.Resource, error) {
	return a.crud.update(ctx, id, req)
}

func (a *resourceAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}

// ── 班规 ──

// RuleAPI 后台班规接口 /admin/rules
type RuleAPI interface {
	List(ctx context.Context) ([]model.Rule, error)
	Create(ctx context.Context, req *dto.RuleRequest) (*model.Rule, error)
	Update(ctx context.Context, id int64, req *dto.RuleRequest) (*model.Rule, error)
	Delete(ctx context.Context, id int64) error
}

type ruleAPI struct {
	crud crud[model.Rule]
}

func (a *ruleAPI) List(ctx context.Context) ([]model.Rule, error) {
	return a.crud.list(ctx)
}

func (a *ruleAPI) Create(ctx context.Context, req *dto.RuleRequest) (*model.Rule, error) {
	return a.crud.create(ctx, req)
}

func (a *ruleAPI) Update(ctx context.Context, id int64, req *dto.RuleRequest) (*model.Rule, error) {
	return a.crud.update(ctx, id, req)
}

func (a *ruleAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}
