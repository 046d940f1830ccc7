package client

import (
	"context"

	"github.com/yanggu0413/yles503-react/internal/model"
)

// PublicAPI 前台公开接口，无需登录
type PublicAPI interface {
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	ListAssignments(ctx context.Context) ([]model.Assignment, error)
	ListGallery(ctx context.Context) ([]model.GalleryItem, error)
	ListResources(ctx context.Context) ([]model.Resource, error)
	ListRules(ctx context.Context) ([]model.Rule, error)
	GetSchedule(ctx context.Context) ([]model.ScheduleRow, error)
	GetSite(ctx context.Context) (*model.SiteSettings, error)
}

type publicAPI struct {
	t *transport
}

func (a *publicAPI) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var out []model.Announcement
	if err := a.t.get(ctx, "/announcements", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	var out []model.Assignment
	if err := a.t.get(ctx, "/assignments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	var out []model.GalleryItem
	if err := a.t.get(ctx, "/gallery", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) ListResources(ctx context.Context) ([]model.Resource, error) {
	var out []model.Resource
	if err := a.t.get(ctx, "/resources", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) ListRules(ctx context.Context) ([]model.Rule, error) {
	var out []model.Rule
	if err := a.t.get(ctx, "/rules", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) GetSchedule(ctx context.Context) ([]model.ScheduleRow, error) {
	var out []model.ScheduleRow
	if err := a.t.get(ctx, "/schedule", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *publicAPI) GetSite(ctx context.Context) (*model.SiteSettings, error) {
	var out model.SiteSettings
	if err := a.t.get(ctx, "/site", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
