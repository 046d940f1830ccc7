package client

import (
	"context"
	"net/http"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// SiteAPI 站台设定 /admin/site（单例）
type SiteAPI interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, req *dto.SiteSettingsRequest) (*model.SiteSettings, error)
}

type siteAPI struct {
	t *transport
}

func (a *siteAPI) Get(ctx context.Context) (*model.SiteSettings, error) {
	var out model.SiteSettings
	if err := a.t.get(ctx, "/admin/site", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *siteAPI) Update(ctx context.Context, req *dto.SiteSettingsRequest) (*model.SiteSettings, error) {
	var out model.SiteSettings
	if err := a.t.sendJSON(ctx, http.MethodPut, "/admin/site", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScheduleAPI 课表 /admin/schedule
// 表格形式的课表服务端尚未实现，前台目前以课表图片为主
type ScheduleAPI interface {
	Get(ctx context.Context) ([]model.ScheduleRow, error)
	Update(ctx context.Context, rows []model.ScheduleRow) error
	UploadImage(ctx context.Context, file *dto.UploadFile) (*model.ScheduleImage, error)
	DeleteImage(ctx context.Context) error
}

type scheduleAPI struct {
	t *transport
}

func (a *scheduleAPI) Get(ctx context.Context) ([]model.ScheduleRow, error) {
	var out []model.ScheduleRow
	if err := a.t.get(ctx, "/admin/schedule", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *scheduleAPI) Update(ctx context.Context, rows []model.ScheduleRow) error {
	return a.t.sendJSON(ctx, http.MethodPost, "/admin/schedule", rows, nil)
}

func (a *scheduleAPI) UploadImage(ctx context.Context, file *dto.UploadFile) (*model.ScheduleImage, error) {
	var out model.ScheduleImage
	if err := a.t.postMultipart(ctx, "/admin/schedule/image", nil, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *scheduleAPI) DeleteImage(ctx context.Context) error {
	return a.t.delete(ctx, "/admin/schedule/image")
}
