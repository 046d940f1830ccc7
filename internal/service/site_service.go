package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// SiteService 站台设定与课表管理
type SiteService interface {
	Settings(ctx context.Context) (*model.SiteSettings, error)
	UpdateSettings(ctx context.Context, req *dto.SiteSettingsRequest) (*model.SiteSettings, error)

	// Schedule 后台课表页与前台读取相同的数据（课表 + 站台设定中的图片）
	Schedule(ctx context.Context) (*dto.ScheduleView, error)
	UpdateSchedule(ctx context.Context, rows []model.ScheduleRow) error
	UploadScheduleImage(ctx context.Context, file *dto.UploadFile) (*model.ScheduleImage, error)
	DeleteScheduleImage(ctx context.Context) error
}

type siteService struct {
	site     client.SiteAPI
	schedule client.ScheduleAPI
	public   client.PublicAPI
	logger   *zap.Logger
}

// NewSiteService 创建 SiteService 实例
func NewSiteService(site client.SiteAPI, schedule client.ScheduleAPI, public client.PublicAPI, logger *zap.Logger) SiteService {
	return &siteService{site: site, schedule: schedule, public: public, logger: logger}
}

func (s *siteService) Settings(ctx context.Context) (*model.SiteSettings, error) {
	return s.site.Get(ctx)
}

func (s *siteService) UpdateSettings(ctx context.Context, req *dto.SiteSettingsRequest) (*model.SiteSettings, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.site.Update(ctx, req)
}

func (s *siteService) Schedule(ctx context.Context) (*dto.ScheduleView, error) {
	return scheduleView(ctx, s.public)
}

func (s *siteService) UpdateSchedule(ctx context.Context, rows []model.ScheduleRow) error {
	if rows == nil {
		rows = []model.ScheduleRow{}
	}
	return s.schedule.Update(ctx, rows)
}

func (s *siteService) UploadScheduleImage(ctx context.Context, file *dto.UploadFile) (*model.ScheduleImage, error) {
	if err := validateUpload(file); err != nil {
		return nil, err
	}
	img, err := s.schedule.UploadImage(ctx, file)
	if err != nil {
		return nil, err
	}
	s.logger.Info("课表图片已上传", zap.String("url", img.ImageURL))
	return img, nil
}

func (s *siteService) DeleteScheduleImage(ctx context.Context) error {
	return s.schedule.DeleteImage(ctx)
}
