package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
)

// DashboardService 后台总览
type DashboardService interface {
	// Stats 并发获取公告、作业、用户、相簿四个列表并计数；
	// 任一请求失败整个面板失败，其余请求随 context 取消
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	api    *client.Client
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(api *client.Client, logger *zap.Logger) DashboardService {
	return &dashboardService{api: api, logger: logger}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.api.Announcement.List(gctx)
		stats.Announcements = len(list)
		return err
	})
	g.Go(func() error {
		list, err := s.api.Assignment.List(gctx)
		stats.Assignments = len(list)
		return err
	})
	g.Go(func() error {
		list, err := s.api.User.List(gctx)
		stats.Users = len(list)
		return err
	})
	g.Go(func() error {
		list, err := s.api.Gallery.List(gctx)
		stats.GalleryItems = len(list)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("总览数据载入失败", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
