package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/session"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Public       PublicService
	Announcement AnnouncementService
	Assignment   AssignmentService
	Gallery      GalleryService
	Resource     ResourceService
	Rule         RuleService
	User         UserService
	Site         SiteService
	Dashboard    DashboardService
	Export       ExportService
	Calendar     CalendarService
}

// Clock 当前时间来源，测试中可替换
type Clock func() time.Time

// NewService 创建 Service 聚合
//
// api 为唯一的 API 客户端；store 与注入 api 的是同一个会话实例。
func NewService(api *client.Client, store session.Store, logger *zap.Logger) *Service {
	return newService(api, store, time.Now, logger)
}

func newService(api *client.Client, store session.Store, now Clock, logger *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(api.Auth, store, logger),
		Public:       NewPublicService(api.Public, now, logger),
		Announcement: NewAnnouncementService(api.Announcement, logger),
		Assignment:   NewAssignmentService(api.Assignment, logger),
		Gallery:      NewGalleryService(api.Gallery, logger),
		Resource:     NewResourceService(api.Resource, logger),
		Rule:         NewRuleService(api.Rule, logger),
		User:         NewUserService(api.User, logger),
		Site:         NewSiteService(api.Site, api.Schedule, api.Public, logger),
		Dashboard:    NewDashboardService(api, logger),
		Export:       NewExportService(api.User, api.Assignment, now, logger),
		Calendar:     NewCalendarService(api.Public, now, logger),
	}
}
