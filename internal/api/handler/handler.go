package handler

import (
	"github.com/yanggu0413/yles503-react/config"
	"github.com/yanggu0413/yles503-react/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Public       *PublicHandler
	Dashboard    *DashboardHandler
	Announcement *AnnouncementHandler
	Assignment   *AssignmentHandler
	Gallery      *GalleryHandler
	Resource     *ResourceHandler
	Rule         *RuleHandler
	User         *UserHandler
	Site         *SiteHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, cfg.Server.LoginPath),
		Public:       NewPublicHandler(svc.Public, svc.Calendar),
		Dashboard:    NewDashboardHandler(svc.Dashboard, svc.Auth),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Assignment:   NewAssignmentHandler(svc.Assignment),
		Gallery:      NewGalleryHandler(svc.Gallery),
		Resource:     NewResourceHandler(svc.Resource),
		Rule:         NewRuleHandler(svc.Rule),
		User:         NewUserHandler(svc.User),
		Site:         NewSiteHandler(svc.Site),
		Export:       NewExportHandler(svc.Export),
	}
}
