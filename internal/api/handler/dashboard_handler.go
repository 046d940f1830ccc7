package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/present"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// DashboardHandler 后台总览与版面
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	authSvc      service.AuthService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService, authSvc service.AuthService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, authSvc: authSvc}
}

// Stats 总览统计
// GET /admin
func (h *DashboardHandler) Stats(c *gin.Context) {
	result, err := h.dashboardSvc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入總覽數據，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// layoutResponse 后台版面：菜单、面包屑与当前帐号
type layoutResponse struct {
	Menu        []present.MenuItem `json:"menu"`
	Breadcrumbs []present.Crumb    `json:"breadcrumbs"`
	Account     string             `json:"account,omitempty"`
}

// Layout 后台版面
// GET /admin/layout?path=/admin/users
func (h *DashboardHandler) Layout(c *gin.Context) {
	path := c.DefaultQuery("path", "/admin")

	resp := layoutResponse{
		Menu:        present.AdminMenu,
		Breadcrumbs: present.Breadcrumbs(path),
	}
	// 帐号只用于显示，取不到时版面照常返回
	if user, err := h.authSvc.CurrentUser(c.Request.Context()); err == nil {
		resp.Account = user.Account
	}
	response.OK(c, resp)
}
