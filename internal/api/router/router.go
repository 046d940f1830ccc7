package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/config"
	"github.com/yanggu0413/yles503-react/internal/api/handler"
	"github.com/yanggu0413/yles503-react/internal/api/middleware"
	"github.com/yanggu0413/yles503-react/internal/guard"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, g *guard.Guard, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders(cfg.API.Origin()))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 前台页面（无需登录） ──
	r.GET("/", h.Public.Home)
	r.GET("/announcements", h.Public.Announcements)
	r.GET("/assignments", h.Public.Assignments)
	r.GET("/assignments.ics", h.Public.AssignmentsCalendar)
	r.GET("/gallery", h.Public.Gallery)
	r.GET("/resources", h.Public.Resources)
	r.GET("/rules", h.Public.Rules)
	r.GET("/schedule", h.Public.Schedule)
	r.GET("/contact", h.Public.Contact)

	// ── 登录 / 登出 ──
	r.POST(cfg.Server.LoginPath, h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/session", h.Auth.Session)

	// ── 后台（路由守卫） ──
	admin := r.Group(cfg.Server.AdminPrefix)
	admin.Use(middleware.RequireSession(g))
	{
		admin.GET("", h.Dashboard.Stats)
		admin.GET("/layout", h.Dashboard.Layout)
		admin.GET("/me", h.Auth.Me)

		announcements := admin.Group("/announcements")
		{
			announcements.GET("", h.Announcement.List)
			announcements.POST("", h.Announcement.Create)
			announcements.PUT("/:id", h.Announcement.Update)
			announcements.DELETE("/:id", h.Announcement.Delete)
		}

		assignments := admin.Group("/assignments")
		{
			assignments.GET("", h.Assignment.List)
			assignments.POST("", h.Assignment.Create)
			assignments.PUT("/:id", h.Assignment.Update)
			assignments.DELETE("/:id", h.Assignment.Delete)
		}

		gallery := admin.Group("/gallery")
		{
			gallery.GET("", h.Gallery.List)
			gallery.POST("", middleware.BodyLimit(cfg.Server.MaxUploadSize), h.Gallery.Upload)
			gallery.PUT("/:id", h.Gallery.UpdateTitle)
			gallery.DELETE("/:id", h.Gallery.Delete)
		}

		resources := admin.Group("/resources")
		{
			resources.GET("", h.Resource.List)
			resources.POST("", h.Resource.Create)
			resources.PUT("/:id", h.Resource.Update)
			resources.DELETE("/:id", h.Resource.Delete)
		}

		rules := admin.Group("/rules")
		{
			rules.GET("", h.Rule.List)
			rules.POST("", h.Rule.Create)
			rules.PUT("/:id", h.Rule.Update)
			rules.DELETE("/:id", h.Rule.Delete)
		}

		users := admin.Group("/users")
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Create)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		schedule := admin.Group("/schedule")
		{
			schedule.GET("", h.Site.Schedule)
			schedule.PUT("", h.Site.UpdateSchedule)
			schedule.POST("/image", middleware.BodyLimit(cfg.Server.MaxUploadSize), h.Site.UploadScheduleImage)
			schedule.DELETE("/image", h.Site.DeleteScheduleImage)
		}

		admin.GET("/settings", h.Site.Settings)
		admin.PUT("/settings", h.Site.UpdateSettings)

		export := admin.Group("/export")
		{
			export.GET("/users", h.Export.ExportUsers)
			export.GET("/assignments", h.Export.ExportAssignments)
		}
	}

	// 未注册的后台路径同样先过守卫，未登录时跳转而不是 404
	r.NoRoute(middleware.RequireSession(g), func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "找不到頁面")
	})

	return r
}
