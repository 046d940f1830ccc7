package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// PublicHandler 前台页面 HTTP 处理器
//
// 载入失败时 message 为各页面固定的提示，details 为错误分类后的原因。
type PublicHandler struct {
	publicSvc   service.PublicService
	calendarSvc service.CalendarService
}

// NewPublicHandler 创建 PublicHandler
func NewPublicHandler(publicSvc service.PublicService, calendarSvc service.CalendarService) *PublicHandler {
	return &PublicHandler{publicSvc: publicSvc, calendarSvc: calendarSvc}
}

// Home 首页
// GET /
func (h *PublicHandler) Home(c *gin.Context) {
	result, err := h.publicSvc.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入首頁資料，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Announcements 公告
// GET /announcements
func (h *PublicHandler) Announcements(c *gin.Context) {
	result, err := h.publicSvc.Announcements(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入公告，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Assignments 作业时间轴
// GET /assignments
func (h *PublicHandler) Assignments(c *gin.Context) {
	result, err := h.publicSvc.Assignments(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入作業，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// AssignmentsCalendar 作业截止日订阅
// GET /assignments.ics
func (h *PublicHandler) AssignmentsCalendar(c *gin.Context) {
	cal, err := h.calendarSvc.Assignments(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入作業，請稍後再試。")
		return
	}
	c.Header("Content-Disposition", `inline; filename="assignments.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}

// Gallery 相簿
// GET /gallery
func (h *PublicHandler) Gallery(c *gin.Context) {
	result, err := h.publicSvc.Gallery(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入相簿，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Resources 学习资源（按分类分组）
// GET /resources
func (h *PublicHandler) Resources(c *gin.Context) {
	result, err := h.publicSvc.Resources(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入資源，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Rules 班规
// GET /rules
func (h *PublicHandler) Rules(c *gin.Context) {
	result, err := h.publicSvc.Rules(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入班規，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Schedule 课表
// GET /schedule
func (h *PublicHandler) Schedule(c *gin.Context) {
	result, err := h.publicSvc.Schedule(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入課表，請稍後再試。")
		return
	}
	response.OK(c, result)
}

// Contact 联络资讯
// GET /contact
func (h *PublicHandler) Contact(c *gin.Context) {
	result, err := h.publicSvc.Contact(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入聯絡資訊，請稍後再試。")
		return
	}
	response.OK(c, result)
}
