package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// SiteHandler 站台设定与课表管理
type SiteHandler struct {
	siteSvc service.SiteService
}

// NewSiteHandler 创建 SiteHandler
func NewSiteHandler(siteSvc service.SiteService) *SiteHandler {
	return &SiteHandler{siteSvc: siteSvc}
}

// ── 站台设定 ──

// Settings GET /admin/settings
func (h *SiteHandler) Settings(c *gin.Context) {
	result, err := h.siteSvc.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入站台設定")
		return
	}
	response.OK(c, result)
}

// UpdateSettings PUT /admin/settings
func (h *SiteHandler) UpdateSettings(c *gin.Context) {
	var req dto.SiteSettingsRequest
	if !MustBindJSON(c, &req) {
		return
	}
	result, err := h.siteSvc.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "更新失敗")
		return
	}
	response.OKWithMessage(c, "站台設定已更新", result)
}

// ── 课表 ──

// Schedule GET /admin/schedule
func (h *SiteHandler) Schedule(c *gin.Context) {
	result, err := h.siteSvc.Schedule(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入課表資料")
		return
	}
	response.OK(c, result)
}

// UpdateSchedule PUT /admin/schedule（JSON 数组）
func (h *SiteHandler) UpdateSchedule(c *gin.Context) {
	var rows []model.ScheduleRow
	if !MustBindJSON(c, &rows) {
		return
	}
	if err := h.siteSvc.UpdateSchedule(c.Request.Context(), rows); err != nil {
		respondError(c, err, "更新失敗")
		return
	}
	response.OKWithMessage(c, "課表已更新", nil)
}

// UploadScheduleImage POST /admin/schedule/image（multipart：file）
func (h *SiteHandler) UploadScheduleImage(c *gin.Context) {
	file, ok := MustGetUpload(c)
	if !ok {
		return
	}
	result, err := h.siteSvc.UploadScheduleImage(c.Request.Context(), file)
	if err != nil {
		respondError(c, err, "上傳失敗")
		return
	}
	response.OKWithMessage(c, "課表圖片上傳成功", result)
}

// DeleteScheduleImage DELETE /admin/schedule/image
func (h *SiteHandler) DeleteScheduleImage(c *gin.Context) {
	if err := h.siteSvc.DeleteScheduleImage(c.Request.Context()); err != nil {
		respondError(c, err, "刪除失敗")
		return
	}
	response.OKWithMessage(c, "課表圖片已刪除", nil)
}
