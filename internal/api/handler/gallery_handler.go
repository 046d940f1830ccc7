package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// GalleryHandler 后台相簿
type GalleryHandler struct {
	gallerySvc service.GalleryService
}

// NewGalleryHandler 创建 GalleryHandler
func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

// List GET /admin/gallery
func (h *GalleryHandler) List(c *gin.Context) {
	list, err := h.gallerySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "無法載入相簿列表")
		return
	}
	if list == nil {
		list = []model.GalleryItem{}
	}
	response.OK(c, list)
}

// Upload 上传图片（multipart：file、title）
// POST /admin/gallery
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, ok := MustGetUpload(c)
	if !ok {
		return
	}
	item, err := h.gallerySvc.Upload(c.Request.Context(), c.PostForm("title"), file)
	if err != nil {
		respondError(c, err, "上傳失敗")
		return
	}
	response.CreatedWithMessage(c, "圖片上傳成功", item)
}

// UpdateTitle PUT /admin/gallery/:id
func (h *GalleryHandler) UpdateTitle(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}
	var req dto.GalleryItemRequest
	if !MustBindJSON(c, &req) {
		return
	}
	item, err := h.gallerySvc.UpdateTitle(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "更新失敗")
		return
	}
	response.OKWithMessage(c, "標題更新成功", item)
}

// Delete DELETE /admin/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}
	if err := h.gallerySvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "刪除失敗")
		return
	}
	response.OKWithMessage(c, "圖片刪除成功", nil)
}
