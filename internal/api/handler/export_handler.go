package handler

import (
	"bytes"
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportUsers 导出用户名单
// GET /admin/export/users
func (h *ExportHandler) ExportUsers(c *gin.Context) {
	h.export(c, h.exportSvc.ExportUsers)
}

// ExportAssignments 导出作业清单
// GET /admin/export/assignments
func (h *ExportHandler) ExportAssignments(c *gin.Context) {
	h.export(c, h.exportSvc.ExportAssignments)
}

func (h *ExportHandler) export(c *gin.Context, fn func(context.Context) (*bytes.Buffer, string, error)) {
	buf, filename, err := fn(c.Request.Context())
	if err != nil {
		respondError(c, err, "匯出失敗")
		return
	}
	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}
