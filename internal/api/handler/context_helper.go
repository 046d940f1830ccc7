package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/errmsg"
	"github.com/yanggu0413/yles503-react/internal/service"
	applogger "github.com/yanggu0413/yles503-react/pkg/logger"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// 常用提示
const (
	msgBadRequest   = "請求格式錯誤"
	msgInvalidID    = "無效的 ID"
	msgNoFile       = "請選擇要上傳的檔案"
	msgFileTooLarge = "檔案過大"
	msgLoginFirst   = "請先登入"
)

// MustGetID 解析路径参数 :id，失败时写入 400 并返回 false
// 调用方应在 ok=false 时直接 return。
func MustGetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.CodeInvalidParams, msgInvalidID)
		return 0, false
	}
	return id, true
}

// MustBindJSON 解析 JSON 请求体，失败时写入 400 并返回 false
func MustBindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		if isTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, msgFileTooLarge)
			return false
		}
		response.BadRequest(c, response.CodeInvalidParams, msgBadRequest)
		return false
	}
	return true
}

// MustGetUpload 读取 multipart 中的 file 字段
func MustGetUpload(c *gin.Context) (*dto.UploadFile, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(err)
		if isTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, msgFileTooLarge)
			return nil, false
		}
		response.BadRequest(c, response.CodeInvalidParams, msgNoFile)
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return nil, false
	}
	return &dto.UploadFile{Name: fh.Filename, Content: content}, true
}

// respondError 把 Service 返回的错误写入统一响应
//
// fallback 为页面级提示，非空时作为 message，分类后的具体原因放入 details；
// 为空时 message 直接使用分类后的提示。分类结果为空时 details 退回 fallback。
// API 的错误状态码原样透传，无响应映射为 502。
func respondError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		response.BadRequest(c, response.CodeInvalidParams, verr.Message)
		return
	}
	if errors.Is(err, service.ErrNotLoggedIn) {
		response.Unauthorized(c, response.CodeUnauthorized, msgLoginFirst)
		return
	}
	if errors.Is(err, service.ErrExportGenerateFail) {
		response.ErrorWithDetails(c, http.StatusInternalServerError, response.CodeInternal, fallback, err.Error())
		return
	}

	status, code := http.StatusInternalServerError, response.CodeInternal
	var (
		herr *client.HTTPError
		nerr *client.NetworkError
	)
	switch {
	case errors.As(err, &herr):
		status, code = herr.Status, response.CodeUpstream
	case errors.As(err, &nerr), errors.Is(err, service.ErrEmptyAccessToken):
		status, code = http.StatusBadGateway, response.CodeUpstreamNoReply
	}

	msg := errmsg.HandleAPIError(applogger.FromGin(c), err, fallback)
	if fallback == "" {
		response.Error(c, status, code, msg)
		return
	}
	response.ErrorWithDetails(c, status, code, fallback, msg)
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
