package response

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// ── 业务码 ──

const (
	CodeOK              = 0
	CodeInvalidParams   = 10001 // 表单校验失败或请求体无法解析
	CodeUnauthorized    = 10002 // 会话中没有 Token
	CodeNotFound        = 10004
	CodeBodyTooLarge    = 10005
	CodeUpstream        = 20001 // API 返回了错误状态码
	CodeUpstreamNoReply = 20002 // API 无响应或响应无法解析
	CodeInternal        = 50000
)

// Response 统一响应结构
//
// 出错时 Message 为显示给用户的提示，Details 为错误分类后的具体原因（可能为空）。
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

// OKWithMessage 200 成功响应，附带给用户的提示
func OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: message,
		Data:    data,
	})
}

// CreatedWithMessage 201 创建成功，附带给用户的提示
func CreatedWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeOK,
		Message: message,
		Data:    data,
	})
}

// Attachment 200 文件下载
func Attachment(c *gin.Context, filename, contentType string, content []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+escapeFilename(filename))
	c.Data(http.StatusOK, contentType, content)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "伺服器內部錯誤")
}

// escapeFilename RFC 5987 编码，空格编码为 %20 而非 +
func escapeFilename(name string) string {
	return url.PathEscape(name)
}
