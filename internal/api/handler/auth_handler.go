package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

// MsgLoginFailed 登录页的失败提示，具体原因放在 details
const MsgLoginFailed = "登入失敗，請檢查您的帳號或密碼。"

// AuthHandler 登录与会话 HTTP 处理器
type AuthHandler struct {
	authSvc   service.AuthService
	loginPath string
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, loginPath string) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, loginPath: loginPath}
}

// Login 登录
// POST /login（表单或 JSON）
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		response.BadRequest(c, response.CodeInvalidParams, msgBadRequest)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, MsgLoginFailed)
		return
	}
	response.OK(c, result)
}

// Logout 登出：只清除本地会话
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "登出失敗")
		return
	}
	response.OK(c, dto.SessionResponse{Authenticated: false, Redirect: h.loginPath})
}

// Session 当前是否已登录
// GET /session
func (h *AuthHandler) Session(c *gin.Context) {
	result, err := h.authSvc.Session(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.OK(c, result)
}

// Me 当前帐号（从 Token 解码，仅供显示）
// GET /admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.authSvc.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	response.OK(c, result)
}
