package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求（浏览器 → 前端服务）
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse POST /auth/login 的响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// SessionResponse 登录状态
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Redirect      string `json:"redirect,omitempty"`
}

// CurrentUserResponse 从 Token 中读取的展示信息（未经验签，仅供显示）
type CurrentUserResponse struct {
	Account string `json:"account,omitempty"`
	Role    string `json:"role,omitempty"`
}
