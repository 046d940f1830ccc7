package dto

// ── 用户模块 DTO ──

// UserRequest 新增/编辑用户
//
// Password 为空时不序列化，API 视为不修改密码；
// 新增时由 Validate 的 create 规则要求必填。
type UserRequest struct {
	Account  string `json:"account"            validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"               validate:"required,oneof=admin teacher student"`
	Enabled  *bool  `json:"enabled,omitempty"`
}
