package model

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User 后台用户；API 从不返回密码
type User struct {
	ID        int64  `json:"id"`
	Account   string `json:"account"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Enabled   bool   `json:"enabled"`
	CreatedAt Time   `json:"created_at"`
}
