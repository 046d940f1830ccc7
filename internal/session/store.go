package session

import (
	"context"
	"errors"
)

// TokenKey Token 在持久化存储中的固定键名
const TokenKey = "token"

// ErrEmptyToken 不允许写入空 Token
var ErrEmptyToken = errors.New("token 不能为空")

// Store 会话存储：保存当前的 Bearer Token
//
// 设计说明：
//   - 登录成功写入，登出清除，API 客户端每次请求读取
//   - 不记录过期时间，有 Token 即视为已登录
//   - 整个进程共用一个实例，通过构造函数注入客户端与路由守卫
type Store interface {
	SetToken(ctx context.Context, token string) error
	// Token 返回当前 Token；未登录时 ok=false
	Token(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
}

// Backend 带资源释放的 Store
type Backend interface {
	Store
	Close() error
}
