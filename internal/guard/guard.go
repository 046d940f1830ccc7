// Package guard 后台页面的访问守卫
//
// 只判断会话中是否存在 Token，不解析、不校验过期，也不请求服务器；
// 过期的 Token 同样可以通过，真正的授权由 API 在 401 时决定。
package guard

import (
	"context"
	"strings"

	"github.com/yanggu0413/yles503-react/internal/session"
)

// Decision 守卫判定结果
type Decision struct {
	Allowed  bool
	Redirect string // 不允许时跳转的路径
}

// Guard 路由守卫
type Guard struct {
	store       session.Store
	loginPath   string
	adminPrefix string
}

// New 创建守卫；loginPath 为未登录时的跳转目标，adminPrefix 为受保护路径前缀
func New(store session.Store, loginPath, adminPrefix string) *Guard {
	return &Guard{
		store:       store,
		loginPath:   loginPath,
		adminPrefix: strings.TrimRight(adminPrefix, "/"),
	}
}

// IsAuthorized 会话中存在 Token 即视为已登录
// 读取会话出错时按未登录处理
func (g *Guard) IsAuthorized(ctx context.Context) bool {
	token, ok, err := g.store.Token(ctx)
	return err == nil && ok && token != ""
}

// Protected 路径是否属于后台范围（/admin 本身及其子路径）
func (g *Guard) Protected(path string) bool {
	return path == g.adminPrefix || strings.HasPrefix(path, g.adminPrefix+"/")
}

// Check 判定是否允许访问 path
func (g *Guard) Check(ctx context.Context, path string) Decision {
	if !g.Protected(path) || g.IsAuthorized(ctx) {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: g.loginPath}
}

// LoginPath 登录页路径
func (g *Guard) LoginPath() string { return g.loginPath }
