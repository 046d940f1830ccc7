package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/guard"
)

// RequireSession 后台路由守卫中间件
// 会话中没有 Token 时返回 302 跳转到登录页，不调用后续 Handler
// 只判断 Token 是否存在，不请求 API，也不检查过期
func RequireSession(g *guard.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.Check(c.Request.Context(), c.Request.URL.Path)
		if !d.Allowed {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}

		c.Next()
	}
}
