package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders 安全 HTTP 头中间件
// 图片来自 API 的上传目录，img-src 需放行 apiOrigin
func SecurityHeaders(apiOrigin string) gin.HandlerFunc {
	csp := "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: " + apiOrigin + "; font-src 'self' data:; frame-ancestors 'none'"

	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", csp)
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		c.Next()
	}
}
