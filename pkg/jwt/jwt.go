package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrTokenMalformed Token 不是可解码的 JWT
var ErrTokenMalformed = errors.New("token 格式无效")

// Claims API 签发的 Access Token 中可供显示的声明
//
// 签名密钥只在 API 端，这里拿不到也不需要：
// 声明只用于页面显示当前帐号，绝不用于授权或判断过期。
type Claims struct {
	Role string `json:"role,omitempty"`
	jwtv5.RegisteredClaims
}

// Account 帐号取自 sub
func (c *Claims) Account() string { return c.Subject }

// Expiry 过期时间，未声明时返回零值
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

var parser = jwtv5.NewParser()

// Inspect 解码 Token 的声明部分，不校验签名与有效期
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Join(ErrTokenMalformed, err)
	}
	return claims, nil
}
