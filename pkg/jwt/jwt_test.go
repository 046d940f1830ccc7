package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwtv5.Claims) string {
	t.Helper()
	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte("api-side-secret"))
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}
	return token
}

func TestInspect(t *testing.T) {
	exp := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	token := signToken(t, Claims{
		Role: "admin",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "teacher01",
			ExpiresAt: jwtv5.NewNumericDate(exp),
		},
	})

	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("Inspect 失败: %v", err)
	}
	if claims.Account() != "teacher01" {
		t.Errorf("期望 Account=teacher01，实际=%s", claims.Account())
	}
	if claims.Role != "admin" {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if !claims.Expiry().Equal(exp) {
		t.Errorf("期望 Expiry=%s，实际=%s", exp, claims.Expiry())
	}
}

func TestInspect_ExpiredTokenStillDecodes(t *testing.T) {
	token := signToken(t, Claims{
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "student07",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("过期 Token 也应能解码: %v", err)
	}
	if claims.Account() != "student07" {
		t.Errorf("期望 Account=student07，实际=%s", claims.Account())
	}
}

func TestInspect_NoExpiry(t *testing.T) {
	token := signToken(t, Claims{RegisteredClaims: jwtv5.RegisteredClaims{Subject: "x"}})
	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("Inspect 失败: %v", err)
	}
	if !claims.Expiry().IsZero() {
		t.Errorf("未声明 exp 时应为零值，实际=%s", claims.Expiry())
	}
}

func TestInspect_Malformed(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b"} {
		if _, err := Inspect(token); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("%q: 期望 ErrTokenMalformed，实际 %v", token, err)
		}
	}
}
