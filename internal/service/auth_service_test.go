package service

import (
	"context"
	"errors"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/session"
	"github.com/yanggu0413/yles503-react/pkg/jwt"
)

func setupAuthService() (AuthService, *mockAuthAPI, *session.MemoryStore) {
	api := &mockAuthAPI{token: "header.payload.sig"}
	store := session.NewMemoryStore()
	return NewAuthService(api, store, zap.NewNop()), api, store
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, store := setupAuthService()
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "teacher", Password: "secret"})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}
	if !resp.Authenticated || resp.Redirect != AdminHome {
		t.Errorf("期望已登录并跳转 %s，实际 %+v", AdminHome, resp)
	}

	token, ok, _ := store.Token(ctx)
	if !ok || token != "header.payload.sig" {
		t.Errorf("期望会话中保存 Token，实际 ok=%v token=%q", ok, token)
	}
}

func TestAuthService_Login_ValidationSkipsNetwork(t *testing.T) {
	svc, api, store := setupAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "teacher"})
	var verr *dto.ValidationError
	if !errors.As(err, &verr) || verr.Message != "請輸入密碼" {
		t.Fatalf("期望 請輸入密碼，实际 %v", err)
	}
	if api.calls != 0 {
		t.Errorf("校验失败不应请求 API，实际调用 %d 次", api.calls)
	}
	if _, ok, _ := store.Token(context.Background()); ok {
		t.Error("校验失败不应写入会话")
	}
}

func TestAuthService_Login_Rejected(t *testing.T) {
	svc, api, store := setupAuthService()
	api.err = &client.HTTPError{Status: 401, Detail: client.StringDetail("Incorrect account or password")}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "teacher", Password: "bad"})
	var herr *client.HTTPError
	if !errors.As(err, &herr) || herr.Status != 401 {
		t.Fatalf("期望原样返回 401，实际 %v", err)
	}
	if _, ok, _ := store.Token(context.Background()); ok {
		t.Error("登录失败不应写入会话")
	}
}

func TestAuthService_Login_EmptyAccessToken(t *testing.T) {
	svc, api, _ := setupAuthService()
	api.token = ""

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "teacher", Password: "secret"})
	if !errors.Is(err, ErrEmptyAccessToken) {
		t.Errorf("期望 ErrEmptyAccessToken，实际 %v", err)
	}
}

// ── Logout / Session ──

func TestAuthService_Logout(t *testing.T) {
	svc, _, store := setupAuthService()
	ctx := context.Background()
	_ = store.SetToken(ctx, "abc")

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout 失败: %v", err)
	}
	resp, err := svc.Session(ctx)
	if err != nil {
		t.Fatalf("Session 失败: %v", err)
	}
	if resp.Authenticated {
		t.Error("登出后不应保持登录状态")
	}
}

func TestAuthService_LoginLogoutLogin(t *testing.T) {
	svc, api, store := setupAuthService()
	ctx := context.Background()
	req := &dto.LoginRequest{Username: "teacher", Password: "secret"}

	_, _ = svc.Login(ctx, req)
	_ = svc.Logout(ctx)
	api.token = "second.token.value"
	_, _ = svc.Login(ctx, req)

	token, _, _ := store.Token(ctx)
	if token != "second.token.value" {
		t.Errorf("期望第二次登录的 Token，实际 %q", token)
	}
}

// ── CurrentUser ──

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, store := setupAuthService()
	ctx := context.Background()

	signed, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwt.Claims{
		Role:             "admin",
		RegisteredClaims: jwtv5.RegisteredClaims{Subject: "teacher01"},
	}).SignedString([]byte("unknown-to-us"))
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}
	_ = store.SetToken(ctx, signed)

	user, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser 失败: %v", err)
	}
	if user.Account != "teacher01" || user.Role != "admin" {
		t.Errorf("期望 teacher01/admin，实际 %+v", user)
	}
}

func TestAuthService_CurrentUser_OpaqueToken(t *testing.T) {
	svc, _, store := setupAuthService()
	ctx := context.Background()
	_ = store.SetToken(ctx, "opaque-token")

	user, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("不透明 Token 不应报错: %v", err)
	}
	if user.Account != "" {
		t.Errorf("期望空帐号，实际 %q", user.Account)
	}
}

func TestAuthService_CurrentUser_NotLoggedIn(t *testing.T) {
	svc, _, _ := setupAuthService()
	if _, err := svc.CurrentUser(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("期望 ErrNotLoggedIn，实际 %v", err)
	}
}
