package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/session"
	"github.com/yanggu0413/yles503-react/pkg/jwt"
)

var (
	ErrEmptyAccessToken = errors.New("登入回應缺少 access_token")
	ErrNotLoggedIn      = errors.New("尚未登入")
)

// AdminHome 登录成功后跳转的页面
const AdminHome = "/admin"

// AuthService 登录、登出与当前会话
type AuthService interface {
	// Login 提交帐号密码，成功后把 Token 写入会话
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	// Logout 只清除本地 Token，不通知 API
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*dto.SessionResponse, error)
	// CurrentUser 解码 Token 中的帐号信息，仅供显示
	CurrentUser(ctx context.Context) (*dto.CurrentUserResponse, error)
}

type authService struct {
	api    client.AuthAPI
	store  session.Store
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(api client.AuthAPI, store session.Store, logger *zap.Logger) AuthService {
	return &authService{api: api, store: store, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	tok, err := s.api.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	if err := s.store.SetToken(ctx, tok.AccessToken); err != nil {
		s.logger.Error("写入会话失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("登录成功", zap.String("username", req.Username))
	return &dto.SessionResponse{Authenticated: true, Redirect: AdminHome}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("清除会话失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Session(ctx context.Context) (*dto.SessionResponse, error) {
	token, ok, err := s.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Authenticated: ok && token != ""}, nil
}

func (s *authService) CurrentUser(ctx context.Context) (*dto.CurrentUserResponse, error) {
	token, ok, err := s.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}

	// 不透明 Token 没有可显示的信息，返回空结果
	claims, err := jwt.Inspect(token)
	if err != nil {
		s.logger.Debug("Token 无法解码", zap.Error(err))
		return &dto.CurrentUserResponse{}, nil
	}
	return &dto.CurrentUserResponse{Account: claims.Account(), Role: claims.Role}, nil
}
