package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/present"
)

// UserService 后台用户管理
type UserService interface {
	// List 按建立时间从新到旧
	List(ctx context.Context) ([]model.User, error)
	// Create 角色默认 student、默认启用，密码必填
	Create(ctx context.Context, req *dto.UserRequest) (*model.User, error)
	// Update 密码留空表示不修改，请求中不会出现 password 字段
	Update(ctx context.Context, id int64, req *dto.UserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	api    client.UserAPI
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(api client.UserAPI, logger *zap.Logger) UserService {
	return &userService{api: api, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	list, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	return present.SortByDateDesc(list, func(u model.User) time.Time { return u.CreatedAt.Time }), nil
}

func (s *userService) Create(ctx context.Context, req *dto.UserRequest) (*model.User, error) {
	if req.Role == "" {
		req.Role = model.RoleStudent
	}
	if req.Enabled == nil {
		enabled := true
		req.Enabled = &enabled
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := dto.RequirePassword(req); err != nil {
		return nil, err
	}

	user, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("用户已新增", zap.String("account", user.Account))
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *dto.UserRequest) (*model.User, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.api.Update(ctx, id, req)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}
