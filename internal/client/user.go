package client

import (
	"context"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// UserAPI 后台用户接口 /admin/users
type UserAPI interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, req *dto.UserRequest) (*model.User, error)
	Update(ctx context.Context, id int64, req *dto.UserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userAPI struct {
	crud crud[model.User]
}

func (a *userAPI) List(ctx context.Context) ([]model.User, error) {
	return a.crud.list(ctx)
}

func (a *userAPI) Create(ctx context.Context, req *dto.UserRequest) (*model.User, error) {
	return a.crud.create(ctx, req)
}

func (a *userAPI) Update(ctx context.Context, id int64, req *dto.UserRequest) (*model.User, error) {
	return a.crud.update(ctx, id, req)
}

func (a *userAPI) Delete(ctx context.Context, id int64) error {
	return a.crud.remove(ctx, id)
}
