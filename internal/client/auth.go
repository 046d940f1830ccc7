package client

import (
	"context"
	"net/url"

	"github.com/yanggu0413/yles503-react/internal/dto"
)

// AuthAPI 登录接口
type AuthAPI interface {
	// Login 以表单编码（非 JSON）提交帐号密码，返回 access_token
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
}

type authAPI struct {
	t *transport
}

func (a *authAPI) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out dto.TokenResponse
	if err := a.t.postForm(ctx, "/auth/login", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
