package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError 表单校验失败，不会发出任何网络请求
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// fieldMessages 字段 + 规则 → 表单提示
var fieldMessages = map[string]string{
	"Title.required":     "請輸入標題",
	"Content.required":   "請輸入內容",
	"Subject.required":   "請輸入科目",
	"Deadline.required":  "請選擇期限",
	"Status.required":    "請選擇狀態",
	"Status.oneof":       "請選擇狀態",
	"Category.required":  "請輸入分類",
	"URL.required":       "請輸入網址",
	"URL.url":            "請輸入有效的網址",
	"Account.required":   "請輸入帳號",
	"Username.required":  "請輸入帳號",
	"Password.required":  "請輸入密碼",
	"Role.required":      "請選擇角色",
	"Role.oneof":         "請選擇角色",
	"ContactEmail.email": "請輸入有效的 Email",
}

var validate = validator.New()

// Validate 按 validate 标签校验请求，返回第一个失败字段对应的 *ValidationError
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = "資料驗證失敗"
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}

// RequirePassword 新增用户时密码必填
func RequirePassword(req *UserRequest) error {
	if req.Password == "" {
		return &ValidationError{Field: "Password", Message: fieldMessages["Password.required"]}
	}
	return nil
}
