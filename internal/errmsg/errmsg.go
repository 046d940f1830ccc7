// Package errmsg 将 API 调用失败转换为面向用户的提示文字。
//
// 判定表与线上前端保持逐字一致，调用方（包括测试）依赖这些文案。
package errmsg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
)

// 提示文案
const (
	MsgUnknown            = "發生未知錯誤"
	MsgUnreachable        = "無法連線到伺服器，請檢查網路連線或伺服器是否運行中"
	MsgTimeout            = "請求逾時，請稍後再試"
	MsgNetworkPrefix      = "網路錯誤："
	MsgBadRequest         = "請求格式錯誤"
	MsgBadCredentials     = "帳號或密碼錯誤"
	MsgCredentialsInvalid = "登入驗證失敗，請重新登入"
	MsgAccountDisabled    = "帳號已被停用，請聯絡管理員"
	MsgUnauthorized       = "未經授權，請重新登入"
	MsgForbidden          = "沒有權限執行此操作"
	MsgNotFound           = "找不到請求的資源"
	MsgConflict           = "資料衝突，可能已存在"
	MsgValidationFailed   = "資料驗證失敗"
	MsgServerError        = "伺服器錯誤，請稍後再試"
	MsgGatewayTimeout     = "伺服器回應逾時"
	MsgDefaultFallback    = "操作失敗"
)

// 服务端已知的 401 detail
const (
	detailIncorrectCredentials = "Incorrect account or password"
	detailCouldNotValidate     = "Could not validate credentials"
)

// unreachableMarkers 无响应时判定为“连不上服务器”的关键字
var unreachableMarkers = []string{
	"Network Error",
	"ECONNREFUSED",
	"connection refused",
	"no such host",
	"unreachable",
}

// Message 返回 err 对应的提示文字
func Message(err error) string {
	if err == nil {
		return MsgUnknown
	}

	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}

	var he *client.HTTPError
	if errors.As(err, &he) {
		return forStatus(he.Status, he.Detail)
	}

	return forNoResponse(err)
}

// HandleAPIError 记录错误并返回提示文字；文字为空时使用 fallback
func HandleAPIError(logger *zap.Logger, err error, fallback string) string {
	logger.Error("API 调用失败", zap.Error(err))
	if msg := Message(err); msg != "" {
		return msg
	}
	if fallback == "" {
		return MsgDefaultFallback
	}
	return fallback
}

// ────────────────────── 无响应 ──────────────────────

func forNoResponse(err error) string {
	message := err.Error()
	var ne *client.NetworkError
	if errors.As(err, &ne) && ne.Err != nil {
		message = ne.Err.Error()
	}

	for _, marker := range unreachableMarkers {
		if strings.Contains(message, marker) {
			return MsgUnreachable
		}
	}
	if strings.Contains(strings.ToLower(message), "timeout") || errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	return MsgNetworkPrefix + message
}

// ────────────────────── 按状态码 ──────────────────────

func forStatus(status int, detail client.Detail) string {
	if detail == nil {
		detail = client.NoDetail{}
	}

	switch status {
	case 400:
		switch d := detail.(type) {
		case client.StringDetail:
			return string(d)
		case client.FieldErrorList:
			return joinFieldErrors(d)
		}
		return MsgBadRequest

	case 401:
		if d, ok := detail.(client.StringDetail); ok {
			switch {
			case d == detailIncorrectCredentials:
				return MsgBadCredentials
			case d == detailCouldNotValidate:
				return MsgCredentialsInvalid
			case strings.Contains(string(d), "disabled"):
				return MsgAccountDisabled
			}
		}
		return MsgUnauthorized

	case 403:
		if d, ok := detail.(client.StringDetail); ok && strings.Contains(string(d), "Access denied") {
			return string(d)
		}
		return MsgForbidden

	case 404:
		if d, ok := detail.(client.StringDetail); ok {
			return string(d)
		}
		return MsgNotFound

	case 409:
		if isFalsy(detail) {
			return MsgConflict
		}
		return detailText(detail)

	case 422:
		if d, ok := detail.(client.FieldErrorList); ok {
			return joinFieldErrors(d)
		}
		return MsgValidationFailed

	case 500, 502, 503:
		return MsgServerError

	case 504:
		return MsgGatewayTimeout

	default:
		switch d := detail.(type) {
		case client.StringDetail:
			return string(d)
		case client.FieldErrorList:
			return detailText(d)
		case client.OpaqueDetail:
			// 数字、布尔等标量不展示
			if isComposite(d) {
				return detailText(d)
			}
		}
		return fmt.Sprintf("錯誤 (%d)", status)
	}
}

// detailText 任意形态的 detail 转为可展示文本；无 detail 返回空串
func detailText(detail client.Detail) string {
	switch d := detail.(type) {
	case client.StringDetail:
		return string(d)
	case client.FieldErrorList:
		parts := make([]string, 0, len(d))
		for _, fe := range d {
			parts = append(parts, string(fe.Raw))
		}
		return client.OpaqueDetail([]byte("[" + strings.Join(parts, ",") + "]")).Text()
	case client.OpaqueDetail:
		return d.Text()
	default:
		return ""
	}
}

// isFalsy 缺失、空串、0 与 false 视为没有 detail
func isFalsy(detail client.Detail) bool {
	switch d := detail.(type) {
	case client.StringDetail:
		return d == ""
	case client.OpaqueDetail:
		var v interface{}
		if err := json.Unmarshal(d, &v); err != nil {
			return false
		}
		return v == false || v == float64(0)
	case client.FieldErrorList:
		return false
	default:
		return true
	}
}

// isComposite detail 是否为 JSON 对象或数组
func isComposite(d client.OpaqueDetail) bool {
	trimmed := bytes.TrimSpace(d)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func joinFieldErrors(list client.FieldErrorList) string {
	msgs := make([]string, 0, len(list))
	for _, fe := range list {
		msgs = append(msgs, fe.Text())
	}
	return strings.Join(msgs, ", ")
}
