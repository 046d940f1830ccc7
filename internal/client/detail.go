package client

import (
	"bytes"
	"encoding/json"
)

// Detail API 错误响应中 detail 字段的几种形态
//
// FastAPI 风格的错误体为 {"detail": ...}，detail 可能是：
//   - 字符串：StringDetail
//   - 字段错误数组（422 校验失败）：FieldErrorList
//   - 其他 JSON 值：OpaqueDetail
//   - 缺失 / null / 非 JSON 响应体：NoDetail
type Detail interface {
	isDetail()
}

// NoDetail 响应体没有可用的 detail
type NoDetail struct{}

// StringDetail 字符串 detail
type StringDetail string

// FieldError 字段错误数组中的一项
type FieldError struct {
	Msg string          // 项中的 msg 字段（可能为空）
	Raw json.RawMessage // 原始 JSON
}

// Text 有 msg 时返回 msg，否则返回原始 JSON 文本
func (f FieldError) Text() string {
	if f.Msg != "" {
		return f.Msg
	}
	return compactJSON(f.Raw)
}

// FieldErrorList 数组形态的 detail
type FieldErrorList []FieldError

// OpaqueDetail 对象、数字等无法识别语义的 detail
type OpaqueDetail json.RawMessage

// Text 紧凑 JSON 文本，用于直接展示
func (o OpaqueDetail) Text() string {
	return compactJSON(json.RawMessage(o))
}

func (NoDetail) isDetail()       {}
func (StringDetail) isDetail()   {}
func (FieldErrorList) isDetail() {}
func (OpaqueDetail) isDetail()   {}

// ParseDetail 从错误响应体中提取 detail
func ParseDetail(body []byte) Detail {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return NoDetail{}
	}
	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return NoDetail{}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return OpaqueDetail(raw)
		}
		return StringDetail(s)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return OpaqueDetail(raw)
		}
		list := make(FieldErrorList, 0, len(items))
		for _, item := range items {
			list = append(list, parseFieldError(item))
		}
		return list
	default:
		return OpaqueDetail(raw)
	}
}

func parseFieldError(raw json.RawMessage) FieldError {
	var obj map[string]json.RawMessage
	fe := FieldError{Raw: raw}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fe
	}
	var msg string
	if err := json.Unmarshal(obj["msg"], &msg); err == nil {
		fe.Msg = msg
	}
	return fe
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
