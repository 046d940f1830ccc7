package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ── API 时间字段 ──

// timeLayouts API 可能返回的时间格式（FastAPI 的 naive datetime 不带时区）
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

// DateLayout 截止日期的线上格式
const DateLayout = "2006-01-02"

// ParseTime 宽松解析 API 时间字符串，无时区信息时按本地时区解释
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间 %q", s)
}

// Time 接受多种格式的时间戳（created_at / updated_at）
type Time struct {
	time.Time
}

// UnmarshalJSON 实现 json.Unmarshaler；null 或空串保持零值
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("时间字段必须为字符串: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON 零值输出 null，其余输出 RFC3339
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Date 只关心日期部分的字段（作业截止日期）
type Date struct {
	time.Time
}

// NewDate 以本地时区构造日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// UnmarshalJSON 接受 YYYY-MM-DD 或完整时间戳
func (d *Date) UnmarshalJSON(data []byte) error {
	var t Time
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	d.Time = t.Time
	return nil
}

// MarshalJSON 统一输出 YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// String 返回 YYYY-MM-DD，零值返回空串
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
