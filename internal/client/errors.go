package client

import (
	"fmt"
)

// HTTPError API 返回了状态码 >= 400 的响应
type HTTPError struct {
	Method string
	Path   string
	Status int
	Detail Detail
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: 状态码 %d", e.Method, e.Path, e.Status)
}

// NetworkError 请求未收到任何响应（连接失败、超时等）
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
