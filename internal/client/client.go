package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/session"
)

// Client 所有 API 资源的聚合入口
type Client struct {
	Public       PublicAPI
	Auth         AuthAPI
	Announcement AnnouncementAPI
	Assignment   AssignmentAPI
	Gallery      GalleryAPI
	Resource     ResourceAPI
	Rule         RuleAPI
	User         UserAPI
	Site         SiteAPI
	Schedule     ScheduleAPI
}

// Option 客户端可选项
type Option func(*transport)

// WithHTTPClient 替换底层 http.Client（测试用）
func WithHTTPClient(hc *http.Client) Option {
	return func(t *transport) { t.http = hc }
}

// New 创建 API 客户端
//
// baseURL 在进程启动时确定；store 为注入的会话存储，
// 每次请求读取其中的 Token 并附加 Authorization: Bearer 头。
// 不做重试、不在 401 时刷新 Token，失败原样返回给调用方。
func New(baseURL string, store session.Store, logger *zap.Logger, opts ...Option) *Client {
	t := &transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: store,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(t)
	}

	return &Client{
		Public:       &publicAPI{t: t},
		Auth:         &authAPI{t: t},
		Announcement: &announcementAPI{crud: crud[model.Announcement]{t: t, path: "/admin/announcements"}},
		Assignment:   &assignmentAPI{crud: crud[model.Assignment]{t: t, path: "/admin/assignments"}},
		Gallery:      &galleryAPI{crud: crud[model.GalleryItem]{t: t, path: "/admin/gallery"}},
		Resource:     &resourceAPI{crud: crud[model.Resource]{t: t, path: "/admin/resources"}},
		Rule:         &ruleAPI{crud: crud[model.Rule]{t: t, path: "/admin/rules"}},
		User:         &userAPI{crud: crud[model.User]{t: t, path: "/admin/users"}},
		Site:         &siteAPI{t: t},
		Schedule:     &scheduleAPI{t: t},
	}
}

// ── 请求 ID ──

type requestIDKey struct{}

// WithRequestID 将请求 ID 放入 context，出站请求会带上 X-Request-ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom 读取 context 中的请求 ID
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ── transport ──

type transport struct {
	baseURL string
	http    *http.Client
	session session.Store
	logger  *zap.Logger
}

func (t *transport) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	rid := RequestIDFrom(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", rid)

	token, ok, err := t.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do 发送请求；状态码 >= 400 返回 *HTTPError，无响应返回 *NetworkError
func (t *transport) do(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		t.logger.Warn("API 请求无响应",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return &NetworkError{Method: req.Method, Path: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: req.Method, Path: req.URL.Path, Err: err}
	}

	t.logger.Debug("API 请求完成",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return &HTTPError{
			Method: req.Method,
			Path:   req.URL.Path,
			Status: resp.StatusCode,
			Detail: ParseDetail(body),
		}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("解析 %s %s 响应失败: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (t *transport) get(ctx context.Context, path string, out interface{}) error {
	req, err := t.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return t.do(req, out)
}

func (t *transport) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("序列化请求失败: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := t.newRequest(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	return t.do(req, out)
}

func (t *transport) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := t.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	return t.do(req, out)
}

// postMultipart 以 multipart/form-data 上传文件，文件字段名固定为 file
func (t *transport) postMultipart(ctx context.Context, path string, fields map[string]string, file *dto.UploadFile, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("写入表单字段失败: %w", err)
		}
	}
	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return fmt.Errorf("写入上传文件失败: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("写入上传文件失败: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("写入上传文件失败: %w", err)
	}

	req, err := t.newRequest(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return t.do(req, out)
}

func (t *transport) delete(ctx context.Context, path string) error {
	req, err := t.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return t.do(req, nil)
}

// ── 通用 CRUD ──

type crud[T any] struct {
	t    *transport
	path string
}

func (c crud[T]) list(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.t.get(ctx, c.path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c crud[T]) create(ctx context.Context, in interface{}) (*T, error) {
	var out T
	if err := c.t.sendJSON(ctx, http.MethodPost, c.path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c crud[T]) update(ctx context.Context, id int64, in interface{}) (*T, error) {
	var out T
	if err := c.t.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", c.path, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c crud[T]) remove(ctx context.Context, id int64) error {
	return c.t.delete(ctx, fmt.Sprintf("%s/%d", c.path, id))
}
