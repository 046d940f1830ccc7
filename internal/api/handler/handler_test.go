package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/errmsg"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult *dto.SessionResponse
	loginErr    error
	logoutErr   error
	user        *dto.CurrentUserResponse
	userErr     error
	lastLogin   *dto.LoginRequest
}

func (m *mockAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	m.lastLogin = req
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context) error { return m.logoutErr }
func (m *mockAuthService) Session(_ context.Context) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{Authenticated: m.user != nil}, nil
}
func (m *mockAuthService) CurrentUser(_ context.Context) (*dto.CurrentUserResponse, error) {
	return m.user, m.userErr
}

// ── Mock PublicService ──

type mockPublicService struct {
	err           error
	announcements []model.Announcement
}

func (m *mockPublicService) Home(_ context.Context) (*dto.HomeView, error) {
	return &dto.HomeView{}, m.err
}
func (m *mockPublicService) Announcements(_ context.Context) ([]model.Announcement, error) {
	return m.announcements, m.err
}
func (m *mockPublicService) Assignments(_ context.Context) ([]dto.AssignmentView, error) {
	return nil, m.err
}
func (m *mockPublicService) Gallery(_ context.Context) ([]model.GalleryItem, error) {
	return nil, m.err
}
func (m *mockPublicService) Resources(_ context.Context) ([]dto.ResourceGroup, error) {
	return nil, m.err
}
func (m *mockPublicService) Rules(_ context.Context) ([]model.Rule, error) { return nil, m.err }
func (m *mockPublicService) Schedule(_ context.Context) (*dto.ScheduleView, error) {
	return &dto.ScheduleView{}, m.err
}
func (m *mockPublicService) Contact(_ context.Context) (*model.SiteSettings, error) {
	return &model.SiteSettings{}, m.err
}

// ── Mock CalendarService ──

type mockCalendarService struct{}

func (mockCalendarService) Assignments(_ context.Context) (string, error) {
	return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
}

// ── Mock AnnouncementService ──

type mockAnnouncementService struct {
	err     error
	created *dto.AnnouncementRequest
	deleted int64
}

func (m *mockAnnouncementService) List(_ context.Context) ([]model.Announcement, error) {
	return nil, m.err
}
func (m *mockAnnouncementService) Create(_ context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = req
	return &model.Announcement{ID: 9, Title: req.Title}, nil
}
func (m *mockAnnouncementService) Update(_ context.Context, id int64, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	return &model.Announcement{ID: id, Title: req.Title}, m.err
}
func (m *mockAnnouncementService) Delete(_ context.Context, id int64) error {
	m.deleted = id
	return m.err
}

// ── Mock GalleryService ──

type mockGalleryService struct {
	title string
	file  *dto.UploadFile
}

func (m *mockGalleryService) List(_ context.Context) ([]model.GalleryItem, error) { return nil, nil }
func (m *mockGalleryService) Upload(_ context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error) {
	m.title, m.file = title, file
	return &model.GalleryItem{ID: 1, Title: title}, nil
}
func (m *mockGalleryService) UpdateTitle(_ context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error) {
	return &model.GalleryItem{ID: id, Title: req.Title}, nil
}
func (m *mockGalleryService) Delete(_ context.Context, _ int64) error { return nil }

// ── Mock ExportService ──

type mockExportService struct {
	err error
}

func (m *mockExportService) ExportUsers(_ context.Context) (*bytes.Buffer, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return bytes.NewBufferString("xlsx"), "使用者名單_20240105.xlsx", nil
}
func (m *mockExportService) ExportAssignments(_ context.Context) (*bytes.Buffer, string, error) {
	return bytes.NewBufferString("xlsx"), "作業清單.xlsx", m.err
}

// ── Mock DashboardService ──

type mockDashboardService struct {
	err error
}

func (m *mockDashboardService) Stats(_ context.Context) (*dto.DashboardStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.DashboardStats{Announcements: 1, Users: 2}, nil
}

// ═══════════════════════════════════════════════════════════
// 辅助函数
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func serve(method, path string, body io.Reader, contentType string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	r := gin.New()
	register(r)
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func networkErr() error {
	return &client.NetworkError{Method: "GET", Path: "/announcements", Err: errors.New("dial tcp: connection refused")}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Form(t *testing.T) {
	mock := &mockAuthService{loginResult: &dto.SessionResponse{Authenticated: true, Redirect: "/admin"}}
	h := NewAuthHandler(mock, "/login")

	w := serve("POST", "/login", strings.NewReader("username=teacher&password=secret"), "application/x-www-form-urlencoded",
		func(r *gin.Engine) { r.POST("/login", h.Login) })

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	if mock.lastLogin.Username != "teacher" || mock.lastLogin.Password != "secret" {
		t.Errorf("表单未正确绑定: %+v", mock.lastLogin)
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	mock := &mockAuthService{loginErr: &client.HTTPError{Status: 401, Detail: client.StringDetail("Incorrect account or password")}}
	h := NewAuthHandler(mock, "/login")

	w := serve("POST", "/login", jsonBody(dto.LoginRequest{Username: "a", Password: "b"}), "application/json",
		func(r *gin.Engine) { r.POST("/login", h.Login) })

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望透传 401，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Message != MsgLoginFailed {
		t.Errorf("期望 %q，实际 %q", MsgLoginFailed, resp.Message)
	}
	if resp.Details != "帳號或密碼錯誤" {
		t.Errorf("期望分类后的原因 帳號或密碼錯誤，实际 %q", resp.Details)
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	mock := &mockAuthService{loginErr: &dto.ValidationError{Field: "Password", Message: "請輸入密碼"}}
	h := NewAuthHandler(mock, "/login")

	w := serve("POST", "/login", jsonBody(dto.LoginRequest{Username: "a"}), "application/json",
		func(r *gin.Engine) { r.POST("/login", h.Login) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Message != "請輸入密碼" {
		t.Errorf("期望 請輸入密碼，实际 %q", resp.Message)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, "/login")

	w := serve("POST", "/logout", nil, "", func(r *gin.Engine) { r.POST("/logout", h.Logout) })

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	data, _ := json.Marshal(parseResponse(w).Data)
	if !strings.Contains(string(data), `"redirect":"/login"`) {
		t.Errorf("登出后应指向登录页，实际 %s", data)
	}
}

func TestAuthHandler_Me_NotLoggedIn(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{userErr: service.ErrNotLoggedIn}, "/login")

	w := serve("GET", "/admin/me", nil, "", func(r *gin.Engine) { r.GET("/admin/me", h.Me) })
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PublicHandler
// ═══════════════════════════════════════════════════════════

func TestPublicHandler_Announcements_NetworkError(t *testing.T) {
	h := NewPublicHandler(&mockPublicService{err: networkErr()}, mockCalendarService{})

	w := serve("GET", "/announcements", nil, "", func(r *gin.Engine) { r.GET("/announcements", h.Announcements) })

	if w.Code != http.StatusBadGateway {
		t.Errorf("无响应应映射为 502，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Message != "無法載入公告，請稍後再試。" {
		t.Errorf("页面提示不正确: %q", resp.Message)
	}
	if resp.Details != "無法連線到伺服器，請檢查網路連線或伺服器是否運行中" {
		t.Errorf("分类原因不正确: %q", resp.Details)
	}
	if resp.Code != response.CodeUpstreamNoReply {
		t.Errorf("业务码不正确: %d", resp.Code)
	}
}

func TestPublicHandler_Announcements_Success(t *testing.T) {
	h := NewPublicHandler(&mockPublicService{announcements: []model.Announcement{{ID: 1, Title: "開學"}}}, mockCalendarService{})

	w := serve("GET", "/announcements", nil, "", func(r *gin.Engine) { r.GET("/announcements", h.Announcements) })
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "開學") {
		t.Errorf("响应不正确: %d %s", w.Code, w.Body.String())
	}
}

func TestPublicHandler_AssignmentsCalendar(t *testing.T) {
	h := NewPublicHandler(&mockPublicService{}, mockCalendarService{})

	w := serve("GET", "/assignments.ics", nil, "", func(r *gin.Engine) { r.GET("/assignments.ics", h.AssignmentsCalendar) })
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type 不正确: %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("响应体不正确: %q", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// 后台
// ═══════════════════════════════════════════════════════════

func TestAnnouncementHandler_Create(t *testing.T) {
	mock := &mockAnnouncementService{}
	h := NewAnnouncementHandler(mock)

	w := serve("POST", "/admin/announcements", jsonBody(dto.AnnouncementRequest{Title: "停課", Content: "颱風"}), "application/json",
		func(r *gin.Engine) { r.POST("/admin/announcements", h.Create) })

	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Message != "公告新增成功" {
		t.Errorf("期望 公告新增成功，实际 %q", resp.Message)
	}
	if mock.created.Title != "停課" {
		t.Errorf("请求未传给 Service: %+v", mock.created)
	}
}

func TestAnnouncementHandler_Create_BadJSON(t *testing.T) {
	h := NewAnnouncementHandler(&mockAnnouncementService{})

	w := serve("POST", "/admin/announcements", strings.NewReader("{bad"), "application/json",
		func(r *gin.Engine) { r.POST("/admin/announcements", h.Create) })
	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际 %d", w.Code)
	}
}

func TestAnnouncementHandler_Create_UpstreamConflict(t *testing.T) {
	mock := &mockAnnouncementService{err: &client.HTTPError{Status: 409, Detail: client.StringDetail("標題重複")}}
	h := NewAnnouncementHandler(mock)

	w := serve("POST", "/admin/announcements", jsonBody(dto.AnnouncementRequest{Title: "a", Content: "b"}), "application/json",
		func(r *gin.Engine) { r.POST("/admin/announcements", h.Create) })

	if w.Code != http.StatusConflict {
		t.Errorf("期望透传 409，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Message != "新增失敗" || resp.Details != "標題重複" {
		t.Errorf("响应不正确: %+v", resp)
	}
}

func TestAnnouncementHandler_Delete(t *testing.T) {
	mock := &mockAnnouncementService{}
	h := NewAnnouncementHandler(mock)

	w := serve("DELETE", "/admin/announcements/12", nil, "", func(r *gin.Engine) { r.DELETE("/admin/announcements/:id", h.Delete) })
	if w.Code != http.StatusOK || mock.deleted != 12 {
		t.Errorf("删除失败: %d deleted=%d", w.Code, mock.deleted)
	}

	w = serve("DELETE", "/admin/announcements/abc", nil, "", func(r *gin.Engine) { r.DELETE("/admin/announcements/:id", h.Delete) })
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法 ID 期望 400，实际 %d", w.Code)
	}
}

func TestAnnouncementHandler_List_EmptyIsArray(t *testing.T) {
	h := NewAnnouncementHandler(&mockAnnouncementService{})

	w := serve("GET", "/admin/announcements", nil, "", func(r *gin.Engine) { r.GET("/admin/announcements", h.List) })
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Errorf("空列表应序列化为 []，实际 %s", w.Body.String())
	}
}

func TestGalleryHandler_Upload(t *testing.T) {
	mock := &mockGalleryService{}
	h := NewGalleryHandler(mock)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("title", "運動會")
	part, _ := mw.CreateFormFile("file", "sports.png")
	_, _ = part.Write([]byte("png-bytes"))
	_ = mw.Close()

	w := serve("POST", "/admin/gallery", &body, mw.FormDataContentType(), func(r *gin.Engine) { r.POST("/admin/gallery", h.Upload) })

	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际 %d: %s", w.Code, w.Body.String())
	}
	if mock.title != "運動會" || mock.file.Name != "sports.png" || string(mock.file.Content) != "png-bytes" {
		t.Errorf("上传内容不正确: title=%q file=%+v", mock.title, mock.file)
	}
}

func TestGalleryHandler_Upload_MissingFile(t *testing.T) {
	h := NewGalleryHandler(&mockGalleryService{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("title", "x")
	_ = mw.Close()

	w := serve("POST", "/admin/gallery", &body, mw.FormDataContentType(), func(r *gin.Engine) { r.POST("/admin/gallery", h.Upload) })
	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际 %d", w.Code)
	}
	if resp := parseResponse(w); resp.Message != msgNoFile {
		t.Errorf("期望 %q，实际 %q", msgNoFile, resp.Message)
	}
}

func TestExportHandler_ExportUsers(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := serve("GET", "/admin/export/users", nil, "", func(r *gin.Engine) { r.GET("/admin/export/users", h.ExportUsers) })

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type 不正确: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename*=UTF-8''") {
		t.Errorf("Content-Disposition 不正确: %s", cd)
	}
}

func TestExportHandler_GenerateFail(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	w := serve("GET", "/admin/export/users", nil, "", func(r *gin.Engine) { r.GET("/admin/export/users", h.ExportUsers) })
	if w.Code != http.StatusInternalServerError {
		t.Errorf("期望 500，实际 %d", w.Code)
	}
}

func TestDashboardHandler_Stats_Failure(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{err: &client.HTTPError{Status: 500, Detail: client.NoDetail{}}}, &mockAuthService{})

	w := serve("GET", "/admin", nil, "", func(r *gin.Engine) { r.GET("/admin", h.Stats) })

	if w.Code != http.StatusInternalServerError {
		t.Errorf("期望透传 500，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Message != "無法載入總覽數據，請稍後再試。" || resp.Details != "伺服器錯誤，請稍後再試" {
		t.Errorf("响应不正确: %+v", resp)
	}
}

func TestDashboardHandler_Layout(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{}, &mockAuthService{user: &dto.CurrentUserResponse{Account: "teacher01"}})

	w := serve("GET", "/admin/layout?path=/admin/users", nil, "", func(r *gin.Engine) { r.GET("/admin/layout", h.Layout) })

	body := w.Body.String()
	if !strings.Contains(body, "使用者管理") || !strings.Contains(body, "管理後台") || !strings.Contains(body, "teacher01") {
		t.Errorf("版面不正确: %s", body)
	}
}

func TestRespondError_EmptyDetailUsesFallback(t *testing.T) {
	mock := &mockAnnouncementService{err: &client.HTTPError{Status: 400, Detail: client.StringDetail("")}}
	h := NewAnnouncementHandler(mock)

	w := serve("PUT", "/admin/announcements/3", jsonBody(dto.AnnouncementRequest{Title: "a", Content: "b"}), "application/json",
		func(r *gin.Engine) { r.PUT("/admin/announcements/:id", h.Update) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望透传 400，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Message != "更新失敗" || resp.Details != "更新失敗" {
		t.Errorf("分类结果为空时 details 应退回页面提示: %+v", resp)
	}
}

func TestRespondError_EmptyDetailWithoutFallback(t *testing.T) {
	users := &mockUserService{err: &client.HTTPError{Status: 400, Detail: client.StringDetail("")}}
	h := NewUserHandler(users)

	w := serve("POST", "/admin/users", jsonBody(dto.UserRequest{Account: "s01", Password: "pw"}), "application/json",
		func(r *gin.Engine) { r.POST("/admin/users", h.Create) })

	if resp := parseResponse(w); resp.Message != errmsg.MsgDefaultFallback {
		t.Errorf("期望 %q，实际 %q", errmsg.MsgDefaultFallback, resp.Message)
	}
}

// ── Mock UserService ──

type mockUserService struct {
	err error
}

func (m *mockUserService) List(_ context.Context) ([]model.User, error) { return nil, m.err }
func (m *mockUserService) Create(_ context.Context, _ *dto.UserRequest) (*model.User, error) {
	return nil, m.err
}
func (m *mockUserService) Update(_ context.Context, _ int64, _ *dto.UserRequest) (*model.User, error) {
	return nil, m.err
}
func (m *mockUserService) Delete(_ context.Context, _ int64) error { return m.err }
