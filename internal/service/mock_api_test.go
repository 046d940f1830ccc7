package service

import (
	"context"
	"sync"
	"time"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// ── 测试辅助 ──

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func ts(s string) model.Time {
	t, err := model.ParseTime(s)
	if err != nil {
		panic(err)
	}
	return model.Time{Time: t}
}

func date(s string) model.Date {
	return model.Date{Time: ts(s).Time}
}

func unauthorized() error {
	return &client.HTTPError{Method: "GET", Path: "/admin/x", Status: 401, Detail: client.StringDetail("Could not validate credentials")}
}

// ── Mock AuthAPI ──

type mockAuthAPI struct {
	token string
	err   error
	calls int
}

func (m *mockAuthAPI) Login(_ context.Context, _, _ string) (*dto.TokenResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &dto.TokenResponse{AccessToken: m.token, TokenType: "bearer"}, nil
}

// ── Mock PublicAPI ──

type mockPublicAPI struct {
	announcements []model.Announcement
	assignments   []model.Assignment
	gallery       []model.GalleryItem
	resources     []model.Resource
	rules         []model.Rule
	rows          []model.ScheduleRow
	site          *model.SiteSettings

	// errs 按方法名注入错误；block 中的方法会一直等到 context 取消
	errs  map[string]error
	block map[string]bool
}

func (m *mockPublicAPI) result(ctx context.Context, method string) error {
	if m.block[method] {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.errs[method]
}

func (m *mockPublicAPI) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	if err := m.result(ctx, "announcements"); err != nil {
		return nil, err
	}
	return m.announcements, nil
}

func (m *mockPublicAPI) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	if err := m.result(ctx, "assignments"); err != nil {
		return nil, err
	}
	return m.assignments, nil
}

func (m *mockPublicAPI) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	if err := m.result(ctx, "gallery"); err != nil {
		return nil, err
	}
	return m.gallery, nil
}

func (m *mockPublicAPI) ListResources(ctx context.Context) ([]model.Resource, error) {
	if err := m.result(ctx, "resources"); err != nil {
		return nil, err
	}
	return m.resources, nil
}

func (m *mockPublicAPI) ListRules(ctx context.Context) ([]model.Rule, error) {
	if err := m.result(ctx, "rules"); err != nil {
		return nil, err
	}
	return m.rules, nil
}

func (m *mockPublicAPI) GetSchedule(ctx context.Context) ([]model.ScheduleRow, error) {
	if err := m.result(ctx, "schedule"); err != nil {
		return nil, err
	}
	return m.rows, nil
}

func (m *mockPublicAPI) GetSite(ctx context.Context) (*model.SiteSettings, error) {
	if err := m.result(ctx, "site"); err != nil {
		return nil, err
	}
	return m.site, nil
}

// ── Mock 通用 CRUD（公告、作业、资源、班规、用户） ──

type mockCRUD[T any, R any] struct {
	mu      sync.Mutex
	items   []T
	err     error
	calls   int
	created []*R
	updated map[int64]*R
	deleted []int64
}

func newMockCRUD[T any, R any](items ...T) *mockCRUD[T, R] {
	return &mockCRUD[T, R]{items: items, updated: make(map[int64]*R)}
}

func (m *mockCRUD[T, R]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockCRUD[T, R]) Create(_ context.Context, req *R) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	var out T
	return &out, nil
}

func (m *mockCRUD[T, R]) Update(_ context.Context, id int64, req *R) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.updated[id] = req
	var out T
	return &out, nil
}

func (m *mockCRUD[T, R]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// ── Mock GalleryAPI ──

type mockGalleryAPI struct {
	items   []model.GalleryItem
	err     error
	calls   int
	titles  []string
	uploads []*dto.UploadFile
}

func (m *mockGalleryAPI) List(_ context.Context) ([]model.GalleryItem, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockGalleryAPI) Upload(_ context.Context, title string, file *dto.UploadFile) (*model.GalleryItem, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.titles = append(m.titles, title)
	m.uploads = append(m.uploads, file)
	return &model.GalleryItem{ID: int64(len(m.uploads)), Title: title}, nil
}

func (m *mockGalleryAPI) Update(_ context.Context, id int64, req *dto.GalleryItemRequest) (*model.GalleryItem, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &model.GalleryItem{ID: id, Title: req.Title}, nil
}

func (m *mockGalleryAPI) Delete(_ context.Context, _ int64) error {
	m.calls++
	return m.err
}

// ── Mock SiteAPI / ScheduleAPI ──

type mockSiteAPI struct {
	site  model.SiteSettings
	calls int
}

func (m *mockSiteAPI) Get(_ context.Context) (*model.SiteSettings, error) {
	m.calls++
	s := m.site
	return &s, nil
}

func (m *mockSiteAPI) Update(_ context.Context, req *dto.SiteSettingsRequest) (*model.SiteSettings, error) {
	m.calls++
	m.site = model.SiteSettings{
		SchoolName:    req.SchoolName,
		ClassName:     req.ClassName,
		Subtitle:      req.Subtitle,
		TeacherName:   req.TeacherName,
		ContactEmail:  req.ContactEmail,
		ScheduleImage: req.ScheduleImage,
	}
	s := m.site
	return &s, nil
}

type mockScheduleAPI struct {
	rows    []model.ScheduleRow
	calls   int
	deleted bool
}

func (m *mockScheduleAPI) Get(_ context.Context) ([]model.ScheduleRow, error) {
	m.calls++
	return m.rows, nil
}

func (m *mockScheduleAPI) Update(_ context.Context, rows []model.ScheduleRow) error {
	m.calls++
	m.rows = rows
	return nil
}

func (m *mockScheduleAPI) UploadImage(_ context.Context, file *dto.UploadFile) (*model.ScheduleImage, error) {
	m.calls++
	return &model.ScheduleImage{ImageURL: "/uploads/" + file.Name}, nil
}

func (m *mockScheduleAPI) DeleteImage(_ context.Context) error {
	m.calls++
	m.deleted = true
	return nil
}

// ── 组装 ──

type mockAPIs struct {
	auth         *mockAuthAPI
	public       *mockPublicAPI
	announcement *mockCRUD[model.Announcement, dto.AnnouncementRequest]
	assignment   *mockCRUD[model.Assignment, dto.AssignmentRequest]
	resource     *mockCRUD[model.Resource, dto.ResourceRequest]
	rule         *mockCRUD[model.Rule, dto.RuleRequest]
	user         *mockCRUD[model.User, dto.UserRequest]
	gallery      *mockGalleryAPI
	site         *mockSiteAPI
	schedule     *mockScheduleAPI
}

func newMockAPIs() *mockAPIs {
	return &mockAPIs{
		auth:         &mockAuthAPI{token: "header.payload.sig"},
		public:       &mockPublicAPI{},
		announcement: newMockCRUD[model.Announcement, dto.AnnouncementRequest](),
		assignment:   newMockCRUD[model.Assignment, dto.AssignmentRequest](),
		resource:     newMockCRUD[model.Resource, dto.ResourceRequest](),
		rule:         newMockCRUD[model.Rule, dto.RuleRequest](),
		user:         newMockCRUD[model.User, dto.UserRequest](),
		gallery:      &mockGalleryAPI{},
		site:         &mockSiteAPI{},
		schedule:     &mockScheduleAPI{},
	}
}

func (m *mockAPIs) client() *client.Client {
	return &client.Client{
		Public:       m.public,
		Auth:         m.auth,
		Announcement: m.announcement,
		Assignment:   m.assignment,
		Gallery:      m.gallery,
		Resource:     m.resource,
		Rule:         m.rule,
		User:         m.user,
		Site:         m.site,
		Schedule:     m.schedule,
	}
}
