package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/dto"
	"github.com/yanggu0413/yles503-react/internal/model"
	"github.com/yanggu0413/yles503-react/internal/present"
)

// HomeListSize 首页每个列表显示的条数
const HomeListSize = 5

// PublicService 前台页面（无需登录）
type PublicService interface {
	// Home 最新公告与作业各前 5 条，两者并发获取，任一失败整体失败
	Home(ctx context.Context) (*dto.HomeView, error)
	Announcements(ctx context.Context) ([]model.Announcement, error)
	Assignments(ctx context.Context) ([]dto.AssignmentView, error)
	Gallery(ctx context.Context) ([]model.GalleryItem, error)
	Resources(ctx context.Context) ([]dto.ResourceGroup, error)
	Rules(ctx context.Context) ([]model.Rule, error)
	Schedule(ctx context.Context) (*dto.ScheduleView, error)
	Contact(ctx context.Context) (*model.SiteSettings, error)
}

type publicService struct {
	api    client.PublicAPI
	now    Clock
	logger *zap.Logger
}

// NewPublicService 创建 PublicService 实例
func NewPublicService(api client.PublicAPI, now Clock, logger *zap.Logger) PublicService {
	return &publicService{api: api, now: now, logger: logger}
}

func (s *publicService) Home(ctx context.Context) (*dto.HomeView, error) {
	var (
		announcements []model.Announcement
		assignments   []model.Assignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		announcements, err = s.api.ListAnnouncements(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.api.ListAssignments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 首页保持 API 返回的顺序，不再排序
	view := &dto.HomeView{
		Announcements: make([]dto.HomeItem, 0, HomeListSize),
		Assignments:   make([]dto.HomeItem, 0, HomeListSize),
	}
	for _, a := range present.Take(announcements, HomeListSize) {
		view.Announcements = append(view.Announcements, dto.HomeItem{
			ID:    a.ID,
			Title: a.Title,
			Date:  displayDate(a.UpdatedAt, a.CreatedAt),
		})
	}
	for _, a := range present.Take(assignments, HomeListSize) {
		view.Assignments = append(view.Assignments, dto.HomeItem{
			ID:       a.ID,
			Title:    a.Title,
			Subject:  a.Subject,
			Date:     displayDate(a.UpdatedAt, a.CreatedAt),
			Deadline: a.Deadline.String(),
		})
	}
	return view, nil
}

func (s *publicService) Announcements(ctx context.Context) ([]model.Announcement, error) {
	list, err := s.api.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	return sortAnnouncements(list), nil
}

func (s *publicService) Assignments(ctx context.Context) ([]dto.AssignmentView, error) {
	list, err := s.api.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return assignmentViews(sortAssignments(list), s.now()), nil
}

func (s *publicService) Gallery(ctx context.Context) ([]model.GalleryItem, error) {
	list, err := s.api.ListGallery(ctx)
	if err != nil {
		return nil, err
	}
	return sortGallery(list), nil
}

func (s *publicService) Resources(ctx context.Context) ([]dto.ResourceGroup, error) {
	list, err := s.api.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	groups := present.GroupByCategory(list, func(r model.Resource) string { return r.Category })

	out := make([]dto.ResourceGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.ResourceGroup{Category: g.Category, Items: g.Items})
	}
	return out, nil
}

func (s *publicService) Rules(ctx context.Context) ([]model.Rule, error) {
	return s.api.ListRules(ctx)
}

// Schedule 课表表格与站台设定中的课表图片并发获取，任一失败整体失败
func (s *publicService) Schedule(ctx context.Context) (*dto.ScheduleView, error) {
	return scheduleView(ctx, s.api)
}

func (s *publicService) Contact(ctx context.Context) (*model.SiteSettings, error) {
	return s.api.GetSite(ctx)
}

// ── 共用的整理逻辑（前台与后台列表一致） ──

func sortAnnouncements(list []model.Announcement) []model.Announcement {
	return present.SortByDateDesc(list, func(a model.Announcement) time.Time { return a.CreatedAt.Time })
}

func sortAssignments(list []model.Assignment) []model.Assignment {
	return present.SortByDateDesc(list, func(a model.Assignment) time.Time { return a.Deadline.Time })
}

func sortGallery(list []model.GalleryItem) []model.GalleryItem {
	return present.SortByDateDesc(list, func(g model.GalleryItem) time.Time { return g.CreatedAt.Time })
}

func assignmentViews(list []model.Assignment, now time.Time) []dto.AssignmentView {
	out := make([]dto.AssignmentView, 0, len(list))
	for _, a := range list {
		phase := present.ClassifyDeadline(now, a.CreatedAt.Time, a.Deadline.Time)
		out = append(out, dto.AssignmentView{
			Assignment:  a,
			Phase:       string(phase),
			StatusLabel: phase.Label(),
			Color:       phase.Color(),
		})
	}
	return out
}

func scheduleView(ctx context.Context, api client.PublicAPI) (*dto.ScheduleView, error) {
	var (
		rows []model.ScheduleRow
		site *model.SiteSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = api.GetSchedule(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		site, err = api.GetSite(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &dto.ScheduleView{Rows: rows}
	if view.Rows == nil {
		view.Rows = []model.ScheduleRow{}
	}
	if site != nil {
		view.Image = site.ScheduleImage
	}
	return view, nil
}

// displayDate 首页日期：优先更新时间，其次建立时间
func displayDate(updated, created model.Time) string {
	t := updated.Time
	if t.IsZero() {
		t = created.Time
	}
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}
