package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/model"
)

func TestDashboardService_Stats(t *testing.T) {
	apis := newMockAPIs()
	apis.announcement.items = make([]model.Announcement, 3)
	apis.assignment.items = make([]model.Assignment, 2)
	apis.user.items = make([]model.User, 25)
	apis.gallery.items = make([]model.GalleryItem, 4)

	svc := NewDashboardService(apis.client(), zap.NewNop())
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats 失败: %v", err)
	}
	if stats.Announcements != 3 || stats.Assignments != 2 || stats.Users != 25 || stats.GalleryItems != 4 {
		t.Errorf("统计不正确: %+v", stats)
	}
}

func TestDashboardService_Stats_AnyFailureFailsPanel(t *testing.T) {
	apis := newMockAPIs()
	apis.announcement.items = make([]model.Announcement, 3)
	apis.user.err = unauthorized()

	svc := NewDashboardService(apis.client(), zap.NewNop())
	stats, err := svc.Stats(context.Background())
	if !errors.Is(err, apis.user.err) {
		t.Errorf("期望返回用户列表的错误，实际 %v", err)
	}
	if stats != nil {
		t.Errorf("失败时不应返回部分统计，实际 %+v", stats)
	}
}
