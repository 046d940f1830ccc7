package dto

import "github.com/yanggu0413/yles503-react/internal/model"

// ── 页面视图模型 ──

// HomeItem 首页列表项
type HomeItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject,omitempty"`
	Date     string `json:"date"`
	Deadline string `json:"deadline,omitempty"`
}

// HomeView 首页：最新公告与作业各前 5 条（服务端顺序）
type HomeView struct {
	Announcements []HomeItem `json:"announcements"`
	Assignments   []HomeItem `json:"assignments"`
}

// AssignmentView 作业 + 截止状态（仅用于显示）
type AssignmentView struct {
	model.Assignment
	Phase       string `json:"phase"`        // past | current | upcoming
	StatusLabel string `json:"status_label"` // 已截止 | 進行中
	Color       string `json:"color"`
}

// ResourceGroup 按分类分组的资源
type ResourceGroup struct {
	Category string           `json:"category"`
	Items    []model.Resource `json:"items"`
}

// ScheduleView 课表页
type ScheduleView struct {
	Rows  []model.ScheduleRow `json:"rows"`
	Image string              `json:"image,omitempty"`
}

// DashboardStats 后台总览统计
type DashboardStats struct {
	Announcements int `json:"announcements"`
	Assignments   int `json:"assignments"`
	Users         int `json:"users"`
	GalleryItems  int `json:"gallery_items"`
}

// UploadFile 浏览器上传的文件，由前端服务转发给 API
type UploadFile struct {
	Name    string
	Content []byte
}
