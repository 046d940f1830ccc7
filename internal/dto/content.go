package dto

// ── 内容模块请求 ──

// AnnouncementRequest 新增/更新公告
type AnnouncementRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// AssignmentRequest 新增/更新作业；Deadline 提交前统一为 YYYY-MM-DD
type AssignmentRequest struct {
	Subject  string `json:"subject"  validate:"required"`
	Title    string `json:"title"    validate:"required"`
	Deadline string `json:"deadline" validate:"required"`
	Status   string `json:"status"   validate:"required,oneof=open closed"`
	Content  string `json:"content"`
}

// ResourceRequest 新增/更新学习资源
type ResourceRequest struct {
	Category    string `json:"category"    validate:"required"`
	Title       string `json:"title"       validate:"required"`
	URL         string `json:"url"         validate:"required,url"`
	Description string `json:"description"`
}

// RuleRequest 新增/更新班规
type RuleRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GalleryItemRequest 修改相簿图片标题
type GalleryItemRequest struct {
	Title string `json:"title" validate:"required"`
}

// SiteSettingsRequest 更新站台设定
type SiteSettingsRequest struct {
	SchoolName    string `json:"schoolName"`
	ClassName     string `json:"className"`
	Subtitle      string `json:"subtitle"`
	TeacherName   string `json:"teacherName"`
	ContactEmail  string `json:"contactEmail"  validate:"omitempty,email"`
	ScheduleImage string `json:"scheduleImage,omitempty"`
}
