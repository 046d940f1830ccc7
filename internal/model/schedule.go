package model

// SiteSettings 站台设定（单例，无 id）
type SiteSettings struct {
	SchoolName    string `json:"schoolName"`
	ClassName     string `json:"className"`
	Subtitle      string `json:"subtitle"`
	TeacherName   string `json:"teacherName"`
	ContactEmail  string `json:"contactEmail"`
	ScheduleImage string `json:"scheduleImage"`
}

// ScheduleRow 课表的一行：时间 × 星期一至星期五
type ScheduleRow struct {
	Time string `json:"time"`
	Mon  string `json:"mon"`
	Tue  string `json:"tue"`
	Wed  string `json:"wed"`
	Thu  string `json:"thu"`
	Fri  string `json:"fri"`
}

// ScheduleImage 课表图片上传结果
type ScheduleImage struct {
	ImageURL string `json:"imageUrl"`
}
