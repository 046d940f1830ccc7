package model

// Resource 学习资源；Category 为自由文本，仅用于前端分组
type Resource struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Rule 班规，顺序即服务端返回顺序
type Rule struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
