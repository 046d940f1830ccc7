package model

// 作业状态（由服务端给定）
const (
	AssignmentOpen   = "open"
	AssignmentClosed = "closed"
)

// Assignment 班级作业
type Assignment struct {
	ID        int64  `json:"id"`
	Subject   string `json:"subject"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Deadline  Date   `json:"deadline"`
	Status    string `json:"status"` // open | closed
	CreatedAt Time   `json:"created_at"`
	UpdatedAt Time   `json:"updated_at"`
}
