package present

import "time"

// Phase 作业相对截止日期所处阶段，仅用于显示
type Phase string

const (
	PhasePast     Phase = "past"     // 已过截止时间
	PhaseCurrent  Phase = "current"  // 发布后、截止前（含两端）
	PhaseUpcoming Phase = "upcoming" // 尚未开始
)

// ClassifyDeadline 根据当前时间、发布时间与截止时间判定阶段
func ClassifyDeadline(now, createdAt, deadline time.Time) Phase {
	if now.After(deadline) {
		return PhasePast
	}
	if !now.Before(createdAt) {
		return PhaseCurrent
	}
	return PhaseUpcoming
}

// Label 作业卡片上的状态标签
func (p Phase) Label() string {
	if p == PhasePast {
		return "已截止"
	}
	return "進行中"
}

// Color 时间轴节点颜色
func (p Phase) Color() string {
	switch p {
	case PhasePast:
		return "gray"
	case PhaseCurrent:
		return "blue"
	default:
		return "primary"
	}
}
