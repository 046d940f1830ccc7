package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// CalendarProductID 日历文件的 PRODID
const CalendarProductID = "-//yles503//assignments//ZH-TW"

// CalendarService 作业截止日订阅（iCalendar）
type CalendarService interface {
	// Assignments 每份作业一个全天事件，日期为截止日；已关闭或无截止日的作业不输出
	Assignments(ctx context.Context) (string, error)
}

type calendarService struct {
	api    client.PublicAPI
	now    Clock
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(api client.PublicAPI, now Clock, logger *zap.Logger) CalendarService {
	return &calendarService{api: api, now: now, logger: logger}
}

func (s *calendarService) Assignments(ctx context.Context) (string, error) {
	list, err := s.api.ListAssignments(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(CalendarProductID)
	cal.SetXWRCalName("作業繳交期限")

	stamp := s.now().UTC()
	for _, a := range sortAssignments(list) {
		if a.Deadline.IsZero() || a.Status == model.AssignmentClosed {
			continue
		}
		day := a.Deadline.Time
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		event := cal.AddEvent(fmt.Sprintf("assignment-%d@yles503", a.ID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(eventSummary(a))
		if a.Content != "" {
			event.SetDescription(a.Content)
		}
	}
	return cal.Serialize(), nil
}

func eventSummary(a model.Assignment) string {
	if a.Subject == "" {
		return a.Title
	}
	return fmt.Sprintf("[%s] %s", a.Subject, a.Title)
}
