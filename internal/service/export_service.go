package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/model"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 檔案失敗")

// ExportService 后台名单导出
//
// 设计说明：
//   - 数据实时从 API 读取，不做缓存
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置下载响应头
//   - 列表为空时仍导出只有表头的文件
type ExportService interface {
	// ExportUsers 用户名单，按建立时间从新到旧
	ExportUsers(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportAssignments 作业清单，按截止日期从晚到早，附带当前状态
	ExportAssignments(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	users       client.UserAPI
	assignments client.AssignmentAPI
	now         Clock
	logger      *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(users client.UserAPI, assignments client.AssignmentAPI, now Clock, logger *zap.Logger) ExportService {
	return &exportService{users: users, assignments: assignments, now: now, logger: logger}
}

var roleNames = map[string]string{
	model.RoleAdmin:   "管理員",
	model.RoleTeacher: "教師",
	model.RoleStudent: "學生",
}

func (s *exportService) ExportUsers(ctx context.Context) (*bytes.Buffer, string, error) {
	users, err := NewUserService(s.users, s.logger).List(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		role := roleNames[u.Role]
		if role == "" {
			role = u.Role
		}
		status := "停用"
		if u.Enabled {
			status = "啟用"
		}
		rows = append(rows, []interface{}{u.ID, u.Account, u.Name, role, status, formatDate(u.CreatedAt.Time)})
	}

	buf, err := s.writeSheet("使用者", []string{"ID", "帳號", "姓名", "角色", "狀態", "建立時間"}, []float64{8, 18, 16, 10, 8, 14}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("使用者名單_%s.xlsx", s.now().Format("20060102")), nil
}

func (s *exportService) ExportAssignments(ctx context.Context) (*bytes.Buffer, string, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, "", err
	}

	views := assignmentViews(sortAssignments(list), s.now())
	rows := make([][]interface{}, 0, len(views))
	for _, v := range views {
		rows = append(rows, []interface{}{v.ID, v.Subject, v.Title, v.Deadline.String(), v.Status, v.StatusLabel, v.Content})
	}

	buf, err := s.writeSheet("作業", []string{"ID", "科目", "標題", "繳交期限", "狀態", "進度", "內容"}, []float64{8, 12, 24, 12, 8, 8, 40}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("作業清單_%s.xlsx", s.now().Format("20060102")), nil
}

// writeSheet 生成单个工作表：第 1 行为加粗表头，数据从第 2 行开始
func (s *exportService) writeSheet(sheetName string, header []string, widths []float64, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("建立工作表失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(sheetName, "A1", last, headerStyle)

	for i, row := range rows {
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, start, &row); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}
