package present

import "strings"

// MenuItem 后台侧边菜单项
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Crumb 面包屑节点
type Crumb struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// AdminMenu 后台菜单（顺序即显示顺序）
var AdminMenu = []MenuItem{
	{Key: "/admin", Label: "總覽"},
	{Key: "/admin/announcements", Label: "公告管理"},
	{Key: "/admin/assignments", Label: "作業管理"},
	{Key: "/admin/schedule", Label: "課表管理"},
	{Key: "/admin/gallery", Label: "相簿管理"},
	{Key: "/admin/resources", Label: "資源管理"},
	{Key: "/admin/rules", Label: "班規管理"},
	{Key: "/admin/users", Label: "使用者管理"},
	{Key: "/admin/settings", Label: "站台設定"},
}

// Breadcrumbs 根据后台路径生成面包屑：根节点固定为“管理後台”，
// 之后每一段只有在菜单中存在对应项时才出现
func Breadcrumbs(path string) []Crumb {
	crumbs := []Crumb{{Path: "/admin", Label: "管理後台"}}

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) <= 1 {
		return crumbs
	}
	for _, seg := range segments[1:] {
		current := "/admin/" + seg
		for _, item := range AdminMenu {
			if item.Key == current {
				crumbs = append(crumbs, Crumb{Path: current, Label: item.Label})
				break
			}
		}
	}
	return crumbs
}
