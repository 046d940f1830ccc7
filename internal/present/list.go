// Package present 为页面显示整理列表：排序、分组、截止状态。
// 所有函数都是纯函数，不访问网络与会话。
package present

import (
	"slices"
	"time"
)

// FallbackCategory 未填写分类的资源归入此组
const FallbackCategory = "其他"

// SortByDateDesc 按日期从新到旧排序，日期相同时保持输入顺序
// 返回新切片，不修改 items
func SortByDateDesc[T any](items []T, dateOf func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return dateOf(b).Compare(dateOf(a))
	})
	return out
}

// Group 一个分类及其条目（保持输入顺序）
type Group[T any] struct {
	Category string
	Items    []T
}

// GroupByCategory 按分类分组，分组顺序为分类首次出现的顺序
// 空分类归入 FallbackCategory
func GroupByCategory[T any](items []T, categoryOf func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, item := range items {
		category := categoryOf(item)
		if category == "" {
			category = FallbackCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, Group[T]{Category: category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Take 取前 n 条，不足 n 条时全部返回
func Take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
