package game

import (
	"log"
	"sort"
)

// 已知菜单名称
const (
	MenuPause = "pause"
)

// MenuManager 记录当前打开的菜单
// 有任意菜单打开时，游戏世界中的点击应被忽略
type MenuManager struct {
	open map[string]bool
}

// NewMenuManager 创建菜单管理器
func NewMenuManager() *MenuManager {
	return &MenuManager{open: make(map[string]bool)}
}

// Open 打开菜单
func (mm *MenuManager) Open(name string) {
	if !mm.open[name] {
		mm.open[name] = true
		log.Printf("[MenuManager] Menu opened: %s", name)
	}
}

// Close 关闭菜单
func (mm *MenuManager) Close(name string) {
	if mm.open[name] {
		delete(mm.open, name)
		log.Printf("[MenuManager] Menu closed: %s", name)
	}
}

// Toggle 切换菜单状态，返回切换后是否打开
func (mm *MenuManager) Toggle(name string) bool {
	if mm.open[name] {
		mm.Close(name)
		return false
	}
	mm.Open(name)
	return true
}

// IsOpen 检查指定菜单是否打开
func (mm *MenuManager) IsOpen(name string) bool {
	return mm.open[name]
}

// HasOpenMenu 检查是否有任意菜单打开
func (mm *MenuManager) HasOpenMenu() bool {
	return len(mm.open) > 0
}

// OpenMenus 返回已打开菜单名称（按字母排序）
func (mm *MenuManager) OpenMenus() []string {
	names := make([]string, 0, len(mm.open))
	for name := range mm.open {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
