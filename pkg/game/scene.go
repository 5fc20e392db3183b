package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个游戏场景，拥有独立的更新与渲染逻辑
type Scene interface {
	// Update 根据经过的时间（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 切换到其他场景之前
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
