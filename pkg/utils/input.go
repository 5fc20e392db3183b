// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 读取 ebiten 当前帧的输入状态
// 同时支持鼠标和触摸输入，供游戏系统通过接口注入
type EbitenInput struct {
	touchBuf []ebiten.TouchID
}

// NewEbitenInput 创建输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// JustPressedPoints 返回本帧刚按下的所有指针位置（屏幕坐标）
//
// 鼠标左键优先：刚按下时只返回光标位置；
// 否则返回所有刚开始的触摸点。
func (in *EbitenInput) JustPressedPoints() []image.Point {
	mousePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()

	var touches []image.Point
	if !mousePressed {
		in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
		for _, id := range in.touchBuf {
			tx, ty := ebiten.TouchPosition(id)
			touches = append(touches, image.Point{X: tx, Y: ty})
		}
	}
	return SelectPointers(mousePressed, image.Point{X: x, Y: y}, touches)
}

// SelectPointers 按优先级选择本帧要处理的指针
// 鼠标刚按下时只返回光标；否则返回全部触摸点；都没有时返回 nil
func SelectPointers(mousePressed bool, cursor image.Point, touches []image.Point) []image.Point {
	if mousePressed {
		return []image.Point{cursor}
	}
	if len(touches) == 0 {
		return nil
	}
	points := make([]image.Point, len(touches))
	copy(points, touches)
	return points
}

// PanDirection 返回方向键 / WASD 的平移方向
// dx: 右为正；dz: 上为正（屏幕向上对应世界 +Z）
func (in *EbitenInput) PanDirection() (dx, dz float64) {
	return PanAxes(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	)
}

// PauseJustPressed ESC 是否刚按下
func (in *EbitenInput) PauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// SoundToggleJustPressed M 键是否刚按下
func (in *EbitenInput) SoundToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// PanAxes 将按键状态合成为单位方向
// 相反方向同时按下时互相抵消，对角方向不做归一化
func PanAxes(left, right, up, down bool) (dx, dz float64) {
	if left {
		dx--
	}
	if right {
		dx++
	}
	if up {
		dz++
	}
	if down {
		dz--
	}
	return dx, dz
}
