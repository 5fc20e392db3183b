package components

import "image/color"

// RenderableComponent 描述实体的简单图形表现
// 以世界单位的半径绘制为带描边的圆形
type RenderableComponent struct {
	Radius      float64
	FillColor   color.RGBA
	StrokeColor color.RGBA
	Pulse       float64 // 呼吸动画相位（秒），由渲染系统推进
}
