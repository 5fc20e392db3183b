package components

import "image/color"

// EffectParticle 收集特效中的单个粒子（相对特效中心的屏幕空间偏移）
type EffectParticle struct {
	OffsetX, OffsetY float64
	VelocityX        float64
	VelocityY        float64
	Size             float64
}

// CollectionEffectComponent 数据包被收集时的爆散特效
// 特效实体同时拥有 LifetimeComponent，由 LifetimeSystem 负责销毁
type CollectionEffectComponent struct {
	Particles []EffectParticle
	Color     color.RGBA
	Elapsed   float64 // 已播放时间（秒）
	Duration  float64 // 淡出总时长（秒）
}
