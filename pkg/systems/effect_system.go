package systems

import (
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/utils"
)

// EffectSystem 推进收集特效：粒子向外扩散并减速
type EffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{entityManager: em}
}

// Update 更新所有特效的播放进度与粒子偏移
// 粒子偏移 = 速度 × 时长/2 × EaseOutQuad(进度)，到达终点时速度恰好衰减为零
func (s *EffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CollectionEffectComponent](s.entityManager) {
		effect, _ := ecs.GetComponent[*components.CollectionEffectComponent](s.entityManager, id)

		effect.Elapsed += deltaTime
		spread := effect.Duration / 2 * utils.EaseOutQuad(utils.Progress(effect.Elapsed, effect.Duration))
		for i := range effect.Particles {
			p := &effect.Particles[i]
			p.OffsetX = p.VelocityX * spread
			p.OffsetY = p.VelocityY * spread
		}
	}
}

// EffectAlpha 返回特效当前的不透明度（线性淡出）
func EffectAlpha(effect *components.CollectionEffectComponent) float64 {
	return 1 - utils.Progress(effect.Elapsed, effect.Duration)
}
