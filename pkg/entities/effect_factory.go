package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

var collectionEffectColor = color.RGBA{R: 120, G: 230, B: 255, A: 255}

// NewCollectionEffect 在数据包位置创建收集爆散特效
// 特效不进入对象池，寿命到期后由 LifetimeSystem 销毁
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源（粒子方向与速度抖动）
//   - x, y, z: 特效的世界坐标
//   - cfg: 特效参数
//
// 返回:
//   - ecs.EntityID: 特效实体ID
//   - error: 参数无效时返回错误
func NewCollectionEffect(em *ecs.EntityManager, rng *rand.Rand, x, y, z float64, cfg config.EffectConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}

	particles := make([]components.EffectParticle, 0, cfg.ParticleCount)
	for i := 0; i < cfg.ParticleCount; i++ {
		// 均匀分布在圆周上，附加少量角度与速度抖动
		angle := 2*math.Pi*float64(i)/float64(cfg.ParticleCount) + (rng.Float64()-0.5)*0.4
		speed := cfg.ParticleSpeed * (0.6 + 0.8*rng.Float64())
		particles = append(particles, components.EffectParticle{
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Size:      2 + 2*rng.Float64(),
		})
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Z: z})
	ecs.AddComponent(em, id, &components.CollectionEffectComponent{
		Particles: particles,
		Color:     collectionEffectColor,
		Duration:  cfg.Duration,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: cfg.Duration})

	return id, nil
}
