package systems

import (
	"math"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

// LostPacketListener 接收数据包到达目标点（未被收集）的通知
type LostPacketListener interface {
	OnLostPacketReachedTarget(id ecs.EntityID)
}

// LostPacketMovementSystem 让漂移中的数据包以恒定速度飘向目标点
type LostPacketMovementSystem struct {
	entityManager *ecs.EntityManager
	listener      LostPacketListener
}

// NewLostPacketMovementSystem 创建移动系统
// listener 可为 nil，此时到达目标的数据包只会停在原地
func NewLostPacketMovementSystem(em *ecs.EntityManager, listener LostPacketListener) *LostPacketMovementSystem {
	return &LostPacketMovementSystem{
		entityManager: em,
		listener:      listener,
	}
}

// Update 移动所有漂移中的数据包
func (s *LostPacketMovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.LostPacketComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		packet, _ := ecs.GetComponent[*components.LostPacketComponent](s.entityManager, id)
		if packet.State != components.LostPacketDrifting {
			continue
		}

		dx := packet.TargetX - pos.X
		dz := packet.TargetZ - pos.Z
		distance := math.Hypot(dx, dz)
		step := packet.Speed * deltaTime

		if distance <= step {
			pos.X = packet.TargetX
			pos.Z = packet.TargetZ
			packet.State = components.LostPacketIdle
			if s.listener != nil {
				s.listener.OnLostPacketReachedTarget(id)
			}
			continue
		}

		pos.X += dx / distance * step
		pos.Z += dz / distance * step
	}
}
