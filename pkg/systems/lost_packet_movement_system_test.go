package systems

import (
	"testing"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

func newDriftingPacket(em *ecs.EntityManager, x, z, targetX, targetZ, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Z: z})
	ecs.AddComponent(em, id, &components.LostPacketComponent{
		State:   components.LostPacketDrifting,
		TargetX: targetX,
		TargetZ: targetZ,
		Speed:   speed,
	})
	return id
}

func TestMovementMovesTowardTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	listener := &fakeListener{}
	s := NewLostPacketMovementSystem(em, listener)
	id := newDriftingPacket(em, 0, 0, 10, 0, 2)

	s.Update(1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if !almostEqual(pos.X, 2) || pos.Z != 0 {
		t.Errorf("位置 = (%v, %v), 期望 (2, 0)", pos.X, pos.Z)
	}
	if len(listener.reached) != 0 {
		t.Errorf("未到达目标时不应通知")
	}
}

func TestMovementNotifiesOnArrival(t *testing.T) {
	em := ecs.NewEntityManager()
	listener := &fakeListener{}
	s := NewLostPacketMovementSystem(em, listener)
	id := newDriftingPacket(em, 0, 0, 3, 4, 1)

	s.Update(10)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	packet, _ := ecs.GetComponent[*components.LostPacketComponent](em, id)
	if pos.X != 3 || pos.Z != 4 {
		t.Errorf("到达后应停在目标点，实际 (%v, %v)", pos.X, pos.Z)
	}
	if packet.State != components.LostPacketIdle {
		t.Errorf("到达后状态应为 Idle，实际 %v", packet.State)
	}
	if len(listener.reached) != 1 || listener.reached[0] != id {
		t.Fatalf("期望通知一次实体 %d，实际 %v", id, listener.reached)
	}

	// 不再重复通知
	s.Update(10)
	if len(listener.reached) != 1 {
		t.Errorf("到达后不应重复通知，实际 %d 次", len(listener.reached))
	}
}

func TestMovementSkipsInactiveAndIdle(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewLostPacketMovementSystem(em, nil)

	inactive := newDriftingPacket(em, 0, 0, 10, 0, 5)
	em.SetActive(inactive, false)

	idle := newDriftingPacket(em, 0, 0, 10, 0, 5)
	packet, _ := ecs.GetComponent[*components.LostPacketComponent](em, idle)
	packet.State = components.LostPacketIdle

	s.Update(1)

	for _, id := range []ecs.EntityID{inactive, idle} {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 0 {
			t.Errorf("实体 %d 不应移动，X=%v", id, pos.X)
		}
	}
}
