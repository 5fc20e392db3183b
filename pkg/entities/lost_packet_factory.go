package entities

import (
	"image/color"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

// 数据包配色
var (
	lostPacketFill   = color.RGBA{R: 64, G: 200, B: 255, A: 230}
	lostPacketStroke = color.RGBA{R: 220, G: 250, B: 255, A: 255}
)

// NewLostPacketEntity 创建一个丢失数据包实体（供对象池预分配）
// 实体创建后处于闲置状态，由生成系统设置位置与目标后启用
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 数据包参数（速度、半径、高度）
//
// 返回: 创建的实体ID
func NewLostPacketEntity(em *ecs.EntityManager, cfg config.PacketConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{Y: cfg.Height})
	ecs.AddComponent(em, id, &components.LostPacketComponent{
		State: components.LostPacketIdle,
		Speed: cfg.Speed,
	})
	ecs.AddComponent(em, id, &components.SphereColliderComponent{Radius: cfg.Radius})
	ecs.AddComponent(em, id, &components.TagComponent{Name: components.TagLostPacket})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Radius:      cfg.Radius,
		FillColor:   lostPacketFill,
		StrokeColor: lostPacketStroke,
	})

	return id
}

// NewLostPacketPool 创建固定大小的数据包对象池
func NewLostPacketPool(em *ecs.EntityManager, size int, cfg config.PacketConfig) *ecs.EntityPool {
	return ecs.NewEntityPool(em, size, func(em *ecs.EntityManager) ecs.EntityID {
		return NewLostPacketEntity(em, cfg)
	})
}
