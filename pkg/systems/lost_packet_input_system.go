package systems

import (
	"image"
	"math"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/physics"
)

// PointerSource 提供本帧刚按下的指针位置
type PointerSource interface {
	JustPressedPoints() []image.Point
}

// MenuState 报告是否有菜单打开
type MenuState interface {
	HasOpenMenu() bool
}

// LostPacketCollector 收集被点中的数据包
type LostPacketCollector interface {
	Collect(id ecs.EntityID) bool
}

// LostPacketInputSystem 将点击/触摸转换为摄像机射线，命中数据包时触发收集
// 有菜单打开时不处理任何输入
type LostPacketInputSystem struct {
	entityManager *ecs.EntityManager
	camera        *camera.OrthographicCamera
	menu          MenuState
	input         PointerSource
	collector     LostPacketCollector
}

// NewLostPacketInputSystem 创建输入系统
func NewLostPacketInputSystem(em *ecs.EntityManager, cam *camera.OrthographicCamera, menu MenuState, input PointerSource, collector LostPacketCollector) *LostPacketInputSystem {
	return &LostPacketInputSystem{
		entityManager: em,
		camera:        cam,
		menu:          menu,
		input:         input,
		collector:     collector,
	}
}

// Update 处理本帧的指针输入
func (s *LostPacketInputSystem) Update(deltaTime float64) {
	if s.menu != nil && s.menu.HasOpenMenu() {
		return
	}

	for _, p := range s.input.JustPressedPoints() {
		s.handlePointer(float64(p.X), float64(p.Y))
	}
}

// handlePointer 对一个屏幕点做射线检测
func (s *LostPacketInputSystem) handlePointer(screenX, screenY float64) {
	ray := s.camera.ScreenPointToRay(screenX, screenY)
	hit, ok := physics.RaycastTagged(s.entityManager, ray, math.Inf(1), components.TagLostPacket)
	if !ok {
		return
	}
	s.collector.Collect(hit.Entity)
}
