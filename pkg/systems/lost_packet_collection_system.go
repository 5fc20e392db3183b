package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/entities"
	"github.com/gonewx/lostpacket/pkg/game"
)

// RewardDisplay 在屏幕上显示收集奖励
type RewardDisplay interface {
	DisplayReward(screenX, screenY, reward float64)
}

// SoundPlayer 播放音效
type SoundPlayer interface {
	SoundEffectsEnabled() bool
	PlaySound(soundID string) bool
}

// CollectionEvent 一次成功收集的结果
type CollectionEvent struct {
	Entity           ecs.EntityID
	X, Y, Z          float64 // 数据包被收集时的世界坐标
	ScreenX, ScreenY float64 // 对应的屏幕坐标
	Factor           float64 // 本次随机到的奖励系数
	StoredBits       float64 // 计算奖励时的 bits 数量
	Reward           float64
}

// CollectionListener 收集事件回调，在 Collect 内同步调用
type CollectionListener func(event CollectionEvent)

// LostPacketCollectionSystem 处理数据包的收集与回收
//
// 收集流程：特效 → 音效 → 计算奖励 → 增加 bits 与计数 → 显示奖励 → 归还对象池 → 发布事件。
// 数据包自然到达目标点时只归还对象池，没有奖励。
type LostPacketCollectionSystem struct {
	entityManager *ecs.EntityManager
	pool          *ecs.EntityPool
	gameState     *game.GameState
	camera        *camera.OrthographicCamera
	sound         SoundPlayer
	display       RewardDisplay
	config        *config.LostPacketConfig
	rng           *rand.Rand
	listeners     []CollectionListener
}

// NewLostPacketCollectionSystem 创建收集系统
// sound 与 display 可为 nil（不播放音效 / 不显示奖励）
func NewLostPacketCollectionSystem(
	em *ecs.EntityManager,
	pool *ecs.EntityPool,
	gs *game.GameState,
	cam *camera.OrthographicCamera,
	sound SoundPlayer,
	display RewardDisplay,
	cfg *config.LostPacketConfig,
	rng *rand.Rand,
) *LostPacketCollectionSystem {
	return &LostPacketCollectionSystem{
		entityManager: em,
		pool:          pool,
		gameState:     gs,
		camera:        cam,
		sound:         sound,
		display:       display,
		config:        cfg,
		rng:           rng,
	}
}

// AddListener 注册收集事件回调
func (s *LostPacketCollectionSystem) AddListener(listener CollectionListener) {
	s.listeners = append(s.listeners, listener)
}

// Collect 收集数据包
// 数据包未被使用（已回收或不属于对象池）时不做任何事并返回 false
func (s *LostPacketCollectionSystem) Collect(id ecs.EntityID) bool {
	if !s.pool.IsInUse(id) {
		log.Printf("[LostPacketCollectionSystem] Ignoring collect for inactive packet %d", id)
		return false
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		log.Printf("[LostPacketCollectionSystem] Warning: packet %d has no PositionComponent", id)
		return false
	}
	x, y, z := pos.X, pos.Y, pos.Z

	// 1. 特效
	if _, err := entities.NewCollectionEffect(s.entityManager, s.rng, x, y, z, s.config.Effect); err != nil {
		log.Printf("[LostPacketCollectionSystem] Warning: failed to create effect: %v", err)
	}

	// 2. 音效
	if s.sound != nil && s.sound.SoundEffectsEnabled() {
		s.sound.PlaySound(s.config.Sound.ID)
	}

	// 3. 奖励
	storedBits := s.gameState.GetStoredBits()
	factor := s.config.Reward.MinFactor + s.rng.Float64()*(s.config.Reward.MaxFactor-s.config.Reward.MinFactor)
	reward := CalculateReward(storedBits, factor, s.config.Reward.Minimum)
	log.Printf("[LostPacketCollectionSystem] Reward: %.2f bits (stored=%.2f, factor=%.3f)", reward, storedBits, factor)

	// 4. 状态
	s.gameState.AddBits(reward)
	s.gameState.IncrementLostPacketsCollected()

	// 5. 显示
	screenX, screenY := s.camera.WorldToScreen(x, z)
	if s.display != nil {
		s.display.DisplayReward(screenX, screenY, reward)
	}

	// 6. 回收
	if packet, ok := ecs.GetComponent[*components.LostPacketComponent](s.entityManager, id); ok {
		packet.State = components.LostPacketCollected
	}
	s.pool.Release(id)

	// 7. 事件
	event := CollectionEvent{
		Entity:     id,
		X:          x,
		Y:          y,
		Z:          z,
		ScreenX:    screenX,
		ScreenY:    screenY,
		Factor:     factor,
		StoredBits: storedBits,
		Reward:     reward,
	}
	for _, listener := range s.listeners {
		listener(event)
	}
	return true
}

// OnLostPacketReachedTarget 数据包未被收集，直接归还对象池
func (s *LostPacketCollectionSystem) OnLostPacketReachedTarget(id ecs.EntityID) {
	if s.pool.Release(id) {
		log.Printf("[LostPacketCollectionSystem] Packet %d reached target, returned to pool", id)
	}
}

// CalculateReward 计算收集奖励：storedBits × factor，且不低于 minimum
func CalculateReward(storedBits, factor, minimum float64) float64 {
	return math.Max(minimum, storedBits*factor)
}
