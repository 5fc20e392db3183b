package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

// LostPacketSpawnSystem 定时从对象池取出丢失数据包，放在可视区域外，并设定对侧目标点
//
// 计时器在创建时随机一次，每次到期（无论是否成功生成）都会重新随机。
type LostPacketSpawnSystem struct {
	entityManager *ecs.EntityManager
	pool          *ecs.EntityPool
	camera        *camera.OrthographicCamera
	config        config.SpawnConfig
	rng           *rand.Rand

	timeUntilNextPacket float64 // 距离下一次生成的剩余时间（秒）
}

// NewLostPacketSpawnSystem 创建生成系统并随机第一次生成间隔
//
// 参数:
//   - em: 实体管理器
//   - pool: 丢失数据包对象池
//   - cam: 摄像机（提供可移动范围、正交尺寸和宽高比）
//   - cfg: 生成参数
//   - rng: 随机数源，测试时注入固定种子
func NewLostPacketSpawnSystem(em *ecs.EntityManager, pool *ecs.EntityPool, cam *camera.OrthographicCamera, cfg config.SpawnConfig, rng *rand.Rand) *LostPacketSpawnSystem {
	s := &LostPacketSpawnSystem{
		entityManager: em,
		pool:          pool,
		camera:        cam,
		config:        cfg,
		rng:           rng,
	}
	s.timeUntilNextPacket = s.calculateNextInterval()
	return s
}

// Update 推进计时器，到期时生成一个数据包
func (s *LostPacketSpawnSystem) Update(deltaTime float64) {
	s.timeUntilNextPacket -= deltaTime
	if s.timeUntilNextPacket > 0 {
		return
	}

	s.spawnPacket()
	s.timeUntilNextPacket = s.calculateNextInterval()
}

// TimeUntilNextPacket 返回距离下一次生成的剩余时间
func (s *LostPacketSpawnSystem) TimeUntilNextPacket() float64 {
	return s.timeUntilNextPacket
}

// calculateNextInterval 在 [MinInterval, MaxInterval] 内均匀随机下一次间隔
func (s *LostPacketSpawnSystem) calculateNextInterval() float64 {
	interval := s.config.MinInterval + s.rng.Float64()*(s.config.MaxInterval-s.config.MinInterval)
	log.Printf("[LostPacketSpawnSystem] Next lost packet in %.2fs", interval)
	return interval
}

// spawnPacket 取出一个数据包并设置起点与目标
// 对象池耗尽时跳过本次生成，返回 false
func (s *LostPacketSpawnSystem) spawnPacket() bool {
	id, ok := s.pool.Acquire()
	if !ok {
		log.Printf("[LostPacketSpawnSystem] Pool exhausted (%d in use), skipping spawn", s.pool.InUse())
		return false
	}

	fromLeft := s.rng.Float64() < 0.5
	placement := CalculateSpawnPlacement(s.camera, s.config.PaddingFactor, fromLeft, s.rng.Float64())

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		log.Printf("[LostPacketSpawnSystem] Warning: entity %d has no PositionComponent", id)
		s.pool.Release(id)
		return false
	}
	packet, ok := ecs.GetComponent[*components.LostPacketComponent](s.entityManager, id)
	if !ok {
		log.Printf("[LostPacketSpawnSystem] Warning: entity %d has no LostPacketComponent", id)
		s.pool.Release(id)
		return false
	}

	pos.X = placement.X
	pos.Z = placement.Z
	packet.TargetX = placement.TargetX
	packet.TargetZ = placement.TargetZ
	packet.State = components.LostPacketDrifting

	log.Printf("[LostPacketSpawnSystem] Spawned packet %d at (%.2f, %.2f) -> (%.2f, %.2f)",
		id, placement.X, placement.Z, placement.TargetX, placement.TargetZ)
	return true
}

// SpawnPlacement 数据包的生成位置与漂移目标（XZ 平面）
type SpawnPlacement struct {
	X, Z             float64
	TargetX, TargetZ float64
}

// CalculateSpawnPlacement 计算生成位置
//
// 数据包放在摄像机可移动范围的左侧或右侧之外：
//   - 水平留白 = 宽高比 × 正交尺寸 × paddingFactor
//   - 垂直留白 = 正交尺寸 × paddingFactor
//   - Z 在扩展后的垂直范围内按 zRoll ∈ [0, 1) 线性取值
//
// 目标点为生成点关于范围中心的镜像，数据包因此横穿整个区域。
func CalculateSpawnPlacement(cam *camera.OrthographicCamera, paddingFactor float64, fromLeft bool, zRoll float64) SpawnPlacement {
	paddingZ := cam.Size * paddingFactor
	paddingX := cam.Aspect() * cam.Size * paddingFactor

	var x float64
	if fromLeft {
		x = cam.BoundsX[0] - paddingX
	} else {
		x = cam.BoundsX[1] + paddingX
	}

	minZ := cam.BoundsZ[0] - paddingZ
	maxZ := cam.BoundsZ[1] + paddingZ
	z := minZ + zRoll*(maxZ-minZ)

	centerX := (cam.BoundsX[0] + cam.BoundsX[1]) / 2
	centerZ := (cam.BoundsZ[0] + cam.BoundsZ[1]) / 2

	return SpawnPlacement{
		X:       x,
		Z:       z,
		TargetX: 2*centerX - x,
		TargetZ: 2*centerZ - z,
	}
}
