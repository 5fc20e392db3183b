// Package scenes 组装游戏场景：创建实体池与各个系统，并按固定顺序驱动它们
package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/lostpacket/pkg/camera"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/entities"
	"github.com/gonewx/lostpacket/pkg/game"
	"github.com/gonewx/lostpacket/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneInput 场景所需的输入源（指针点击 + 摄像机平移）
type SceneInput interface {
	systems.PointerSource
	systems.PanSource
}

// GameSceneOptions 创建游戏场景所需的依赖
type GameSceneOptions struct {
	Config      *config.LostPacketConfig
	GameState   *game.GameState
	Menu        *game.MenuManager
	SaveManager *game.SaveManager
	Input       SceneInput
	Sound       systems.SoundPlayer // 可为 nil
	Rand        *rand.Rand          // 可为 nil，此时以当前时间为种子
}

// GameScene 丢失数据包玩法场景
//
// 每帧的系统更新顺序：
// 摄像机平移 → 生成 → 移动 → 输入 → 特效 → 奖励飘字 → 渲染动画 → 生命周期 → 清理实体
type GameScene struct {
	entityManager *ecs.EntityManager
	camera        *camera.OrthographicCamera
	config        *config.LostPacketConfig
	gameState     *game.GameState
	saveManager   *game.SaveManager
	pool          *ecs.EntityPool

	cameraSystem        *systems.CameraSystem
	spawnSystem         *systems.LostPacketSpawnSystem
	movementSystem      *systems.LostPacketMovementSystem
	inputSystem         *systems.LostPacketInputSystem
	collectionSystem    *systems.LostPacketCollectionSystem
	effectSystem        *systems.EffectSystem
	rewardDisplaySystem *systems.RewardDisplaySystem
	lifetimeSystem      *systems.LifetimeSystem
	renderSystem        *systems.RenderSystem

	autosaveTimer float64
}

// NewGameScene 创建游戏场景
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if opts.GameState == nil {
		return nil, fmt.Errorf("game state cannot be nil")
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	if opts.Menu == nil {
		opts.Menu = game.NewMenuManager()
	}
	if opts.SaveManager == nil {
		opts.SaveManager = game.NewSaveManager(nil)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cfg := opts.Config
	em := ecs.NewEntityManager()
	cam := &camera.OrthographicCamera{
		Size:         cfg.Camera.OrthographicSize,
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Height:       cfg.Camera.Height,
		BoundsX:      cfg.Camera.BoundsX,
		BoundsZ:      cfg.Camera.BoundsZ,
	}
	// 初始位置为可移动范围中心
	cam.CenterX = (cfg.Camera.BoundsX[0] + cfg.Camera.BoundsX[1]) / 2
	cam.CenterZ = (cfg.Camera.BoundsZ[0] + cfg.Camera.BoundsZ[1]) / 2

	pool := entities.NewLostPacketPool(em, cfg.Pool.Size, cfg.Packet)
	log.Printf("[GameScene] Lost packet pool created (size=%d)", pool.Size())

	rewardDisplay := systems.NewRewardDisplaySystem(em, cfg.UI)
	collection := systems.NewLostPacketCollectionSystem(em, pool, opts.GameState, cam, opts.Sound, rewardDisplay, cfg, rng)

	renderSystem, err := systems.NewRenderSystem(em, cam, opts.GameState, opts.Menu, opts.Sound)
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}

	return &GameScene{
		entityManager:       em,
		camera:              cam,
		config:              cfg,
		gameState:           opts.GameState,
		saveManager:         opts.SaveManager,
		pool:                pool,
		cameraSystem:        systems.NewCameraSystem(cam, opts.Input, cfg.Camera.PanSpeed),
		spawnSystem:         systems.NewLostPacketSpawnSystem(em, pool, cam, cfg.Spawn, rng),
		movementSystem:      systems.NewLostPacketMovementSystem(em, collection),
		inputSystem:         systems.NewLostPacketInputSystem(em, cam, opts.Menu, opts.Input, collection),
		collectionSystem:    collection,
		effectSystem:        systems.NewEffectSystem(em),
		rewardDisplaySystem: rewardDisplay,
		lifetimeSystem:      systems.NewLifetimeSystem(em),
		renderSystem:        renderSystem,
	}, nil
}

// Update 按固定顺序更新所有系统，并处理自动存档
func (s *GameScene) Update(deltaTime float64) {
	s.cameraSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.effectSystem.Update(deltaTime)
	s.rewardDisplaySystem.Update(deltaTime)
	s.renderSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	s.updateAutosave(deltaTime)
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// SaveOnExit 保存 bits 与收集计数
func (s *GameScene) SaveOnExit() bool {
	if err := s.saveManager.Save(s.gameState.ToSaveData()); err != nil {
		log.Printf("[GameScene] Warning: failed to save: %v", err)
		return false
	}
	return true
}

// AddCollectionListener 订阅收集事件
func (s *GameScene) AddCollectionListener(listener systems.CollectionListener) {
	s.collectionSystem.AddListener(listener)
}

// Camera 返回场景摄像机
func (s *GameScene) Camera() *camera.OrthographicCamera {
	return s.camera
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Pool 返回数据包对象池
func (s *GameScene) Pool() *ecs.EntityPool {
	return s.pool
}

func (s *GameScene) updateAutosave(deltaTime float64) {
	interval := s.config.Save.AutosaveInterval
	if interval <= 0 {
		return
	}
	s.autosaveTimer += deltaTime
	if s.autosaveTimer < interval {
		return
	}
	s.autosaveTimer = 0
	s.SaveOnExit()
}
