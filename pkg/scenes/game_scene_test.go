package scenes

import (
	"image"
	"math/rand"
	"testing"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/game"
	"github.com/gonewx/lostpacket/pkg/systems"
)

type scriptedInput struct {
	points []image.Point
}

func (in *scriptedInput) JustPressedPoints() []image.Point {
	points := in.points
	in.points = nil
	return points
}

func (in *scriptedInput) PanDirection() (float64, float64) {
	return 0, 0
}

func newTestScene(t *testing.T, input *scriptedInput, menu *game.MenuManager) (*GameScene, *game.GameState) {
	t.Helper()
	gs := game.NewGameState(100)
	scene, err := NewGameScene(GameSceneOptions{
		Config:    config.DefaultLostPacketConfig(),
		GameState: gs,
		Menu:      menu,
		Input:     input,
		Rand:      rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("NewGameScene failed: %v", err)
	}
	return scene, gs
}

// runUntilSpawned 推进场景直到生成一个数据包，返回该数据包
func runUntilSpawned(t *testing.T, scene *GameScene) ecs.EntityID {
	t.Helper()
	for i := 0; i < 60*25; i++ {
		scene.Update(1.0 / 60)
		if packets := ecs.GetEntitiesWith1[*components.LostPacketComponent](scene.EntityManager()); len(packets) > 0 {
			return packets[0]
		}
	}
	t.Fatal("25 秒内没有生成数据包")
	return 0
}

// screenPointOf 将数据包推进到可视区域内并返回其屏幕坐标
func screenPointOf(scene *GameScene, id ecs.EntityID) image.Point {
	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.EntityManager(), id)
	// 直接放到摄像机中心，避免依赖漂移时间
	pos.X, pos.Z = scene.Camera().CenterX, scene.Camera().CenterZ
	x, y := scene.Camera().WorldToScreen(pos.X, pos.Z)
	return image.Point{X: int(x), Y: int(y)}
}

func TestGameSceneTapCollectsPacket(t *testing.T) {
	input := &scriptedInput{}
	scene, gs := newTestScene(t, input, game.NewMenuManager())

	var events []systems.CollectionEvent
	scene.AddCollectionListener(func(e systems.CollectionEvent) { events = append(events, e) })

	id := runUntilSpawned(t, scene)
	input.points = []image.Point{screenPointOf(scene, id)}
	scene.Update(1.0 / 60)

	if len(events) != 1 || events[0].Entity != id {
		t.Fatalf("期望收集实体 %d，实际事件 %v", id, events)
	}
	if gs.GetStoredBits() <= 100 || gs.LostPacketsCollected != 1 {
		t.Errorf("收集后状态错误: bits=%v packets=%d", gs.GetStoredBits(), gs.LostPacketsCollected)
	}
	if scene.Pool().IsInUse(id) {
		t.Error("收集后数据包应归还对象池")
	}

	popups := ecs.GetEntitiesWith1[*components.RewardPopupComponent](scene.EntityManager())
	if len(popups) != 1 {
		t.Errorf("期望 1 个奖励飘字，实际 %d", len(popups))
	}

	// 特效和飘字到期后被清理
	for i := 0; i < 60*3; i++ {
		scene.Update(1.0 / 60)
	}
	if n := len(ecs.GetEntitiesWith1[*components.CollectionEffectComponent](scene.EntityManager())); n != 0 {
		t.Errorf("特效应已清理，剩余 %d", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.RewardPopupComponent](scene.EntityManager())); n != 0 {
		t.Errorf("飘字应已清理，剩余 %d", n)
	}
}

func TestGameSceneMenuBlocksTaps(t *testing.T) {
	input := &scriptedInput{}
	menu := game.NewMenuManager()
	scene, gs := newTestScene(t, input, menu)

	id := runUntilSpawned(t, scene)
	menu.Open(game.MenuPause)
	input.points = []image.Point{screenPointOf(scene, id)}
	scene.Update(1.0 / 60)

	if gs.LostPacketsCollected != 0 || gs.GetStoredBits() != 100 {
		t.Error("菜单打开时点击不应收集")
	}
	if !scene.Pool().IsInUse(id) {
		t.Error("菜单打开时数据包应继续存在")
	}
}

func TestGameSceneUncollectedPacketReturnsToPool(t *testing.T) {
	scene, gs := newTestScene(t, &scriptedInput{}, nil)

	id := runUntilSpawned(t, scene)
	packet, _ := ecs.GetComponent[*components.LostPacketComponent](scene.EntityManager(), id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.EntityManager(), id)
	// 放到目标点附近，下一帧即到达
	pos.X, pos.Z = packet.TargetX, packet.TargetZ

	scene.Update(1.0 / 60)

	if scene.Pool().IsInUse(id) {
		t.Error("到达目标的数据包应归还对象池")
	}
	if gs.LostPacketsCollected != 0 || gs.GetStoredBits() != 100 {
		t.Error("未收集的数据包不应产生奖励")
	}
}

func TestGameSceneSaveOnExit(t *testing.T) {
	scene, _ := newTestScene(t, &scriptedInput{}, nil)

	var _ game.Saveable = scene
	if !scene.SaveOnExit() {
		t.Error("无存储后端时保存应视为成功")
	}
}

func TestNewGameSceneValidatesOptions(t *testing.T) {
	if _, err := NewGameScene(GameSceneOptions{}); err == nil {
		t.Error("缺少配置时应返回错误")
	}
	if _, err := NewGameScene(GameSceneOptions{Config: config.DefaultLostPacketConfig()}); err == nil {
		t.Error("缺少游戏状态时应返回错误")
	}
}
