package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/entities"
	"github.com/gonewx/lostpacket/pkg/game"
)

type collectionFixture struct {
	em      *ecs.EntityManager
	pool    *ecs.EntityPool
	state   *game.GameState
	sound   *fakeSound
	display *fakeDisplay
	cfg     *config.LostPacketConfig
	system  *LostPacketCollectionSystem
}

func newCollectionFixture(initialBits float64) *collectionFixture {
	em := ecs.NewEntityManager()
	cfg := config.DefaultLostPacketConfig()
	f := &collectionFixture{
		em:      em,
		pool:    entities.NewLostPacketPool(em, 2, cfg.Packet),
		state:   game.NewGameState(initialBits),
		sound:   &fakeSound{enabled: true},
		display: &fakeDisplay{},
		cfg:     cfg,
	}
	f.system = NewLostPacketCollectionSystem(em, f.pool, f.state, newTestCamera(), f.sound, f.display, cfg, rand.New(rand.NewSource(11)))
	return f
}

// acquireAt 取出一个数据包并放在指定世界坐标
func (f *collectionFixture) acquireAt(t *testing.T, x, z float64) ecs.EntityID {
	t.Helper()
	id, ok := f.pool.Acquire()
	if !ok {
		t.Fatal("对象池不应耗尽")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	pos.X, pos.Z = x, z
	return id
}

func TestCollectAwardsBitsAndReleases(t *testing.T) {
	f := newCollectionFixture(100)
	id := f.acquireAt(t, 0, 0)

	var events []CollectionEvent
	f.system.AddListener(func(e CollectionEvent) { events = append(events, e) })

	if !f.system.Collect(id) {
		t.Fatal("Collect 应返回 true")
	}

	gained := f.state.GetStoredBits() - 100
	if gained < 100*f.cfg.Reward.MinFactor || gained > 100*f.cfg.Reward.MaxFactor {
		t.Errorf("奖励 %v 超出 [%v, %v]", gained, 100*f.cfg.Reward.MinFactor, 100*f.cfg.Reward.MaxFactor)
	}
	if f.state.LostPacketsCollected != 1 {
		t.Errorf("收集计数应为 1，实际 %d", f.state.LostPacketsCollected)
	}
	if f.pool.IsInUse(id) || f.em.IsActive(id) {
		t.Error("收集后数据包应归还对象池并停用")
	}

	if len(f.sound.played) != 1 || f.sound.played[0] != f.cfg.Sound.ID {
		t.Errorf("期望播放音效 %s，实际 %v", f.cfg.Sound.ID, f.sound.played)
	}

	if len(f.display.calls) != 1 {
		t.Fatalf("期望显示奖励一次，实际 %d", len(f.display.calls))
	}
	call := f.display.calls[0]
	if !almostEqual(call.reward, gained) || call.screenX != 480 || call.screenY != 270 {
		t.Errorf("显示参数错误: %+v (奖励 %v)", call, gained)
	}

	if len(events) != 1 {
		t.Fatalf("期望发布一次事件，实际 %d", len(events))
	}
	e := events[0]
	if e.Entity != id || !almostEqual(e.Reward, gained) || e.StoredBits != 100 {
		t.Errorf("事件内容错误: %+v", e)
	}
	if e.Factor < f.cfg.Reward.MinFactor || e.Factor >= f.cfg.Reward.MaxFactor {
		t.Errorf("奖励系数 %v 超出范围", e.Factor)
	}

	effects := ecs.GetEntitiesWith1[*components.CollectionEffectComponent](f.em)
	if len(effects) != 1 {
		t.Errorf("期望创建 1 个收集特效，实际 %d", len(effects))
	}
}

func TestCollectTwiceIsNoop(t *testing.T) {
	f := newCollectionFixture(100)
	id := f.acquireAt(t, 1, 1)

	f.system.Collect(id)
	bits := f.state.GetStoredBits()

	if f.system.Collect(id) {
		t.Error("重复收集应返回 false")
	}
	if f.state.GetStoredBits() != bits || f.state.LostPacketsCollected != 1 {
		t.Error("重复收集不应改变游戏状态")
	}
	if f.pool.Available() != f.pool.Size() {
		t.Errorf("重复收集不应影响对象池: Available=%d", f.pool.Available())
	}
}

func TestCollectMinimumReward(t *testing.T) {
	f := newCollectionFixture(0)
	id := f.acquireAt(t, 0, 0)

	f.system.Collect(id)

	if f.state.GetStoredBits() != 1 {
		t.Errorf("bits 为 0 时奖励应为最小值 1，实际 %v", f.state.GetStoredBits())
	}
}

func TestCollectRespectsSoundSetting(t *testing.T) {
	f := newCollectionFixture(100)
	f.sound.enabled = false
	id := f.acquireAt(t, 0, 0)

	f.system.Collect(id)

	if len(f.sound.played) != 0 {
		t.Errorf("音效关闭时不应播放，实际 %v", f.sound.played)
	}
}

func TestRewardUpperBound(t *testing.T) {
	for _, bits := range []float64{0, 3, 10, 100, 12345} {
		f := newCollectionFixture(bits)
		for i := 0; i < 2; i++ {
			before := f.state.GetStoredBits()
			f.system.Collect(f.acquireAt(t, 0, 0))
			reward := f.state.GetStoredBits() - before

			upper := CalculateReward(before, f.cfg.Reward.MaxFactor, f.cfg.Reward.Minimum)
			if reward < 1-floatTolerance || reward > upper+floatTolerance {
				t.Errorf("bits=%v: 奖励 %v 超出 [1, %v]", before, reward, upper)
			}
		}
	}
}

func TestReachedTargetReturnsWithoutReward(t *testing.T) {
	f := newCollectionFixture(100)
	id := f.acquireAt(t, 0, 0)

	f.system.OnLostPacketReachedTarget(id)

	if f.pool.IsInUse(id) {
		t.Error("到达目标的数据包应归还对象池")
	}
	if f.state.GetStoredBits() != 100 || f.state.LostPacketsCollected != 0 {
		t.Error("到达目标不应有奖励")
	}
	if len(f.display.calls) != 0 || len(f.sound.played) != 0 {
		t.Error("到达目标不应显示奖励或播放音效")
	}
}

func TestCalculateReward(t *testing.T) {
	tests := []struct {
		bits, factor, minimum, expected float64
	}{
		{100, 0.1, 1, 10},
		{5, 0.1, 1, 1},
		{0, 0.2, 1, 1},
		{1000, 0.05, 1, 50},
	}
	for _, tt := range tests {
		if got := CalculateReward(tt.bits, tt.factor, tt.minimum); !almostEqual(got, tt.expected) {
			t.Errorf("CalculateReward(%v, %v, %v) = %v, 期望 %v", tt.bits, tt.factor, tt.minimum, got, tt.expected)
		}
	}
}
