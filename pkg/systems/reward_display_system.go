package systems

import (
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/entities"
	"github.com/gonewx/lostpacket/pkg/utils"
)

// RewardDisplaySystem 在收集位置显示 "+N" 飘字，上升并淡出
type RewardDisplaySystem struct {
	entityManager *ecs.EntityManager
	config        config.UIConfig
}

// NewRewardDisplaySystem 创建奖励显示系统
func NewRewardDisplaySystem(em *ecs.EntityManager, cfg config.UIConfig) *RewardDisplaySystem {
	return &RewardDisplaySystem{
		entityManager: em,
		config:        cfg,
	}
}

// DisplayReward 在屏幕坐标处创建奖励飘字
func (s *RewardDisplaySystem) DisplayReward(screenX, screenY, reward float64) {
	entities.NewRewardPopup(s.entityManager, screenX, screenY, reward, s.config)
}

// Update 推进所有飘字的播放时间
func (s *RewardDisplaySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.RewardPopupComponent](s.entityManager) {
		popup, _ := ecs.GetComponent[*components.RewardPopupComponent](s.entityManager, id)
		popup.Elapsed += deltaTime
	}
}

// PopupDrawPosition 返回飘字当前的绘制位置和不透明度
func PopupDrawPosition(popup *components.RewardPopupComponent) (x, y, alpha float64) {
	progress := utils.Progress(popup.Elapsed, popup.Duration)
	return popup.ScreenX, popup.ScreenY - popup.Rise*utils.EaseOutCubic(progress), 1 - progress
}
