package entities

import (
	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/ecs"
	"github.com/gonewx/lostpacket/pkg/utils"
)

// NewRewardPopup 在屏幕坐标处创建奖励飘字
func NewRewardPopup(em *ecs.EntityManager, screenX, screenY, reward float64, cfg config.UIConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.RewardPopupComponent{
		Text:     "+" + utils.FormatBits(reward),
		ScreenX:  screenX,
		ScreenY:  screenY,
		Rise:     cfg.RewardPopupRise,
		Duration: cfg.RewardPopupDuration,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: cfg.RewardPopupDuration})

	return id
}
