package app

import (
	"log"

	"github.com/gonewx/lostpacket/pkg/systems"
	"github.com/gonewx/lostpacket/pkg/utils"
)

// newCollectionLogger 返回记录每次收集结果的事件监听器
// 非 verbose 模式下全局日志已被丢弃，此处无需再判断
func newCollectionLogger(logger *log.Logger) systems.CollectionListener {
	return func(event systems.CollectionEvent) {
		logger.Printf("[Collection] Packet %d collected at (%.1f, %.1f): +%s bits (factor %.3f, stored %s)",
			event.Entity, event.X, event.Z,
			utils.FormatBits(event.Reward), event.Factor, utils.FormatBits(event.StoredBits))
	}
}
