package game

import "log"

// GameState 存储与丢失数据包玩法相关的全局游戏状态
// 所有访问都发生在 ebiten 的 Update 线程中，不需要加锁
type GameState struct {
	StoredBits           float64 // 当前存储的 bits
	LostPacketsCollected int     // 累计收集的丢失数据包数量
}

// NewGameState 创建游戏状态
//
// 参数:
//   - initialBits: 初始 bits 数量
func NewGameState(initialBits float64) *GameState {
	if initialBits < 0 {
		initialBits = 0
	}
	return &GameState{StoredBits: initialBits}
}

// AddBits 增加 bits，负值会被忽略
func (gs *GameState) AddBits(amount float64) {
	if amount <= 0 {
		log.Printf("[GameState] Warning: ignoring non-positive bits amount %.2f", amount)
		return
	}
	gs.StoredBits += amount
}

// GetStoredBits 返回当前 bits 数量
func (gs *GameState) GetStoredBits() float64 {
	return gs.StoredBits
}

// IncrementLostPacketsCollected 收集计数加一
func (gs *GameState) IncrementLostPacketsCollected() {
	gs.LostPacketsCollected++
}

// ToSaveData 导出需要持久化的状态
func (gs *GameState) ToSaveData() *SaveData {
	return &SaveData{
		StoredBits:           gs.StoredBits,
		LostPacketsCollected: gs.LostPacketsCollected,
	}
}

// ApplySaveData 从存档恢复状态
func (gs *GameState) ApplySaveData(data *SaveData) {
	if data == nil {
		return
	}
	gs.StoredBits = data.StoredBits
	if gs.StoredBits < 0 {
		gs.StoredBits = 0
	}
	gs.LostPacketsCollected = data.LostPacketsCollected
}
