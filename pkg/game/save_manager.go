package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoSave 表示尚无存档
var ErrNoSave = errors.New("no save data")

// SaveData 存档内容
type SaveData struct {
	StoredBits           float64 `yaml:"storedBits"`
	LostPacketsCollected int     `yaml:"lostPacketsCollected"`
}

// 存储路径常量
const (
	saveObject   = "save"
	saveProperty = "progress"
)

// SaveManager 存档管理器
//
// 数据通过 gdata 持久化（YAML格式，与设置文件保持一致）。
// gdataManager 为 nil 时进入降级模式：Load 返回 ErrNoSave，Save 不做任何事。
type SaveManager struct {
	gdataManager *gdata.Manager
}

// NewSaveManager 创建存档管理器
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// HasSave 检查是否存在存档
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(saveObject, saveProperty)
}

// Load 读取存档
//
// 返回：
//   - *SaveData: 存档数据
//   - error: 没有存档时返回 ErrNoSave，读取或解析失败时返回包装后的错误
func (sm *SaveManager) Load() (*SaveData, error) {
	if !sm.HasSave() {
		return nil, ErrNoSave
	}

	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load save data: %w", err)
	}

	var data SaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save data: %w", err)
	}
	return &data, nil
}

// Save 写入存档
func (sm *SaveManager) Save(data *SaveData) error {
	if sm.gdataManager == nil || data == nil {
		return nil
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}

	log.Printf("[SaveManager] Saved: bits=%.1f, packets=%d", data.StoredBits, data.LostPacketsCollected)
	return nil
}
