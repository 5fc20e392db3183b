package config

import (
	"fmt"
	"log"
	"os"

	"github.com/gonewx/lostpacket/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultLostPacketConfigPath 默认配置文件路径（嵌入资源）
const DefaultLostPacketConfigPath = "data/lost_packet.yaml"

// LostPacketConfig 丢失数据包玩法配置
//
// 配置文件位置: data/lost_packet.yaml
// 未在文件中出现的字段保持 DefaultLostPacketConfig() 的默认值。
type LostPacketConfig struct {
	Spawn  SpawnConfig  `yaml:"spawn"`
	Reward RewardConfig `yaml:"reward"`
	Pool   PoolConfig   `yaml:"pool"`
	Packet PacketConfig `yaml:"packet"`
	Effect EffectConfig `yaml:"effect"`
	Sound  SoundConfig  `yaml:"sound"`
	Camera CameraConfig `yaml:"camera"`
	Screen ScreenConfig `yaml:"screen"`
	UI     UIConfig     `yaml:"ui"`
	Save   SaveConfig   `yaml:"save"`
}

// SpawnConfig 生成节奏与位置
type SpawnConfig struct {
	// PaddingFactor 生成点相对摄像机可视尺寸的外扩倍数
	PaddingFactor float64 `yaml:"paddingFactor"`
	// MinInterval/MaxInterval 两次生成之间的随机间隔（秒）
	MinInterval float64 `yaml:"minInterval"`
	MaxInterval float64 `yaml:"maxInterval"`
}

// RewardConfig 奖励计算参数
// reward = max(Minimum, storedBits * rand[MinFactor, MaxFactor))
type RewardConfig struct {
	MinFactor float64 `yaml:"minFactor"`
	MaxFactor float64 `yaml:"maxFactor"`
	Minimum   float64 `yaml:"minimum"`
}

// PoolConfig 对象池参数
type PoolConfig struct {
	Size int `yaml:"size"`
}

// PacketConfig 数据包本身的表现参数
type PacketConfig struct {
	Speed  float64 `yaml:"speed"`  // 世界单位/秒
	Radius float64 `yaml:"radius"` // 碰撞与绘制半径（世界单位）
	Height float64 `yaml:"height"` // 飘浮高度（世界Y坐标）
}

// EffectConfig 收集特效参数
type EffectConfig struct {
	Duration      float64 `yaml:"duration"`
	ParticleCount int     `yaml:"particleCount"`
	ParticleSpeed float64 `yaml:"particleSpeed"` // 像素/秒
}

// SoundConfig 收集音效
type SoundConfig struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"` // 可选的音频文件（wav/ogg/mp3/au），为空时使用合成音效
}

// CameraConfig 正交摄像机与可移动范围
type CameraConfig struct {
	OrthographicSize float64    `yaml:"orthographicSize"`
	Height           float64    `yaml:"height"`
	BoundsX          [2]float64 `yaml:"boundsX"`
	BoundsZ          [2]float64 `yaml:"boundsZ"`
	PanSpeed         float64    `yaml:"panSpeed"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// UIConfig 奖励飘字参数
type UIConfig struct {
	RewardPopupDuration float64 `yaml:"rewardPopupDuration"`
	RewardPopupRise     float64 `yaml:"rewardPopupRise"`
}

// SaveConfig 存档参数
type SaveConfig struct {
	AutosaveInterval float64 `yaml:"autosaveInterval"` // 秒，<= 0 表示仅在退出时保存
	InitialBits      float64 `yaml:"initialBits"`      // 新存档的初始 bits
}

// DefaultLostPacketConfig 返回默认配置
func DefaultLostPacketConfig() *LostPacketConfig {
	return &LostPacketConfig{
		Spawn:  SpawnConfig{PaddingFactor: 2.2, MinInterval: 1, MaxInterval: 20},
		Reward: RewardConfig{MinFactor: 0.05, MaxFactor: 0.2, Minimum: 1},
		Pool:   PoolConfig{Size: 5},
		Packet: PacketConfig{Speed: 3, Radius: 0.6, Height: 0},
		Effect: EffectConfig{Duration: 2, ParticleCount: 14, ParticleSpeed: 90},
		Sound:  SoundConfig{ID: "SOUND_LOST_PACKET"},
		Camera: CameraConfig{
			OrthographicSize: 5,
			Height:           20,
			BoundsX:          [2]float64{-10, 10},
			BoundsZ:          [2]float64{-8, 8},
			PanSpeed:         8,
		},
		Screen: ScreenConfig{Width: 960, Height: 540},
		UI:     UIConfig{RewardPopupDuration: 1.5, RewardPopupRise: 40},
		Save:   SaveConfig{AutosaveInterval: 30, InitialBits: 10},
	}
}

// LoadLostPacketConfig 加载丢失数据包配置
//
// 优先从嵌入资源读取，嵌入资源中不存在时从磁盘读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/lost_packet.yaml"）
//
// 返回:
//   - *LostPacketConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadLostPacketConfig(path string) (*LostPacketConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lost packet config: %w", err)
	}

	cfg, err := ParseLostPacketConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded lost packet config from %s (pool=%d, interval=%.1f-%.1fs)",
		path, cfg.Pool.Size, cfg.Spawn.MinInterval, cfg.Spawn.MaxInterval)
	return cfg, nil
}

// ParseLostPacketConfig 解析 YAML 配置内容，缺省字段使用默认值
func ParseLostPacketConfig(data []byte) (*LostPacketConfig, error) {
	cfg := DefaultLostPacketConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse lost packet config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lost packet config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *LostPacketConfig) Validate() error {
	if c.Spawn.MinInterval <= 0 {
		return fmt.Errorf("spawn.minInterval must be > 0, got %.2f", c.Spawn.MinInterval)
	}
	if c.Spawn.MinInterval > c.Spawn.MaxInterval {
		return fmt.Errorf("spawn interval invalid: min(%.2f) > max(%.2f)",
			c.Spawn.MinInterval, c.Spawn.MaxInterval)
	}
	if c.Spawn.PaddingFactor < 0 {
		return fmt.Errorf("spawn.paddingFactor must be >= 0, got %.2f", c.Spawn.PaddingFactor)
	}
	if c.Reward.MinFactor < 0 || c.Reward.MinFactor > c.Reward.MaxFactor {
		return fmt.Errorf("reward factor invalid: min(%.3f) max(%.3f)",
			c.Reward.MinFactor, c.Reward.MaxFactor)
	}
	// 每次收集至少奖励 1 bit
	if c.Reward.Minimum < 1 {
		return fmt.Errorf("reward.minimum must be >= 1, got %.2f", c.Reward.Minimum)
	}
	if c.Pool.Size < 1 {
		return fmt.Errorf("pool.size must be >= 1, got %d", c.Pool.Size)
	}
	if c.Packet.Speed <= 0 || c.Packet.Radius <= 0 {
		return fmt.Errorf("packet speed and radius must be > 0 (speed=%.2f, radius=%.2f)",
			c.Packet.Speed, c.Packet.Radius)
	}
	if c.Camera.OrthographicSize <= 0 {
		return fmt.Errorf("camera.orthographicSize must be > 0, got %.2f", c.Camera.OrthographicSize)
	}
	if c.Camera.BoundsX[0] > c.Camera.BoundsX[1] || c.Camera.BoundsZ[0] > c.Camera.BoundsZ[1] {
		return fmt.Errorf("camera bounds invalid: x=%v z=%v", c.Camera.BoundsX, c.Camera.BoundsZ)
	}
	if c.Camera.Height <= c.Packet.Height+c.Packet.Radius {
		return fmt.Errorf("camera.height(%.2f) must be above the packets", c.Camera.Height)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size invalid: %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Effect.ParticleCount < 0 {
		return fmt.Errorf("effect.particleCount must be >= 0, got %d", c.Effect.ParticleCount)
	}
	if c.Effect.Duration < 0 || c.UI.RewardPopupDuration < 0 {
		return fmt.Errorf("durations must be >= 0")
	}
	return nil
}
