// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/lostpacket/internal/audio"
	"github.com/gonewx/lostpacket/pkg/config"
	"github.com/gonewx/lostpacket/pkg/game"
	"github.com/gonewx/lostpacket/pkg/scenes"
	"github.com/gonewx/lostpacket/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储目录名
const DefaultAppName = "lostpacket"

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空时使用 data/lost_packet.yaml
	ConfigPath string
	// AppName gdata 存储目录名，为空时使用 DefaultAppName
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	menuManager     *game.MenuManager
	input           *utils.EbitenInput
	config          *config.LostPacketConfig
	verbose         bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultLostPacketConfigPath
	}
	lpConfig, err := config.LoadLostPacketConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded config from %s", configPath)

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	// gdata 不可用时降级为仅内存设置与不保存
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable (%v), settings and progress will not be saved", err)
		gdataManager = nil
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	saveManager := game.NewSaveManager(gdataManager)

	gameState := game.NewGameState(lpConfig.Save.InitialBits)
	switch data, err := saveManager.Load(); {
	case err == nil:
		gameState.ApplySaveData(data)
		log.Printf("[App] Save loaded: bits=%.1f, packets=%d", gameState.StoredBits, gameState.LostPacketsCollected)
	case errors.Is(err, game.ErrNoSave):
		log.Printf("[App] No save found, starting with %.1f bits", lpConfig.Save.InitialBits)
	default:
		log.Printf("[App] Warning: failed to load save: %v", err)
	}

	audioManager := game.NewAudioManager(ebitenaudio.NewContext(audioSampleRate), settingsManager)
	registerCollectSound(audioManager, lpConfig.Sound)

	menuManager := game.NewMenuManager()
	input := utils.NewEbitenInput()

	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Config:      lpConfig,
		GameState:   gameState,
		Menu:        menuManager,
		SaveManager: saveManager,
		Input:       input,
		Sound:       audioManager,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	gameScene.AddCollectionListener(newCollectionLogger(log.Default()))

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		menuManager:     menuManager,
		input:           input,
		config:          lpConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// registerCollectSound 注册收集音效
// 配置了音频文件时优先加载，失败或未配置时使用合成的提示音
func registerCollectSound(am *game.AudioManager, cfg config.SoundConfig) {
	if cfg.Path != "" {
		err := am.LoadSoundFile(cfg.ID, cfg.Path)
		if err == nil {
			return
		}
		log.Printf("[App] Warning: %v, falling back to synthesized chime", err)
	}

	pcm, err := audio.CollectChime(am.SampleRate())
	if err != nil {
		log.Printf("[App] Warning: failed to synthesize chime: %v", err)
		return
	}
	am.RegisterSound(cfg.ID, pcm)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveCurrent()
		return ebiten.Termination
	}

	// ESC 切换暂停菜单
	if a.input.PauseJustPressed() {
		a.menuManager.Toggle(game.MenuPause)
	}

	// M 切换音效
	if a.input.SoundToggleJustPressed() {
		enabled := a.settingsManager.ToggleSoundEffects()
		log.Printf("[App] Sound effects enabled: %v", enabled)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Screen.Width, a.config.Screen.Height
}

// ScreenSize 返回配置的窗口尺寸
func (a *App) ScreenSize() (int, int) {
	return a.config.Screen.Width, a.config.Screen.Height
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
