package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	sfx "github.com/gonewx/lostpacket/internal/audio"
	"github.com/gonewx/lostpacket/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioManager 音频管理器
// 职责：
//   - 保存已注册音效的 PCM 数据
//   - 根据 SettingsManager 的音效开关与音量播放音效
//
// audioContext 为 nil 时（测试或无声卡环境）只登记音效，不播放。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	sounds          map[string][]byte        // 资源ID -> PCM
	soundPlayers    map[string]*audio.Player // 播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音效开关与音量，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// SampleRate 返回音频上下文的采样率，无上下文时返回 0
func (am *AudioManager) SampleRate() int {
	if am.audioContext == nil {
		return 0
	}
	return am.audioContext.SampleRate()
}

// RegisterSound 注册 16 位小端立体声 PCM 音效
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.sounds[soundID] = pcm
	delete(am.soundPlayers, soundID)
}

// HasSound 检查音效是否已注册
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// LoadSoundFile 从嵌入资源或磁盘加载音频文件并注册为音效
// 支持格式: WAV (.wav)、OGG Vorbis (.ogg)、MP3 (.mp3)、Sun AU (.au)
func (am *AudioManager) LoadSoundFile(soundID, path string) error {
	if am.audioContext == nil {
		return fmt.Errorf("audio context not available")
	}

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
		return fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	sampleRate := am.audioContext.SampleRate()
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, reader)
	case ".au":
		// AU 解码器直接输出目标采样率的 PCM
		var pcm []byte
		if pcm, err = sfx.DecodeAU(reader, sampleRate); err == nil {
			stream = bytes.NewReader(pcm)
		}
	default:
		return fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3, .au)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded sound %s: %w", path, err)
	}

	am.RegisterSound(soundID, pcm)
	log.Printf("[AudioManager] Loaded sound %s from %s (%d bytes)", soundID, path, len(pcm))
	return nil
}

// SoundEffectsEnabled 音效是否启用（无设置管理器时视为启用）
func (am *AudioManager) SoundEffectsEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.SoundEffectsEnabled()
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效禁用、未注册或无音频上下文时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEffectsEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}
	if am.audioContext == nil {
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
