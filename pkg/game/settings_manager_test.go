package game

import "testing"

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEffectsEnabled {
		t.Error("SoundEffectsEnabled: got false, want true")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if !sm.SoundEffectsEnabled() {
		t.Error("Degraded mode should use default settings")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestToggleSoundEffects 测试音效开关切换
func TestToggleSoundEffects(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSoundEffects() {
		t.Error("First toggle should disable sound effects")
	}
	if sm.SoundEffectsEnabled() {
		t.Error("Sound effects should be disabled")
	}
	if !sm.ToggleSoundEffects() {
		t.Error("Second toggle should enable sound effects")
	}
}

// TestSetSoundVolumeClamp 测试音量限制
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(1.7)
	if sm.GetSettings().SoundVolume != 1.0 {
		t.Errorf("Volume should clamp to 1.0, got %v", sm.GetSettings().SoundVolume)
	}
	sm.SetSoundVolume(-1)
	if sm.GetSettings().SoundVolume != 0.0 {
		t.Errorf("Volume should clamp to 0.0, got %v", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := newTestGdataManager(t, "settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundEffectsEnabled(false)
	sm1.SetSoundVolume(0.3)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if settings.SoundEffectsEnabled {
		t.Error("SoundEffectsEnabled should be restored as false")
	}
	if settings.SoundVolume != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3", settings.SoundVolume)
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen should be restored as true")
	}
}

// TestSettingsLoadCorrupted 测试损坏的设置文件回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := newTestGdataManager(t, "settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("Failed to write corrupted settings: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Error("Corrupted settings should fall back to defaults")
	}
}
