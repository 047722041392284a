package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录里创建隔离的 gdata manager
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 默认设置值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if !settings.ScreenShake {
		t.Error("ScreenShake: got false, want true")
	}
	if !settings.ShowDamage {
		t.Error("ShowDamage: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata gdata 不可用时降级为内存设置
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	settings := sm.Get()
	if settings == nil {
		t.Fatal("Get() returned nil in degraded mode")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	// 降级模式下 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

// TestSettingsSaveAndReload 保存后新管理器能读回修改
func TestSettingsSaveAndReload(t *testing.T) {
	gdataManager := newTestGdata(t, "test_settings_roundtrip")

	sm1 := NewSettingsManager(gdataManager)
	sm1.Get().SoundVolume = 0.3
	sm1.Get().ScreenShake = false
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.Get()
	if settings.SoundVolume != 0.3 {
		t.Errorf("Reloaded SoundVolume: got %v, want 0.3", settings.SoundVolume)
	}
	if settings.ScreenShake {
		t.Error("Reloaded ScreenShake: got true, want false")
	}
	// 未修改的字段保持默认
	if !settings.ShowDamage {
		t.Error("Reloaded ShowDamage: got false, want true")
	}
}
