package game

import (
	"math"
	"testing"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata manager
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Speed != 50 || settings.Angle != 45 {
		t.Errorf("Speed/Angle = %v/%v, want 50/45", settings.Speed, settings.Angle)
	}
	if settings.BarrelLength != ballistics.DefaultBarrelLength {
		t.Errorf("BarrelLength = %v, want %v", settings.BarrelLength, ballistics.DefaultBarrelLength)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}

	p := settings.Parameters()
	if p.Speed != 50 || p.AngleDegrees != 45 || p.BarrelLength != 100 {
		t.Errorf("Parameters() = %+v", p)
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings().Speed != 50 {
		t.Errorf("degraded mode Speed = %v, want default", sm.GetSettings().Speed)
	}

	// 降级模式保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := createTestGdataManager(t, "test_projectile_settings")

	sm1 := NewSettingsManager(manager)
	if sm1.GetSettings().Angle != 45 {
		t.Errorf("fresh storage Angle = %v, want default", sm1.GetSettings().Angle)
	}

	sm1.RecordLaunch(ballistics.Parameters{Speed: 30, AngleDegrees: 60, BarrelLength: 80})
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	got := sm2.GetSettings()
	if got.Speed != 30 || got.Angle != 60 || got.BarrelLength != 80 || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}

func TestSettingsLoadCorrupted(t *testing.T) {
	manager := createTestGdataManager(t, "test_projectile_settings_corrupted")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("speed: [not a number")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := &SettingsManager{gdataManager: manager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("expected error for corrupted settings")
	}
	if sm.GetSettings().Speed != 50 {
		t.Errorf("corrupted load should fall back to defaults, Speed = %v", sm.GetSettings().Speed)
	}
}

func TestSettingsPartialFileKeepsDefaults(t *testing.T) {
	manager := createTestGdataManager(t, "test_projectile_settings_partial")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("speed: 12.5\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	got := NewSettingsManager(manager).GetSettings()
	if got.Speed != 12.5 {
		t.Errorf("Speed = %v, want 12.5", got.Speed)
	}
	if got.Angle != 45 || got.BarrelLength != 100 {
		t.Errorf("missing fields should keep defaults, got %+v", got)
	}
}

func TestRecordLaunchIgnoresNonFinite(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.RecordLaunch(ballistics.Parameters{Speed: math.NaN(), AngleDegrees: 30, BarrelLength: math.Inf(1)})

	got := sm.GetSettings()
	if got.Speed != 50 || got.BarrelLength != 100 {
		t.Errorf("non-finite values should be ignored, got %+v", got)
	}
	if got.Angle != 30 {
		t.Errorf("Angle = %v, want 30", got.Angle)
	}
}
