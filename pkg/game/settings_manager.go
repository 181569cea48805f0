package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LaunchSettings 上次使用的发射参数和显示设置
// 下次启动时用于预填输入框
type LaunchSettings struct {
	Speed        float64 `yaml:"speed"`
	Angle        float64 `yaml:"angle"`
	BarrelLength float64 `yaml:"barrelLength"`

	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *LaunchSettings {
	return &LaunchSettings{
		Speed:        50,
		Angle:        45,
		BarrelLength: ballistics.DefaultBarrelLength,
		Fullscreen:   false,
	}
}

// Parameters 把设置转换为模拟参数（表面尺寸由调用方填写）
func (s *LaunchSettings) Parameters() ballistics.Parameters {
	return ballistics.Parameters{
		Speed:        s.Speed,
		AngleDegrees: s.Angle,
		BarrelLength: s.BarrelLength,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *LaunchSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "launch"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置。
// 文件中缺省的字段保留默认值。
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误（此时设置已重置为默认值）
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: speed=%.2f angle=%.2f length=%.2f",
		loaded.Speed, loaded.Angle, loaded.BarrelLength)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *LaunchSettings {
	return sm.settings
}

// RecordLaunch 记录一次成功发射使用的参数
//
// 非有限值被忽略（保留原值），避免把无法解析的输入写入存储。
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) RecordLaunch(params ballistics.Parameters) {
	setFinite(&sm.settings.Speed, params.Speed)
	setFinite(&sm.settings.Angle, params.AngleDegrees)
	setFinite(&sm.settings.BarrelLength, params.BarrelLength)
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func setFinite(dst *float64, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	*dst = v
}
