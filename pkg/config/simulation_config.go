package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/projectile/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SimulationConfigPath 内置模拟配置文件路径
const SimulationConfigPath = "data/simulation.yaml"

// SimulationConfig 抛体模拟配置
//
// 配置文件位置: data/simulation.yaml
type SimulationConfig struct {
	// Gravity 重力加速度（m/s²）
	Gravity float64 `yaml:"gravity"`

	// TrailSampleInterval 每隔多少次更新向轨迹追加一个采样点
	TrailSampleInterval int `yaml:"trailSampleInterval"`

	// TrailCapacity 轨迹最多保留的点数（0 = 无上限）
	TrailCapacity int `yaml:"trailCapacity"`

	// MaxFrames 单次运行最多执行的更新次数，超过后以超时结束（0 = 不限制）
	// 用于速度为 0 等永远不会落地的退化输入
	MaxFrames int `yaml:"maxFrames"`

	// DefaultBarrelLength 未提供炮管长度时使用的默认值
	DefaultBarrelLength float64 `yaml:"defaultBarrelLength"`

	// StrictValidation 启动运行前是否校验参数
	// false 时退化输入按原样运行（NaN 传播，静默结束）
	StrictValidation bool `yaml:"strictValidation"`

	// Surface 绘图表面尺寸
	Surface SurfaceConfig `yaml:"surface"`

	// Style 绘制样式
	Style StyleConfig `yaml:"style"`
}

// SurfaceConfig 绘图表面尺寸（像素）
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StyleConfig 绘制样式
//
// 颜色使用 "#rrggbb" 十六进制字符串。
type StyleConfig struct {
	// BarrelColor 炮管颜色
	BarrelColor string `yaml:"barrelColor"`
	// BaseColor 底座颜色
	BaseColor string `yaml:"baseColor"`
	// ProjectileColor 抛体、轨迹点、水平射程标记点颜色
	ProjectileColor string `yaml:"projectileColor"`
	// RangeColor 实际射程标注颜色
	RangeColor string `yaml:"rangeColor"`
	// FlatRangeColor 水平射程标注颜色
	FlatRangeColor string `yaml:"flatRangeColor"`

	// TrailAlpha 轨迹点不透明度
	TrailAlpha float64 `yaml:"trailAlpha"`
	// FontSize 标注字号（像素）
	FontSize float64 `yaml:"fontSize"`
	// LineWidth 描边线宽
	LineWidth float64 `yaml:"lineWidth"`
	// TickHeight 标注竖线高度
	TickHeight float64 `yaml:"tickHeight"`
	// DashPattern 水平参考线的虚线模式
	DashPattern []float64 `yaml:"dashPattern"`

	// LabelOffset 标注文字相对标记线的右移距离
	LabelOffset float64 `yaml:"labelOffset"`
	// LabelMargin 标记线右侧至少保留的空间，不足时文字放到左侧
	LabelMargin float64 `yaml:"labelMargin"`
	// LabelBackoff 文字放到左侧时相对标记线的左移距离
	LabelBackoff float64 `yaml:"labelBackoff"`
}

// DefaultSimulationConfig 返回默认配置
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Gravity:             9.80665,
		TrailSampleInterval: 60,
		TrailCapacity:       0,
		MaxFrames:           60 * 60 * 5,
		DefaultBarrelLength: 100,
		StrictValidation:    true,
		Surface: SurfaceConfig{
			Width:  SurfaceWidth,
			Height: SurfaceHeight,
		},
		Style: StyleConfig{
			BarrelColor:     "#20a38d",
			BaseColor:       "#000000",
			ProjectileColor: "#ff0000",
			RangeColor:      "#000000",
			FlatRangeColor:  "#808080",
			TrailAlpha:      0.5,
			FontSize:        18,
			LineWidth:       1,
			TickHeight:      150,
			DashPattern:     []float64{5, 15},
			LabelOffset:     20,
			LabelMargin:     250,
			LabelBackoff:    240,
		},
	}
}

// LoadSimulationConfig 从文件系统加载模拟配置
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// ParseSimulationConfig 解析 YAML 格式的模拟配置
//
// 文件中缺省的字段保留 DefaultSimulationConfig 的值。
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	config := DefaultSimulationConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return config, nil
}

// MinDashPeriod 虚线模式一个周期的最小长度（像素）
const MinDashPeriod = 0.5

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 浮点数值不能为 NaN 或无穷大
//   - 重力加速度必须为正
//   - 采样间隔至少为 1
//   - 容量、帧数上限不能为负
//   - 表面尺寸必须为正
//   - 不透明度在 [0, 1] 内，虚线段长度不能为负，非空虚线模式的周期不小于 MinDashPeriod
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *SimulationConfig) Validate() error {
	floats := []struct {
		name  string
		value float64
	}{
		{"gravity", c.Gravity},
		{"defaultBarrelLength", c.DefaultBarrelLength},
		{"style.trailAlpha", c.Style.TrailAlpha},
		{"style.fontSize", c.Style.FontSize},
		{"style.lineWidth", c.Style.LineWidth},
		{"style.tickHeight", c.Style.TickHeight},
		{"style.labelOffset", c.Style.LabelOffset},
		{"style.labelMargin", c.Style.LabelMargin},
		{"style.labelBackoff", c.Style.LabelBackoff},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}

	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.5f", c.Gravity)
	}
	if c.TrailSampleInterval < 1 {
		return fmt.Errorf("trailSampleInterval must be at least 1, got %d", c.TrailSampleInterval)
	}
	if c.TrailCapacity < 0 {
		return fmt.Errorf("trailCapacity cannot be negative, got %d", c.TrailCapacity)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("maxFrames cannot be negative, got %d", c.MaxFrames)
	}
	if c.DefaultBarrelLength <= 0 {
		return fmt.Errorf("defaultBarrelLength must be positive, got %.1f", c.DefaultBarrelLength)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)
	}

	if c.Style.TrailAlpha < 0 || c.Style.TrailAlpha > 1 {
		return fmt.Errorf("style.trailAlpha must be within [0, 1], got %.2f", c.Style.TrailAlpha)
	}
	if c.Style.FontSize <= 0 {
		return fmt.Errorf("style.fontSize must be positive, got %.1f", c.Style.FontSize)
	}
	if c.Style.LineWidth < 0 {
		return fmt.Errorf("style.lineWidth cannot be negative, got %.1f", c.Style.LineWidth)
	}
	if c.Style.TickHeight < 0 {
		return fmt.Errorf("style.tickHeight cannot be negative, got %.1f", c.Style.TickHeight)
	}

	period := 0.0
	for i, d := range c.Style.DashPattern {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("style.dashPattern[%d] must be finite, got %v", i, d)
		}
		if d < 0 {
			return fmt.Errorf("style.dashPattern[%d] cannot be negative, got %.1f", i, d)
		}
		period += d
	}
	// 全零模式按实线绘制
	if period > 0 && period < MinDashPeriod {
		return fmt.Errorf("style.dashPattern period must be at least %.1f, got %g", MinDashPeriod, period)
	}

	return nil
}

// LoadEmbeddedSimulationConfig 从嵌入资源加载模拟配置
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func LoadEmbeddedSimulationConfig() (*SimulationConfig, error) {
	data, err := embedded.ReadFile(SimulationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}
