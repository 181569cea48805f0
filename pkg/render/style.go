package render

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/decker502/projectile/pkg/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Style 渲染样式（已解析的颜色和尺寸）
type Style struct {
	BarrelColor     color.RGBA
	BaseColor       color.RGBA
	ProjectileColor color.RGBA
	RangeColor      color.RGBA
	FlatRangeColor  color.RGBA

	TrailAlpha  float64
	FontSize    float64
	LineWidth   float64
	TickHeight  float64
	DashPattern []float64

	LabelOffset  float64
	LabelMargin  float64
	LabelBackoff float64
}

// DefaultStyle 返回默认样式
func DefaultStyle() Style {
	style, err := NewStyle(config.DefaultSimulationConfig().Style)
	if err != nil {
		// 默认配置中的颜色是常量，解析失败属于编程错误
		panic(fmt.Sprintf("render: invalid default style: %v", err))
	}
	return style
}

// NewStyle 根据配置创建样式
//
// 参数:
//   - cfg: 样式配置，颜色为 "#rrggbb" 格式
//
// 返回:
//   - Style: 解析后的样式
//   - error: 颜色格式错误时返回错误
func NewStyle(cfg config.StyleConfig) (Style, error) {
	style := Style{
		TrailAlpha:   cfg.TrailAlpha,
		FontSize:     cfg.FontSize,
		LineWidth:    cfg.LineWidth,
		TickHeight:   cfg.TickHeight,
		DashPattern:  slices.Clone(cfg.DashPattern),
		LabelOffset:  cfg.LabelOffset,
		LabelMargin:  cfg.LabelMargin,
		LabelBackoff: cfg.LabelBackoff,
	}

	colors := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"barrelColor", cfg.BarrelColor, &style.BarrelColor},
		{"baseColor", cfg.BaseColor, &style.BaseColor},
		{"projectileColor", cfg.ProjectileColor, &style.ProjectileColor},
		{"rangeColor", cfg.RangeColor, &style.RangeColor},
		{"flatRangeColor", cfg.FlatRangeColor, &style.FlatRangeColor},
	}

	for _, c := range colors {
		parsed, err := ParseHexColor(c.hex)
		if err != nil {
			return Style{}, fmt.Errorf("style.%s: %w", c.name, err)
		}
		*c.dst = parsed
	}

	if style.LineWidth <= 0 {
		style.LineWidth = 1
	}

	return style, nil
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
