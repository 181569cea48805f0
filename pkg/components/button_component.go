package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 纯色矩形按钮，文字居中显示
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 各状态颜色由 ButtonRenderSystem 选择
//   - 释放时触发 OnClick
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA

	// NormalColor 正常状态背景色
	NormalColor color.RGBA
	// HoverColor 悬停状态背景色
	HoverColor color.RGBA
	// PressedColor 按下状态背景色
	PressedColor color.RGBA
	// DisabledColor 禁用状态背景色
	DisabledColor color.RGBA

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
