package systems

import (
	"image/color"

	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputBackground    = color.RGBA{255, 255, 255, 255}
	inputBorder        = color.RGBA{120, 120, 120, 255}
	inputFocusedBorder = color.RGBA{32, 163, 141, 255}
	inputInvalidBorder = color.RGBA{220, 40, 40, 255}
	inputText          = color.RGBA{20, 20, 20, 255}
	inputPlaceholder   = color.RGBA{150, 150, 150, 255}
	inputLabel         = color.RGBA{60, 60, 60, 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制说明文字、边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	labelOffsetY  float64
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
//
// 参数:
//   - em: 实体管理器
//   - font: 文本字体
//   - labelOffsetY: 说明文字相对输入框顶部的纵向偏移（负数表示在上方）
func NewTextInputRenderSystem(em *ecs.EntityManager, font *text.GoTextFace, labelOffsetY float64) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          font,
		labelOffsetY:  labelOffsetY,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(input.Width), float32(input.Height)

	if input.Label != "" {
		s.drawText(screen, input.Label, pos.X, pos.Y+s.labelOffsetY, inputLabel, text.AlignStart)
	}

	vector.DrawFilledRect(screen, x, y, w, h, inputBackground, false)
	vector.StrokeRect(screen, x, y, w, h, 2, BorderColor(input), true)

	textX := pos.X + input.PaddingLeft
	textY := pos.Y + input.Height/2

	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		s.drawText(screen, input.Placeholder, textX, textY, inputPlaceholder, text.AlignCenter)
	} else if input.Text != "" {
		s.drawText(screen, input.Text, textX, textY, inputText, text.AlignCenter)
	}

	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY)
	}
}

// BorderColor 输入框边框颜色：校验失败为红色，获得焦点为主题色
func BorderColor(input *components.TextInputComponent) color.RGBA {
	switch {
	case input.Invalid:
		return inputInvalidBorder
	case input.IsFocused:
		return inputFocusedBorder
	default:
		return inputBorder
	}
}

// drawText 绘制文本，(x, y) 为左侧、按 secondary 对齐的纵坐标
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, x, y float64, clr color.Color, secondary text.Align) {
	if s.font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = secondary

	text.Draw(screen, txt, s.font, op)
}

// drawCursor 在光标位置绘制竖线
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, textX, textY float64) {
	if s.font == nil {
		return
	}

	runes := []rune(input.Text)
	pos := min(max(input.CursorPosition, 0), len(runes))

	var textWidth float64
	if pos > 0 {
		textWidth, _ = text.Measure(string(runes[:pos]), s.font, 0)
	}

	cursorX := float32(textX + textWidth)
	top := float32(textY - input.Height/4)
	bottom := float32(textY + input.Height/4)
	vector.StrokeLine(screen, cursorX, top, cursorX, bottom, 2, inputText, false)
}
