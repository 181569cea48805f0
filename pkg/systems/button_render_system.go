package systems

import (
	"image/color"

	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 绘制纯色背景和居中文字，背景色随交互状态变化
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height), ButtonColor(button), true)
		s.drawButtonText(screen, button, pos.X, pos.Y)
	}
}

// ButtonColor 根据按钮状态选择背景色
// 未设置的状态色回退到 NormalColor
func ButtonColor(button *components.ButtonComponent) color.RGBA {
	var c color.RGBA
	switch button.State {
	case components.UIHovered:
		c = button.HoverColor
	case components.UIClicked:
		c = button.PressedColor
	case components.UIDisabled:
		c = button.DisabledColor
	default:
		return button.NormalColor
	}
	if c == (color.RGBA{}) {
		return button.NormalColor
	}
	return c
}

// drawButtonText 在按钮中央绘制文字
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Font == nil || button.Text == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+button.Width/2, y+button.Height/2)
	op.ColorScale.ScaleWithColor(button.TextColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, button.Text, button.Font, op)
}
