package systems

import (
	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
	"github.com/decker502/projectile/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
// 同时支持鼠标和触摸
func (s *ButtonSystem) Update(deltaTime float64) {
	utils.UpdateLastTouchPosition()
	pressed, x, y := utils.GetPointerState()
	released, rx, ry := utils.IsPointerJustReleased()
	if released {
		x, y = rx, ry
	}

	s.apply(float64(x), float64(y), pressed, released)
}

// apply 根据指针状态更新所有按钮
func (s *ButtonSystem) apply(x, y float64, pressed, released bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		bounds := utils.Rect{X: pos.X, Y: pos.Y, Width: button.Width, Height: button.Height}
		if !bounds.Contains(x, y) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			// 释放瞬间触发回调，之后恢复悬停状态
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}
