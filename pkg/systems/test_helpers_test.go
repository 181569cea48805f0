package systems

import (
	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
)

// newTestInput 创建一个带位置的输入框实体
func newTestInput(em *ecs.EntityManager, name string, x, y float64) (ecs.EntityID, *components.TextInputComponent) {
	id := em.CreateEntity()
	input := &components.TextInputComponent{
		Name:       name,
		Width:      120,
		Height:     28,
		MaxLength:  8,
		AcceptRune: NumericRune,
	}
	em.AddComponent(id, input)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id, input
}
