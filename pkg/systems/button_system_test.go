package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/ecs"
)

func newTestButton(em *ecs.EntityManager, onClick func()) *components.ButtonComponent {
	id := em.CreateEntity()
	button := &components.ButtonComponent{
		Text:    "Fire",
		Width:   100,
		Height:  32,
		Enabled: true,
		OnClick: onClick,
	}
	em.AddComponent(id, button)
	em.AddComponent(id, &components.PositionComponent{X: 600, Y: 20})
	return button
}

func TestButtonSystemStates(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, func() { clicks++ })
	s := NewButtonSystem(em)

	tests := []struct {
		name              string
		x, y              float64
		pressed, released bool
		want              components.UIState
		wantClicks        int
	}{
		{"outside", 10, 10, false, false, components.UINormal, 0},
		{"hover", 650, 30, false, false, components.UIHovered, 0},
		{"pressed", 650, 30, true, false, components.UIClicked, 0},
		{"released", 650, 30, false, true, components.UIHovered, 1},
		{"released outside", 10, 10, false, true, components.UINormal, 1},
	}

	for _, tt := range tests {
		s.apply(tt.x, tt.y, tt.pressed, tt.released)
		if button.State != tt.want {
			t.Errorf("%s: state = %v, want %v", tt.name, button.State, tt.want)
		}
		if clicks != tt.wantClicks {
			t.Errorf("%s: clicks = %d, want %d", tt.name, clicks, tt.wantClicks)
		}
	}
}

func TestButtonSystemDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	button := newTestButton(em, func() { clicked = true })
	button.Enabled = false

	NewButtonSystem(em).apply(650, 30, false, true)
	if clicked {
		t.Error("disabled button must not fire")
	}
	if button.State != components.UIDisabled {
		t.Errorf("state = %v, want Disabled", button.State)
	}
}

func TestButtonColorFallback(t *testing.T) {
	normal := color.RGBA{R: 10, A: 255}
	hover := color.RGBA{G: 10, A: 255}
	button := &components.ButtonComponent{NormalColor: normal, HoverColor: hover}

	button.State = components.UIHovered
	if ButtonColor(button) != hover {
		t.Error("hover state should use HoverColor")
	}
	button.State = components.UIClicked
	if ButtonColor(button) != normal {
		t.Error("unset PressedColor should fall back to NormalColor")
	}
}

func TestBorderColor(t *testing.T) {
	input := &components.TextInputComponent{}
	if BorderColor(input) != inputBorder {
		t.Error("idle border color mismatch")
	}
	input.IsFocused = true
	if BorderColor(input) != inputFocusedBorder {
		t.Error("focused border color mismatch")
	}
	input.Invalid = true
	if BorderColor(input) != inputInvalidBorder {
		t.Error("invalid should take precedence over focus")
	}
}
