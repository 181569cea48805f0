package ballistics

import (
	"errors"
	"math"
	"testing"
)

func validParams() Parameters {
	return Parameters{Speed: 50, AngleDegrees: 45, BarrelLength: 100, SurfaceWidth: 800, SurfaceHeight: 600}
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		want   float64
	}{
		{"zero uses default", 0, DefaultBarrelLength},
		{"NaN uses default", math.NaN(), DefaultBarrelLength},
		{"explicit value kept", 60, 60},
		{"negative kept for validation", -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			p.BarrelLength = tt.length
			if got := p.WithDefaults().BarrelLength; got != tt.want {
				t.Errorf("BarrelLength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Parameters)
		wantField string
	}{
		{"valid", func(p *Parameters) {}, ""},
		{"zero speed", func(p *Parameters) { p.Speed = 0 }, "speed"},
		{"negative speed", func(p *Parameters) { p.Speed = -3 }, "speed"},
		{"NaN speed", func(p *Parameters) { p.Speed = math.NaN() }, "speed"},
		{"infinite angle", func(p *Parameters) { p.AngleDegrees = math.Inf(1) }, "angle"},
		{"vertical angle", func(p *Parameters) { p.AngleDegrees = 90 }, "angle"},
		{"vertical downwards", func(p *Parameters) { p.AngleDegrees = 270 }, "angle"},
		{"obtuse angle allowed", func(p *Parameters) { p.AngleDegrees = 120 }, ""},
		{"zero barrel", func(p *Parameters) { p.BarrelLength = 0 }, "barrelLength"},
		{"zero width", func(p *Parameters) { p.SurfaceWidth = 0 }, "surfaceWidth"},
		{"negative height", func(p *Parameters) { p.SurfaceHeight = -1 }, "surfaceHeight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.modify(&p)
			err := p.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error for field %s", tt.wantField)
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error %v should wrap ErrInvalidParameter", err)
			}
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("error %v should be *InvalidParameterError", err)
			}
			if paramErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", paramErr.Field, tt.wantField)
			}
		})
	}
}
