package app

import (
	"math"
	"testing"

	"github.com/decker502/projectile/pkg/game"
)

func TestInitialParameters(t *testing.T) {
	saved := &game.LaunchSettings{Speed: 30, Angle: 60, BarrelLength: 80}

	tests := []struct {
		name                  string
		cfg                   Config
		speed, angle, barrelL float64
	}{
		{"no overrides", DefaultConfig(), 30, 60, 80},
		{"speed only", Config{Speed: 70, Angle: math.NaN(), Size: math.NaN()}, 70, 60, 80},
		{"all overrides", Config{Speed: 10, Angle: 20, Size: 40}, 10, 20, 40},
		{"zero size passes through", Config{Speed: math.NaN(), Angle: math.NaN(), Size: 0}, 30, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := InitialParameters(saved, tt.cfg)
			if p.Speed != tt.speed || p.AngleDegrees != tt.angle || p.BarrelLength != tt.barrelL {
				t.Errorf("InitialParameters() = %+v, want %v/%v/%v", p, tt.speed, tt.angle, tt.barrelL)
			}
		})
	}
}

func TestLoadSimulationConfigFromPath(t *testing.T) {
	if _, err := loadSimulationConfig("../../data/simulation.yaml"); err != nil {
		t.Fatalf("loadSimulationConfig() error: %v", err)
	}
	if _, err := loadSimulationConfig("missing.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
