package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"gopkg.in/yaml.v3"
)

const frameStep = time.Second / 60

func TestSimulateLands(t *testing.T) {
	r, err := Simulate(nil, ballistics.Parameters{Speed: 50, AngleDegrees: 45}, frameStep, 0)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	if r.Phase != "Landed" {
		t.Errorf("Phase = %s, want Landed", r.Phase)
	}
	if r.Parameters.BarrelLength != 100 {
		t.Errorf("BarrelLength = %v, want default 100", r.Parameters.BarrelLength)
	}
	if r.Landing.Y > 0 {
		t.Errorf("landing Y = %v, want <= 0", r.Landing.Y)
	}
	// 初始画面 + 每次更新一帧
	if r.Frames != r.Updates+1 {
		t.Errorf("Frames = %d, want Updates+1 = %d", r.Frames, r.Updates+1)
	}
	if want := r.Updates / 60; len(r.Trail) != want {
		t.Errorf("trail length = %d, want %d", len(r.Trail), want)
	}
	if len(r.Samples) != 0 {
		t.Errorf("step 0 should produce no samples, got %d", len(r.Samples))
	}
}

func TestSimulateSamples(t *testing.T) {
	r, err := Simulate(nil, ballistics.Parameters{Speed: 50, AngleDegrees: 45}, frameStep, time.Second)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	if len(r.Samples) == 0 {
		t.Fatal("expected samples")
	}
	first := r.Samples[0]
	if first.Time != 0 || first.X != r.Muzzle.X || first.Y != r.Muzzle.Y {
		t.Errorf("first sample = %+v, want muzzle %+v at t=0", first, r.Muzzle)
	}
	for i := 1; i < len(r.Samples); i++ {
		if r.Samples[i].X <= r.Samples[i-1].X {
			t.Errorf("sample %d x not increasing: %v <= %v", i, r.Samples[i].X, r.Samples[i-1].X)
		}
	}
}

func TestSimulateRejectsInvalid(t *testing.T) {
	_, err := Simulate(nil, ballistics.Parameters{Speed: -1, AngleDegrees: 45}, frameStep, 0)
	if !errors.Is(err, ballistics.ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestSimulateZeroSpeedTimesOut(t *testing.T) {
	cfg := config.DefaultSimulationConfig()
	cfg.StrictValidation = false
	cfg.MaxFrames = 120

	r, err := Simulate(cfg, ballistics.Parameters{Speed: 0, AngleDegrees: 45}, frameStep, 0)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if r.Phase != "TimedOut" {
		t.Errorf("Phase = %s, want TimedOut", r.Phase)
	}
	if r.Landing != r.Muzzle {
		t.Errorf("zero speed should stay at muzzle, got %+v", r.Landing)
	}
}

func TestWriteText(t *testing.T) {
	r, err := Simulate(nil, ballistics.Parameters{Speed: 50, AngleDegrees: 45}, frameStep, 2*time.Second)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"flat range", "254.93", "phase", "Landed", "trail"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	r, err := Simulate(nil, ballistics.Parameters{Speed: 50, AngleDegrees: 45}, frameStep, 0)
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, r); err != nil {
		t.Fatalf("WriteYAML() error: %v", err)
	}

	var decoded struct {
		Phase      string `yaml:"phase"`
		Trajectory struct {
			FlatRange float64 `yaml:"flatRange"`
		} `yaml:"trajectory"`
		Parameters struct {
			Speed float64 `yaml:"speed"`
		} `yaml:"parameters"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Phase != "Landed" || decoded.Parameters.Speed != 50 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Trajectory.FlatRange != r.Trajectory.FlatRange {
		t.Errorf("flatRange = %v, want %v", decoded.Trajectory.FlatRange, r.Trajectory.FlatRange)
	}
}
