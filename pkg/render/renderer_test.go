package render

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/projectile/pkg/ballistics"
)

func testFrame(speed, angle, length float64) Frame {
	params := ballistics.Parameters{Speed: speed, AngleDegrees: angle, BarrelLength: length, SurfaceWidth: 800, SurfaceHeight: 600}
	geom := ballistics.ComputeBarrelGeometry(length, angle)
	return Frame{
		Width:      800,
		Height:     600,
		Geometry:   geom,
		Trajectory: ballistics.NewTrajectory(params, geom, ballistics.StandardGravity),
		Trail:      ballistics.NewTrail(0),
	}
}

func TestRenderAtRest(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	dl := r.Render(testFrame(50, 45, 100))

	cmds := dl.Commands()
	if len(cmds) == 0 || cmds[0].Op != OpClearRect {
		t.Fatal("frame should start with ClearRect")
	}
	if cmds[0].W != 800 || cmds[0].H != 600 {
		t.Errorf("ClearRect size = %vx%v, want 800x600", cmds[0].W, cmds[0].H)
	}

	// 炮管多边形 + 底座各一次填充，没有抛体
	if got := dl.Count(OpFill); got != 2 {
		t.Errorf("Fill count = %d, want 2", got)
	}
	if got := dl.Count(OpLineTo); got != 4 {
		t.Errorf("barrel LineTo count = %d, want 4", got)
	}
	if len(dl.Texts()) != 0 {
		t.Errorf("at-rest frame should have no text, got %v", dl.Texts())
	}
}

func TestRenderFlipsYAxis(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	f := testFrame(50, 45, 100)
	p := ballistics.Point{X: 300, Y: 120}
	f.Projectile = &p

	dl := r.Render(f)
	cmds := dl.Commands()

	var last Command
	for _, c := range cmds {
		if c.Op == OpArc {
			last = c
		}
	}
	if last.X != 300 || last.Y != 480 {
		t.Errorf("projectile arc at (%v, %v), want (300, 480)", last.X, last.Y)
	}
	if last.Radius != 10 {
		t.Errorf("projectile radius = %v, want L/10 = 10", last.Radius)
	}
}

func TestRenderBase(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	f := testFrame(50, 45, 100)
	dl := r.Render(f)

	for _, c := range dl.Commands() {
		if c.Op == OpArc {
			if c.X != f.Geometry.Pivot.X || c.Y != 600 || c.Radius != 50 {
				t.Errorf("base arc = (%v, %v, r=%v), want (%v, 600, r=50)", c.X, c.Y, c.Radius, f.Geometry.Pivot.X)
			}
			return
		}
	}
	t.Fatal("no base arc found")
}

func TestRenderTrailAlpha(t *testing.T) {
	style := DefaultStyle()
	r := NewRenderer(style)
	f := testFrame(50, 45, 100)
	f.Trail = f.Trail.Append(ballistics.Point{X: 200, Y: 200}).Append(ballistics.Point{X: 250, Y: 220})
	p := ballistics.Point{X: 260, Y: 210}
	f.Projectile = &p

	dl := r.Render(f)

	var alphas []float64
	arcsAfterAlpha := map[float64]int{}
	current := 1.0
	for _, c := range dl.Commands() {
		switch c.Op {
		case OpSetAlpha:
			current = c.Alpha
			alphas = append(alphas, c.Alpha)
		case OpArc:
			arcsAfterAlpha[current]++
		}
	}

	if len(alphas) != 2 || alphas[0] != style.TrailAlpha || alphas[1] != 1 {
		t.Errorf("alpha sequence = %v, want [%v 1]", alphas, style.TrailAlpha)
	}
	if arcsAfterAlpha[style.TrailAlpha] != 2 {
		t.Errorf("trail arcs = %d, want 2", arcsAfterAlpha[style.TrailAlpha])
	}
	// 底座 + 抛体
	if arcsAfterAlpha[1] != 2 {
		t.Errorf("opaque arcs = %d, want 2", arcsAfterAlpha[1])
	}
}

func TestRenderLandedAnnotations(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	f := testFrame(50, 45, 100)
	p := ballistics.Point{X: f.Geometry.Fire.X + f.Trajectory.Range, Y: 0}
	f.Projectile = &p
	f.Landed = true

	dl := r.Render(f)
	texts := dl.Texts()
	if len(texts) != 2 {
		t.Fatalf("texts = %v, want 2 labels", texts)
	}
	if !strings.HasPrefix(texts[0], "Distance traveled is ") || !strings.HasSuffix(texts[0], "m") {
		t.Errorf("range label = %q", texts[0])
	}
	if texts[1] != "Flat distance traveled is 254.93" {
		t.Errorf("flat range label = %q, want %q", texts[1], "Flat distance traveled is 254.93")
	}

	var dashes [][]float64
	for _, c := range dl.Commands() {
		if c.Op == OpSetLineDash {
			dashes = append(dashes, c.Dash)
		}
	}
	found := false
	for _, d := range dashes {
		if len(d) == 2 && d[0] == 5 && d[1] == 15 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dashed [5 15] reference line, got %v", dashes)
	}
	if got := dl.Count(OpStroke); got != 3 {
		t.Errorf("Stroke count = %d, want 3 (range tick, reference line, flat tick)", got)
	}
}

func TestLabelX(t *testing.T) {
	r := NewRenderer(DefaultStyle())

	tests := []struct {
		mark, width, want float64
	}{
		{100, 800, 120},
		{549, 800, 569},
		{550, 800, 310},
		{700, 800, 460},
	}
	for _, tt := range tests {
		if got := r.LabelX(tt.mark, tt.width); got != tt.want {
			t.Errorf("LabelX(%v, %v) = %v, want %v", tt.mark, tt.width, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if got := RangeLabel(312.456); got != "Distance traveled is 312.46m" {
		t.Errorf("RangeLabel = %q", got)
	}
	if got := FlatRangeLabel(0); got != "Flat distance traveled is 0.00" {
		t.Errorf("FlatRangeLabel = %q", got)
	}
	if got := RangeLabel(math.NaN()); got != "Distance traveled is NaNm" {
		t.Errorf("RangeLabel(NaN) = %q", got)
	}
}
