package ballistics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestPivotPoint(t *testing.T) {
	tests := []struct {
		length float64
		want   Point
	}{
		{100, Point{70, 30}},
		{60, Point{42, 18}},
		{10, Point{7, 3}},
	}

	for _, tt := range tests {
		got := PivotPoint(tt.length)
		if !almostEqual(got.X, tt.want.X, epsilon) || !almostEqual(got.Y, tt.want.Y, epsilon) {
			t.Errorf("PivotPoint(%v) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestComputeBarrelGeometry(t *testing.T) {
	g := ComputeBarrelGeometry(100, 0)

	if g.Pivot != (Point{70, 30}) {
		t.Errorf("Pivot = %v, want (70, 30)", g.Pivot)
	}
	// 0° 时炮口在旋转中心正右方
	if g.Fire != (Point{170, 30}) {
		t.Errorf("Fire = %v, want (170, 30)", g.Fire)
	}

	g = ComputeBarrelGeometry(100, 90)
	if g.Fire != (Point{70, 130}) {
		t.Errorf("Fire at 90° = %v, want (70, 130)", g.Fire)
	}
}

// TestFirePointDistance 炮口到旋转中心的距离恒等于炮管长度
func TestFirePointDistance(t *testing.T) {
	lengths := []float64{1, 10, 60, 100, 333.3}
	angles := []float64{-45, 0, 15, 30, 45, 60, 89.9, 90, 135, 180, 270, 721}

	for _, l := range lengths {
		for _, a := range angles {
			g := ComputeBarrelGeometry(l, a)
			d := Distance(g.Fire, g.Pivot)
			if !almostEqual(d, l, epsilon) {
				t.Errorf("L=%v angle=%v: distance(fire, pivot) = %v, want %v", l, a, d, l)
			}
		}
	}
}

// TestRotatePointPreservesDistance 旋转保持每个角点到 pivot 的距离
func TestRotatePointPreservesDistance(t *testing.T) {
	pivot := Point{70, 30}
	corners := []Point{
		{70, 10}, {70, 50}, {170, 40}, {170, 20},
	}

	for _, angle := range []float64{0, 12.5, 45, 90, 123, 180, 300} {
		for _, c := range corners {
			rotated := RotatePoint(c, pivot, angle)
			before := Distance(c, pivot)
			after := Distance(rotated, pivot)
			if !almostEqual(before, after, epsilon) {
				t.Errorf("angle=%v corner=%v: distance %v -> %v", angle, c, before, after)
			}
		}
	}
}

func TestBarrelCorners(t *testing.T) {
	pivot := PivotPoint(100)

	// 0° 时角点保持轴对齐
	corners := BarrelCorners(pivot, 100, 0)
	want := [4]Point{
		{70, 10},
		{70, 50},
		{170, 40},
		{170, 20},
	}
	for i := range corners {
		if !almostEqual(corners[i].X, want[i].X, epsilon) || !almostEqual(corners[i].Y, want[i].Y, epsilon) {
			t.Errorf("corner[%d] = %v, want %v", i, corners[i], want[i])
		}
	}

	// 每个角点到 pivot 的距离与未旋转时一致
	rotated := BarrelCorners(pivot, 100, 37)
	for i := range rotated {
		if d, w := Distance(rotated[i], pivot), Distance(want[i], pivot); !almostEqual(d, w, epsilon) {
			t.Errorf("rotated corner[%d] distance = %v, want %v", i, d, w)
		}
	}

	// 远端中点与炮口重合
	g := ComputeBarrelGeometry(100, 37)
	mid := Point{X: (rotated[2].X + rotated[3].X) / 2, Y: (rotated[2].Y + rotated[3].Y) / 2}
	if Distance(mid, g.Fire) > 1e-9 {
		t.Errorf("far edge midpoint %v does not match fire point %v", mid, g.Fire)
	}

	if g.Corners() != rotated {
		t.Error("BarrelGeometry.Corners() should match BarrelCorners()")
	}
}
