package ballistics

import "testing"

func TestTrailAppendOrder(t *testing.T) {
	tr := NewTrail(0)
	for i := 0; i < 5; i++ {
		tr = tr.Append(Point{X: float64(i), Y: float64(i * 10)})
	}

	if tr.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tr.Len())
	}
	for i, p := range tr.Points() {
		if p.X != float64(i) {
			t.Errorf("point[%d].X = %v, want %v", i, p.X, i)
		}
	}
}

// TestTrailAppendDoesNotMutate 旧值在追加后保持不变
func TestTrailAppendDoesNotMutate(t *testing.T) {
	base := NewTrail(0).Append(Point{1, 1}).Append(Point{2, 2})
	a := base.Append(Point{3, 3})
	b := base.Append(Point{4, 4})

	if base.Len() != 2 {
		t.Errorf("base.Len() = %d, want 2", base.Len())
	}
	if got := a.Points()[2]; got != (Point{3, 3}) {
		t.Errorf("a[2] = %v, want (3, 3)", got)
	}
	if got := b.Points()[2]; got != (Point{4, 4}) {
		t.Errorf("b[2] = %v, want (4, 4)", got)
	}
}

func TestTrailPointsIsCopy(t *testing.T) {
	tr := NewTrail(0).Append(Point{1, 1})
	pts := tr.Points()
	pts[0] = Point{99, 99}

	if tr.Points()[0] != (Point{1, 1}) {
		t.Error("modifying Points() result should not change the trail")
	}
}

func TestTrailCapacity(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr = tr.Append(Point{X: float64(i)})
	}

	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	want := []float64{3, 4, 5}
	for i, p := range tr.Points() {
		if p.X != want[i] {
			t.Errorf("point[%d].X = %v, want %v", i, p.X, want[i])
		}
	}

	if NewTrail(-1).Capacity() != 0 {
		t.Error("negative capacity should be treated as unbounded")
	}
}

func TestTrailAll(t *testing.T) {
	tr := NewTrail(0).Append(Point{1, 0}).Append(Point{2, 0}).Append(Point{3, 0})

	var sum float64
	for _, p := range tr.All {
		sum += p.X
	}
	if sum != 6 {
		t.Errorf("sum = %v, want 6", sum)
	}

	count := 0
	for i := range tr.All {
		count++
		if i == 1 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break visited %d points, want 2", count)
	}
}
