package render

import (
	"image/color"
	"math"
	"testing"
)

func TestDrawListRecordsInOrder(t *testing.T) {
	dl := NewDrawList()
	dl.ClearRect(0, 0, 10, 10)
	dl.SetFillColor(color.RGBA{R: 255, A: 255})
	dl.BeginPath()
	dl.MoveTo(1, 2)
	dl.LineTo(3, 4)
	dl.ClosePath()
	dl.Fill()
	dl.FillText("hello", 5, 6)

	want := []Op{OpClearRect, OpSetFillColor, OpBeginPath, OpMoveTo, OpLineTo, OpClosePath, OpFill, OpFillText}
	cmds := dl.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len = %d, want %d", len(cmds), len(want))
	}
	for i, op := range want {
		if cmds[i].Op != op {
			t.Errorf("cmds[%d] = %v, want %v", i, cmds[i].Op, op)
		}
	}
	if cmds[3].X != 1 || cmds[3].Y != 2 {
		t.Errorf("MoveTo = (%v, %v), want (1, 2)", cmds[3].X, cmds[3].Y)
	}
	if cmds[7].Text != "hello" {
		t.Errorf("FillText text = %q", cmds[7].Text)
	}
}

func TestDrawListCommandsIsCopy(t *testing.T) {
	dl := NewDrawList()
	dl.MoveTo(1, 1)

	cmds := dl.Commands()
	cmds[0].X = 99

	if dl.Commands()[0].X != 1 {
		t.Error("modifying Commands() result changed the list")
	}
}

func TestDrawListSetLineDashCopiesPattern(t *testing.T) {
	pattern := []float64{5, 15}
	dl := NewDrawList()
	dl.SetLineDash(pattern...)
	pattern[0] = 100

	if got := dl.Commands()[0].Dash[0]; got != 5 {
		t.Errorf("dash[0] = %v, want 5", got)
	}

	dl.SetLineDash()
	if got := dl.Commands()[1].Dash; len(got) != 0 {
		t.Errorf("solid dash = %v, want empty", got)
	}
}

func TestDrawListAppendAndCount(t *testing.T) {
	a := NewDrawList()
	a.Fill()
	b := NewDrawList()
	b.Fill()
	b.Stroke()

	a.Append(b)
	a.Append(nil)

	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
	if a.Count(OpFill) != 2 {
		t.Errorf("Count(Fill) = %d, want 2", a.Count(OpFill))
	}
	if a.Count(OpArc) != 0 {
		t.Errorf("Count(Arc) = %d, want 0", a.Count(OpArc))
	}
}

func TestOpString(t *testing.T) {
	if OpArc.String() != "Arc" {
		t.Errorf("OpArc.String() = %q", OpArc.String())
	}
	if Op(100).String() != "Unknown" {
		t.Errorf("Op(100).String() = %q", Op(100).String())
	}
}

func TestDashSegment(t *testing.T) {
	tests := []struct {
		name    string
		length  float64
		pattern []float64
		want    [][2]float64 // 每段 [起点x, 终点x]
	}{
		{"standard", 40, []float64{5, 15}, [][2]float64{{0, 5}, {20, 25}}},
		{"truncated last dash", 23, []float64{5, 15}, [][2]float64{{0, 5}, {20, 23}}},
		{"odd pattern doubled", 20, []float64{4}, [][2]float64{{0, 4}, {8, 12}, {16, 20}}},
		{"zero pattern is solid", 10, []float64{0, 0}, [][2]float64{{0, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DashSegment(0, 0, tt.length, 0, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments %v, want %d", len(got), got, len(tt.want))
			}
			for i, w := range tt.want {
				if math.Abs(got[i][0]-w[0]) > 1e-9 || math.Abs(got[i][2]-w[1]) > 1e-9 {
					t.Errorf("segment %d = [%v..%v], want [%v..%v]", i, got[i][0], got[i][2], w[0], w[1])
				}
				if got[i][1] != 0 || got[i][3] != 0 {
					t.Errorf("segment %d left the line: %v", i, got[i])
				}
			}
		})
	}
}

func TestDashSegmentDegenerate(t *testing.T) {
	if got := DashSegment(1, 1, 1, 1, []float64{5, 15}); got != nil {
		t.Errorf("zero-length segment = %v, want nil", got)
	}
	if got := DashSegment(0, 0, math.NaN(), 0, []float64{5, 15}); got != nil {
		t.Errorf("NaN segment = %v, want nil", got)
	}
}

func TestDashSegmentDiagonal(t *testing.T) {
	// 3-4-5 三角形，第一段长 5 的终点应在 (3, 4)
	got := DashSegment(0, 0, 30, 40, []float64{5, 5})
	if len(got) != 5 {
		t.Fatalf("got %d segments, want 5", len(got))
	}
	if math.Abs(got[0][2]-3) > 1e-9 || math.Abs(got[0][3]-4) > 1e-9 {
		t.Errorf("first dash ends at (%v, %v), want (3, 4)", got[0][2], got[0][3])
	}
}

func TestDashSegmentCapsTinyPattern(t *testing.T) {
	got := DashSegment(0, 0, 800, 0, []float64{1e-7, 1e-7})
	if len(got) != MaxDashSegments {
		t.Fatalf("got %d segments, want %d", len(got), MaxDashSegments)
	}
	last := got[len(got)-1]
	if last[2] != 800 || last[3] != 0 {
		t.Errorf("last segment ends at (%v, %v), want (800, 0)", last[2], last[3])
	}
}

func TestDrawListAll(t *testing.T) {
	dl := NewDrawList()
	dl.BeginPath()
	dl.MoveTo(1, 2)
	dl.Stroke()

	var ops []Op
	for i, c := range dl.All() {
		if i != len(ops) {
			t.Fatalf("index %d out of order", i)
		}
		ops = append(ops, c.Op)
	}
	want := []Op{OpBeginPath, OpMoveTo, OpStroke}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, ops[i], want[i])
		}
	}
}
