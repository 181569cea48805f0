package ballistics

import "slices"

// Trail 抛体历史位置的稀疏采样序列（最旧的在前）
//
// Trail 是值类型，只能追加：Append 返回新的 Trail，原值不受影响，
// 因此旧的运行状态可以安全保留。
//
// Capacity > 0 时 Trail 是固定容量的环形缓冲区，超出容量时丢弃最旧的点；
// Capacity == 0 表示无上限（一次有限运行的默认行为）。
type Trail struct {
	points   []Point
	capacity int
}

// NewTrail 创建空轨迹
//
// 参数:
//   - capacity: 最大保留点数，0 表示无上限
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{capacity: capacity}
}

// Append 追加一个点并返回新的 Trail
func (t Trail) Append(p Point) Trail {
	// Clip 强制 append 重新分配，避免与旧值共享底层数组
	points := append(slices.Clip(t.points), p)
	if t.capacity > 0 && len(points) > t.capacity {
		points = points[len(points)-t.capacity:]
	}
	return Trail{points: points, capacity: t.capacity}
}

// Len 返回采样点数量
func (t Trail) Len() int {
	return len(t.points)
}

// Capacity 返回容量上限（0 表示无上限）
func (t Trail) Capacity() int {
	return t.capacity
}

// Points 返回采样点的副本，按插入顺序排列
func (t Trail) Points() []Point {
	return slices.Clone(t.points)
}

// All 按插入顺序遍历采样点
func (t Trail) All(yield func(int, Point) bool) {
	for i, p := range t.points {
		if !yield(i, p) {
			return
		}
	}
}
