// Package ballistics 提供炮管几何与抛体运动的闭式物理模型
//
// # 坐标系统
//
// 本包中的所有坐标都使用"物理坐标系"：原点位于绘图表面左下角，Y 轴向上。
// 渲染层（pkg/render）是唯一负责翻转到"表面坐标系"（Y 轴向下）的组件：
//
//	surfaceY = surfaceHeight - physicsY
//
// 本包的所有函数都是纯函数，不做输入校验；非数值输入会以 NaN 形式传播。
// 边界校验见 Parameters.Validate。
package ballistics

import "math"

// Point 平面坐标点（物理坐标系，Y 轴向上）
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回两点的向量和
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 返回 p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsFinite 两个分量都是有限数时返回 true
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Distance 返回两点之间的欧几里得距离
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
