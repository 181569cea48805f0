package ballistics

// BarrelGeometry 炮管几何
//
// 由炮管长度和发射角一次性推导得出。一次模拟运行中角度不变，
// 因此该结构在整个运行期间保持不变，构造后不再重新计算。
type BarrelGeometry struct {
	// Length 炮管长度
	Length float64
	// AngleDegrees 发射角（度）
	AngleDegrees float64
	// Pivot 炮管旋转中心
	Pivot Point
	// Fire 炮口（发射点），与 Pivot 距离恒为 Length
	Fire Point
}

// PivotPoint 返回给定炮管长度的旋转中心
//
// 横坐标 L/5 + L/2，纵坐标 L/2 - L/5，即 (0.7·L, 0.3·L)。
// 旋转中心横向让出底座半径 L/2 再加 L/5 的间距。
func PivotPoint(barrelLength float64) Point {
	return Point{
		X: barrelLength/5 + barrelLength/2,
		Y: barrelLength/2 - barrelLength/5,
	}
}

// ComputeBarrelGeometry 计算炮管的旋转中心和炮口位置
//
// 参数:
//   - barrelLength: 炮管长度 L
//   - angleDegrees: 发射角（度）
//
// 返回:
//   - BarrelGeometry: Fire = Pivot + L·(cosθ, sinθ)
func ComputeBarrelGeometry(barrelLength, angleDegrees float64) BarrelGeometry {
	pivot := PivotPoint(barrelLength)
	sin, cos := SinCosDegrees(angleDegrees)

	return BarrelGeometry{
		Length:       barrelLength,
		AngleDegrees: angleDegrees,
		Pivot:        pivot,
		Fire: Point{
			X: pivot.X + barrelLength*cos,
			Y: pivot.Y + barrelLength*sin,
		},
	}
}

// Corners 返回旋转后的炮管四个角点
func (g BarrelGeometry) Corners() [4]Point {
	return BarrelCorners(g.Pivot, g.Length, g.AngleDegrees)
}

// BarrelCorners 计算炮管多边形的四个角点
//
// 未旋转时炮管沿 +X 方向：近端（旋转中心一侧）高 2L/5，远端（炮口一侧）高 L/5。
// 角点顺序为 近端下、近端上、远端上、远端下，随后绕 pivot 旋转 angleDegrees。
func BarrelCorners(pivot Point, barrelLength, angleDegrees float64) [4]Point {
	nearX := pivot.X
	farX := pivot.X + barrelLength

	corners := [4]Point{
		{X: nearX, Y: pivot.Y - barrelLength/5},
		{X: nearX, Y: pivot.Y + barrelLength/5},
		{X: farX, Y: pivot.Y + barrelLength/10},
		{X: farX, Y: pivot.Y - barrelLength/10},
	}

	for i := range corners {
		corners[i] = RotatePoint(corners[i], pivot, angleDegrees)
	}
	return corners
}

// RotatePoint 使用标准二维旋转矩阵将 p 绕 pivot 逆时针旋转 angleDegrees
//
// 旋转保持 p 到 pivot 的距离不变。
func RotatePoint(p, pivot Point, angleDegrees float64) Point {
	sin, cos := SinCosDegrees(angleDegrees)
	d := p.Sub(pivot)

	return Point{
		X: cos*d.X - sin*d.Y + pivot.X,
		Y: sin*d.X + cos*d.Y + pivot.Y,
	}
}
