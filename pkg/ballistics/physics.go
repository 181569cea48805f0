package ballistics

import "math"

// StandardGravity 标准重力加速度（m/s²）
const StandardGravity = 9.80665

// ToRadians 角度转弧度
//
// 所有三角函数调用前都经过这里转换，保证全包使用同一换算。
func ToRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// SinCosDegrees 返回角度 deg 的正弦和余弦
//
// 对 90° 的整数倍返回精确值（cos 90° == 0, sin 180° == 0），
// 其余角度经 ToRadians 转换后调用 math.Sincos。
// 这样 cosθ = 0 的边界在数值上可被精确观察到。
func SinCosDegrees(deg float64) (sin, cos float64) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return math.NaN(), math.NaN()
	}

	if q := deg / 90; q == math.Trunc(q) && math.Abs(q) < 1<<52 {
		switch int64(math.Mod(q, 4)+4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}

	return math.Sincos(ToRadians(deg))
}

// HorizontalSpeed 返回发射速度的水平分量 v·cosθ
func HorizontalSpeed(speed, angleDeg float64) float64 {
	_, cos := SinCosDegrees(angleDeg)
	return speed * cos
}

// FlightRange 计算从高度 launchHeight 发射、落到 y = 0 平面的射程
//
//	R = (v·cosθ / g) · (v·sinθ + sqrt((v·sinθ)² + 2·g·h))
//
// 要求 g > 0。判别式为负时结果为 NaN（launchHeight ≥ 0 时不会发生）。
func FlightRange(speed, angleDeg, launchHeight, g float64) float64 {
	sin, cos := SinCosDegrees(angleDeg)
	vx := speed * cos
	vy := speed * sin

	return (vx / g) * (vy + math.Sqrt(vy*vy+2*g*launchHeight))
}

// FlatRange 计算水平地面射程（忽略炮口高度）
//
//	R_flat = v²·sin(2θ) / g
func FlatRange(speed, angleDeg, g float64) float64 {
	sin2, _ := SinCosDegrees(2 * angleDeg)
	return speed * speed * sin2 / g
}

// FlightTime 计算回到发射高度所需的时间 T = 2·v·sinθ / g
//
// 仅作为参考值，动画的终止条件是落地判定而不是该时间。
func FlightTime(speed, angleDeg, g float64) float64 {
	sin, _ := SinCosDegrees(angleDeg)
	return 2 * speed * sin / g
}

// HeightAt 计算水平位移 x 处相对炮口的高度
//
//	y(x) = x·tanθ − (g/2)·(x / (v·cosθ))²
//
// 这是动画每帧的核心求值，参数是水平位移而不是时间；
// 调用方需先用 x = v·cosθ·Δt 把经过时间换算为水平位移。
//
// x == 0 时返回 0·tanθ：tanθ 有限时为 0（包括 v == 0 的静止情况），
// cosθ == 0（如 90°）时为 NaN。cosθ == 0 时任意 x 的结果都不是有限数。
func HeightAt(x, speed, angleDeg, g float64) float64 {
	sin, cos := SinCosDegrees(angleDeg)
	tan := sin / cos

	if x == 0 {
		return x * tan
	}

	t := x / (speed * cos)
	return x*tan - (g/2)*t*t
}

// Trajectory 一次运行的轨迹摘要，运行开始时计算一次
type Trajectory struct {
	// Range 考虑炮口高度的实际射程（相对炮口横坐标）
	Range float64 `yaml:"range"`
	// FlatRange 水平地面射程
	FlatRange float64 `yaml:"flatRange"`
	// FlightTime 回到发射高度的参考时间（秒）
	FlightTime float64 `yaml:"flightTime"`
	// HorizontalSpeed 水平速度分量
	HorizontalSpeed float64 `yaml:"horizontalSpeed"`
	// Gravity 使用的重力加速度
	Gravity float64 `yaml:"gravity"`
}

// NewTrajectory 根据参数和炮管几何计算轨迹摘要
//
// 发射高度取炮口的纵坐标 geometry.Fire.Y。
func NewTrajectory(params Parameters, geometry BarrelGeometry, g float64) Trajectory {
	return Trajectory{
		Range:           FlightRange(params.Speed, params.AngleDegrees, geometry.Fire.Y, g),
		FlatRange:       FlatRange(params.Speed, params.AngleDegrees, g),
		FlightTime:      FlightTime(params.Speed, params.AngleDegrees, g),
		HorizontalSpeed: HorizontalSpeed(params.Speed, params.AngleDegrees),
		Gravity:         g,
	}
}

// PositionAt 返回发射后经过 elapsed 秒时抛体的物理坐标（绝对坐标）
//
// 横坐标 = 炮口横坐标 + v·cosθ·elapsed，纵坐标 = 炮口纵坐标 + HeightAt(x)。
func PositionAt(params Parameters, geometry BarrelGeometry, g, elapsed float64) Point {
	x := HorizontalSpeed(params.Speed, params.AngleDegrees) * elapsed
	y := geometry.Fire.Y + HeightAt(x, params.Speed, params.AngleDegrees, g)

	return Point{X: x + geometry.Fire.X, Y: y}
}
