package ballistics

import "math"

// DefaultBarrelLength 未提供炮管长度时使用的默认值
const DefaultBarrelLength = 100.0

// Parameters 一次模拟运行的输入参数
//
// 在一次运行的生命周期内不可变。
type Parameters struct {
	// Speed 发射速度（距离单位/秒）
	Speed float64 `yaml:"speed"`
	// AngleDegrees 发射角（度），通常在 (0, 180) 内
	AngleDegrees float64 `yaml:"angle"`
	// BarrelLength 炮管长度，0 或 NaN 表示使用默认值
	BarrelLength float64 `yaml:"barrelLength"`
	// SurfaceWidth 绘图表面宽度（像素）
	SurfaceWidth float64 `yaml:"-"`
	// SurfaceHeight 绘图表面高度（像素）
	SurfaceHeight float64 `yaml:"-"`
}

// WithDefaults 返回填充了默认炮管长度的参数副本
//
// 炮管长度为 0 或 NaN（输入框为空或无法解析）时替换为 DefaultBarrelLength。
func (p Parameters) WithDefaults() Parameters {
	return p.WithDefaultLength(DefaultBarrelLength)
}

// WithDefaultLength 与 WithDefaults 相同，但使用指定的默认炮管长度
func (p Parameters) WithDefaultLength(length float64) Parameters {
	if p.BarrelLength == 0 || math.IsNaN(p.BarrelLength) {
		p.BarrelLength = length
	}
	return p
}

// Validate 检查参数是否能产生一次有意义的运行
//
// 返回:
//   - error: 第一个不合法字段对应的 *InvalidParameterError，全部合法时返回 nil
func (p Parameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"speed", p.Speed},
		{"angle", p.AngleDegrees},
		{"barrelLength", p.BarrelLength},
		{"surfaceWidth", p.SurfaceWidth},
		{"surfaceHeight", p.SurfaceHeight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidParameterError{Field: f.name, Value: f.value, Reason: "not a finite number"}
		}
	}

	if p.Speed <= 0 {
		return &InvalidParameterError{Field: "speed", Value: p.Speed, Reason: "must be greater than 0"}
	}
	if _, cos := SinCosDegrees(p.AngleDegrees); cos == 0 {
		return &InvalidParameterError{Field: "angle", Value: p.AngleDegrees, Reason: "vertical launch has no horizontal motion"}
	}
	if p.BarrelLength <= 0 {
		return &InvalidParameterError{Field: "barrelLength", Value: p.BarrelLength, Reason: "must be greater than 0"}
	}
	if p.SurfaceWidth <= 0 {
		return &InvalidParameterError{Field: "surfaceWidth", Value: p.SurfaceWidth, Reason: "must be greater than 0"}
	}
	if p.SurfaceHeight <= 0 {
		return &InvalidParameterError{Field: "surfaceHeight", Value: p.SurfaceHeight, Reason: "must be greater than 0"}
	}
	return nil
}
