package render

import "math"

// MaxDashSegments 单条线段切分出的虚线段数上限
//
// 达到上限后剩余部分按实线输出，避免极短的虚线模式在一帧内产生海量线段。
const MaxDashSegments = 4096

// DashSegment 按虚线模式把线段切分为若干实线段
//
// 模式按 [实, 空, 实, 空, ...] 循环；奇数长度的模式按 HTML canvas 规则重复一次。
// 返回的每个元素是 [x0, y0, x1, y1]，最多 MaxDashSegments 个。
func DashSegment(x0, y0, x1, y1 float64, pattern []float64) [][4]float64 {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || !Finite(length) {
		return nil
	}

	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	if DashLength(pattern) == 0 {
		return [][4]float64{{x0, y0, x1, y1}}
	}

	ux := (x1 - x0) / length
	uy := (y1 - y0) / length

	var out [][4]float64
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(pattern) {
		if len(out) == MaxDashSegments-1 {
			out = append(out, [4]float64{x0 + ux*pos, y0 + uy*pos, x1, y1})
			break
		}
		end := math.Min(pos+pattern[i], length)
		if i%2 == 0 && end > pos {
			out = append(out, [4]float64{x0 + ux*pos, y0 + uy*pos, x0 + ux*end, y0 + uy*end})
		}
		pos = end
	}
	return out
}

// DashLength 返回虚线模式一个周期的总长度
func DashLength(pattern []float64) float64 {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	return total
}

// Finite 所有值都不是 NaN 或无穷大时返回 true
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
