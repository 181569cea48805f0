// Package render 负责把炮管、抛体、轨迹和落地标注绘制到二维绘图表面
//
// 渲染分两步：
//   - Renderer 根据当前几何、物理数据和轨迹生成 DrawList（绘图命令列表），
//     这一步是纯计算，不依赖真实的绘图表面，可以直接在测试中检查；
//   - canvas 子包把 DrawList 以即时模式回放到 *ebiten.Image 上。
//
// 本包不依赖 ebiten。
//
// DrawList 中的坐标已经是表面坐标（Y 轴向下）。
package render

import (
	"image/color"
	"iter"
	"slices"
)

// Op 绘图命令类型
type Op int

const (
	OpClearRect Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpFill
	OpStroke
	OpSetFillColor
	OpSetStrokeColor
	OpSetLineDash
	OpSetAlpha
	OpSetFont
	OpFillText
)

var opNames = [...]string{
	OpClearRect:      "ClearRect",
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpArc:            "Arc",
	OpClosePath:      "ClosePath",
	OpFill:           "Fill",
	OpStroke:         "Stroke",
	OpSetFillColor:   "SetFillColor",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetLineDash:    "SetLineDash",
	OpSetAlpha:       "SetAlpha",
	OpSetFont:        "SetFont",
	OpFillText:       "FillText",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// Command 一条即时模式绘图命令
//
// 各字段的含义取决于 Op：
//   - ClearRect: X, Y, W, H
//   - MoveTo / LineTo: X, Y
//   - Arc: X, Y 为圆心，Radius, StartAngle, EndAngle（弧度，顺时针）
//   - SetFillColor / SetStrokeColor: Color
//   - SetLineDash: Dash（空表示实线）
//   - SetAlpha: Alpha
//   - SetFont: FontSize
//   - FillText: Text, X, Y（基线左端）
type Command struct {
	Op         Op
	X, Y       float64
	W, H       float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Color      color.RGBA
	Dash       []float64
	Alpha      float64
	FontSize   float64
	Text       string
}

// DrawList 按顺序记录的绘图命令列表
type DrawList struct {
	commands []Command
}

// NewDrawList 创建空的命令列表
func NewDrawList() *DrawList {
	return &DrawList{commands: make([]Command, 0, 64)}
}

func (d *DrawList) push(c Command) {
	d.commands = append(d.commands, c)
}

// ClearRect 清空矩形区域
func (d *DrawList) ClearRect(x, y, w, h float64) {
	d.push(Command{Op: OpClearRect, X: x, Y: y, W: w, H: h})
}

// BeginPath 开始新路径
func (d *DrawList) BeginPath() {
	d.push(Command{Op: OpBeginPath})
}

// MoveTo 开始新的子路径
func (d *DrawList) MoveTo(x, y float64) {
	d.push(Command{Op: OpMoveTo, X: x, Y: y})
}

// LineTo 添加直线段
func (d *DrawList) LineTo(x, y float64) {
	d.push(Command{Op: OpLineTo, X: x, Y: y})
}

// Arc 添加圆弧
func (d *DrawList) Arc(x, y, radius, startAngle, endAngle float64) {
	d.push(Command{Op: OpArc, X: x, Y: y, Radius: radius, StartAngle: startAngle, EndAngle: endAngle})
}

// ClosePath 闭合当前子路径
func (d *DrawList) ClosePath() {
	d.push(Command{Op: OpClosePath})
}

// Fill 用当前填充色填充路径
func (d *DrawList) Fill() {
	d.push(Command{Op: OpFill})
}

// Stroke 用当前描边色描边路径
func (d *DrawList) Stroke() {
	d.push(Command{Op: OpStroke})
}

// SetFillColor 设置填充色
func (d *DrawList) SetFillColor(c color.RGBA) {
	d.push(Command{Op: OpSetFillColor, Color: c})
}

// SetStrokeColor 设置描边色
func (d *DrawList) SetStrokeColor(c color.RGBA) {
	d.push(Command{Op: OpSetStrokeColor, Color: c})
}

// SetLineDash 设置虚线模式，不传参数表示实线
func (d *DrawList) SetLineDash(pattern ...float64) {
	d.push(Command{Op: OpSetLineDash, Dash: slices.Clone(pattern)})
}

// SetAlpha 设置全局不透明度
func (d *DrawList) SetAlpha(alpha float64) {
	d.push(Command{Op: OpSetAlpha, Alpha: alpha})
}

// SetFont 设置字号
func (d *DrawList) SetFont(size float64) {
	d.push(Command{Op: OpSetFont, FontSize: size})
}

// FillText 在基线位置 (x, y) 绘制文字
func (d *DrawList) FillText(s string, x, y float64) {
	d.push(Command{Op: OpFillText, Text: s, X: x, Y: y})
}

// Append 追加另一个列表的全部命令
func (d *DrawList) Append(other *DrawList) {
	if other == nil {
		return
	}
	d.commands = append(d.commands, other.commands...)
}

// Commands 返回命令的副本
func (d *DrawList) Commands() []Command {
	return slices.Clone(d.commands)
}

// All 按顺序遍历命令，不复制
func (d *DrawList) All() iter.Seq2[int, Command] {
	return slices.All(d.commands)
}

// Len 返回命令数量
func (d *DrawList) Len() int {
	return len(d.commands)
}

// Count 返回指定类型命令的数量
func (d *DrawList) Count(op Op) int {
	n := 0
	for _, c := range d.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts 返回所有 FillText 命令的文字，按绘制顺序排列
func (d *DrawList) Texts() []string {
	var texts []string
	for _, c := range d.commands {
		if c.Op == OpFillText {
			texts = append(texts, c.Text)
		}
	}
	return texts
}
