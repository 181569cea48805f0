package render

import (
	"fmt"
	"math"

	"github.com/decker502/projectile/pkg/ballistics"
)

// Frame 渲染一帧所需的全部输入
//
// 坐标均为物理坐标（Y 轴向上），由 Renderer 翻转到表面坐标。
type Frame struct {
	// Width, Height 绘图表面尺寸
	Width, Height float64
	// Geometry 本次运行的炮管几何
	Geometry ballistics.BarrelGeometry
	// Trajectory 本次运行的轨迹摘要
	Trajectory ballistics.Trajectory
	// Trail 已采样的历史位置
	Trail ballistics.Trail
	// Projectile 当前抛体位置，nil 表示炮管静止（尚未开始飞行）
	Projectile *ballistics.Point
	// Landed 是否已落地，落地后绘制射程标注
	Landed bool
}

// SurfaceY 物理纵坐标转换为表面纵坐标
func (f Frame) SurfaceY(y float64) float64 {
	return f.Height - y
}

// Renderer 把 Frame 转换为绘图命令
//
// Renderer 本身无状态，同一个实例可以被多次运行共用。
type Renderer struct {
	style Style
}

// NewRenderer 创建渲染器
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style 返回渲染样式
func (r *Renderer) Style() Style {
	return r.style
}

// Render 生成完整的一帧
//
// 顺序：清屏、炮管、底座、轨迹点（半透明）、抛体（不透明）、落地标注。
func (r *Renderer) Render(f Frame) *DrawList {
	dl := NewDrawList()

	dl.ClearRect(0, 0, f.Width, f.Height)
	r.DrawBarrel(dl, f)
	r.DrawBase(dl, f)

	if f.Trail.Len() > 0 || f.Projectile != nil {
		dl.SetFillColor(r.style.ProjectileColor)
		r.DrawTrail(dl, f)
	}

	if f.Projectile != nil {
		r.DrawProjectile(dl, f, *f.Projectile)
	}

	if f.Landed {
		r.DrawRange(dl, f)
		r.DrawFlatRange(dl, f)
	}

	return dl
}

// DrawBarrel 绘制旋转后的炮管多边形
func (r *Renderer) DrawBarrel(dl *DrawList, f Frame) {
	corners := f.Geometry.Corners()

	dl.SetFillColor(r.style.BarrelColor)
	dl.BeginPath()
	dl.MoveTo(corners[0].X, f.SurfaceY(corners[0].Y))
	for i := 1; i <= len(corners); i++ {
		c := corners[i%len(corners)]
		dl.LineTo(c.X, f.SurfaceY(c.Y))
	}
	dl.ClosePath()
	dl.Fill()
}

// DrawBase 在表面底边绘制以旋转中心横坐标为圆心的底座
//
// 圆心在底边上，可见部分是半径 L/2 的上半圆。
func (r *Renderer) DrawBase(dl *DrawList, f Frame) {
	dl.SetFillColor(r.style.BaseColor)
	dl.BeginPath()
	dl.Arc(f.Geometry.Pivot.X, f.Height, f.Geometry.Length/2, 0, 2*math.Pi)
	dl.Fill()
}

// DrawTrail 以 TrailAlpha 不透明度绘制所有轨迹点
func (r *Renderer) DrawTrail(dl *DrawList, f Frame) {
	dl.SetAlpha(r.style.TrailAlpha)
	for _, p := range f.Trail.All {
		r.dot(dl, f, p)
	}
}

// DrawProjectile 以完全不透明绘制当前抛体
func (r *Renderer) DrawProjectile(dl *DrawList, f Frame, p ballistics.Point) {
	dl.SetAlpha(1)
	r.dot(dl, f, p)
}

func (r *Renderer) dot(dl *DrawList, f Frame, p ballistics.Point) {
	dl.BeginPath()
	dl.Arc(p.X, f.SurfaceY(p.Y), f.Geometry.Length/10, 0, 2*math.Pi)
	dl.Fill()
}

// DrawRange 绘制实际射程标注：竖线 + "Distance traveled is <range>m"
func (r *Renderer) DrawRange(dl *DrawList, f Frame) {
	mark := f.Trajectory.Range + f.Geometry.Fire.X
	top := f.Height - r.style.TickHeight

	dl.SetAlpha(1)
	dl.SetLineDash()
	dl.SetStrokeColor(r.style.RangeColor)
	dl.BeginPath()
	dl.MoveTo(mark, top)
	dl.LineTo(mark, f.Height)
	dl.Stroke()

	dl.SetFont(r.style.FontSize)
	dl.SetFillColor(r.style.RangeColor)
	dl.FillText(RangeLabel(f.Trajectory.Range), r.LabelX(mark, f.Width), top)
}

// DrawFlatRange 绘制水平射程标注
//
// 炮口高度处的水平虚线参考线、竖线、"Flat distance traveled is <flatRange>" 文字和标记点。
func (r *Renderer) DrawFlatRange(dl *DrawList, f Frame) {
	fire := f.Geometry.Fire
	mark := f.Trajectory.FlatRange + fire.X
	launchY := f.SurfaceY(fire.Y)
	top := launchY - r.style.TickHeight

	dl.SetAlpha(1)
	dl.SetStrokeColor(r.style.FlatRangeColor)
	dl.BeginPath()
	dl.SetLineDash(r.style.DashPattern...)
	dl.MoveTo(fire.X, launchY)
	dl.LineTo(f.Width, launchY)
	dl.Stroke()

	dl.BeginPath()
	dl.SetLineDash()
	dl.MoveTo(mark, launchY)
	dl.LineTo(mark, top)
	dl.Stroke()

	dl.SetFont(r.style.FontSize)
	dl.SetFillColor(r.style.FlatRangeColor)
	dl.FillText(FlatRangeLabel(f.Trajectory.FlatRange), r.LabelX(mark, f.Width), top)

	dl.SetFillColor(r.style.ProjectileColor)
	dl.BeginPath()
	dl.Arc(mark, launchY, f.Geometry.Length/10, 0, 2*math.Pi)
	dl.Fill()
}

// LabelX 计算标注文字的横坐标
//
// 标记线右侧空间足够（mark + LabelMargin < width）时文字放在右侧 mark + LabelOffset，
// 否则放在左侧 mark - LabelBackoff，保证靠近右边缘时文字仍在表面内。
func (r *Renderer) LabelX(mark, width float64) float64 {
	if mark+r.style.LabelMargin < width {
		return mark + r.style.LabelOffset
	}
	return mark - r.style.LabelBackoff
}

// RangeLabel 实际射程标注文字
func RangeLabel(distance float64) string {
	return fmt.Sprintf("Distance traveled is %.2fm", distance)
}

// FlatRangeLabel 水平射程标注文字
func FlatRangeLabel(distance float64) string {
	return fmt.Sprintf("Flat distance traveled is %.2f", distance)
}
