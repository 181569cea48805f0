// Package canvas 把 render.DrawList 以即时模式回放到 *ebiten.Image 上
//
// 与命令生成分开成包，render 本身不依赖 ebiten，可以在无界面环境中使用。
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/decker502/projectile/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// whiteSubImage 纯白纹理，DrawTriangles 的顶点颜色与之相乘
// 首次绘制时才创建，无界面使用 render 包时不触碰 ebiten 图像
var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// NewDefaultFontSource 使用内置的 Go Regular 字体创建字体源
func NewDefaultFontSource() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return source, nil
}

// segment 路径中的直线段，用于虚线描边
type segment struct {
	x0, y0, x1, y1 float64
}

// Canvas 把 DrawList 回放到 ebiten 图像上
//
// 与 HTML canvas 一样，目标图像的像素在两次 Execute 之间保留；
// 绘图状态（颜色、不透明度、虚线、字号、路径）在每次 Execute 开始时重置。
type Canvas struct {
	target     *ebiten.Image
	fontSource *text.GoTextFaceSource

	fillColor   color.RGBA
	strokeColor color.RGBA
	alpha       float64
	dash        []float64
	lineWidth   float64
	fontSize    float64

	path      vector.Path
	segments  []segment
	hasPoint  bool
	curX      float64
	curY      float64
	subStartX float64
	subStartY float64

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas 创建画布
//
// 参数:
//   - target: 绘制目标（通常是与表面同尺寸的离屏图像）
//   - fontSource: 文字字体源，nil 时 FillText 被忽略
//   - lineWidth: 描边线宽
func NewCanvas(target *ebiten.Image, fontSource *text.GoTextFaceSource, lineWidth float64) *Canvas {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	c := &Canvas{
		target:     target,
		fontSource: fontSource,
		lineWidth:  lineWidth,
	}
	c.reset()
	return c
}

// Target 返回绘制目标图像
func (c *Canvas) Target() *ebiten.Image {
	return c.target
}

func (c *Canvas) reset() {
	c.fillColor = color.RGBA{A: 255}
	c.strokeColor = color.RGBA{A: 255}
	c.alpha = 1
	c.dash = nil
	c.fontSize = 10
	c.beginPath()
}

func (c *Canvas) beginPath() {
	c.path = vector.Path{}
	c.segments = c.segments[:0]
	c.hasPoint = false
}

// Execute 按顺序执行列表中的所有命令
func (c *Canvas) Execute(dl *render.DrawList) {
	if dl == nil {
		return
	}
	c.reset()

	for _, cmd := range dl.All() {
		switch cmd.Op {
		case render.OpClearRect:
			c.clearRect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case render.OpBeginPath:
			c.beginPath()
		case render.OpMoveTo:
			c.moveTo(cmd.X, cmd.Y)
		case render.OpLineTo:
			c.lineTo(cmd.X, cmd.Y)
		case render.OpArc:
			c.arc(cmd.X, cmd.Y, cmd.Radius, cmd.StartAngle, cmd.EndAngle)
		case render.OpClosePath:
			c.closePath()
		case render.OpFill:
			c.fill()
		case render.OpStroke:
			c.stroke()
		case render.OpSetFillColor:
			c.fillColor = cmd.Color
		case render.OpSetStrokeColor:
			c.strokeColor = cmd.Color
		case render.OpSetLineDash:
			c.dash = cmd.Dash
		case render.OpSetAlpha:
			c.alpha = cmd.Alpha
		case render.OpSetFont:
			c.fontSize = cmd.FontSize
		case render.OpFillText:
			c.fillText(cmd.Text, cmd.X, cmd.Y)
		}
	}
}

func (c *Canvas) clearRect(x, y, w, h float64) {
	rect := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	rect = rect.Intersect(c.target.Bounds())
	if rect.Empty() {
		return
	}
	c.target.SubImage(rect).(*ebiten.Image).Clear()
}

func (c *Canvas) moveTo(x, y float64) {
	if !render.Finite(x, y) {
		return
	}
	c.path.MoveTo(float32(x), float32(y))
	c.curX, c.curY = x, y
	c.subStartX, c.subStartY = x, y
	c.hasPoint = true
}

func (c *Canvas) lineTo(x, y float64) {
	if !render.Finite(x, y) {
		return
	}
	if !c.hasPoint {
		c.moveTo(x, y)
		return
	}
	c.path.LineTo(float32(x), float32(y))
	c.segments = append(c.segments, segment{c.curX, c.curY, x, y})
	c.curX, c.curY = x, y
}

func (c *Canvas) arc(x, y, radius, start, end float64) {
	// 非数值坐标（退化输入）静默跳过，与浏览器 canvas 行为一致
	if !render.Finite(x, y, radius, start, end) || radius < 0 {
		return
	}
	c.path.Arc(float32(x), float32(y), float32(radius), float32(start), float32(end), vector.Clockwise)
	c.curX = x + radius*math.Cos(end)
	c.curY = y + radius*math.Sin(end)
	if !c.hasPoint {
		c.subStartX = x + radius*math.Cos(start)
		c.subStartY = y + radius*math.Sin(start)
	}
	c.hasPoint = true
}

func (c *Canvas) closePath() {
	if !c.hasPoint {
		return
	}
	c.path.Close()
	c.segments = append(c.segments, segment{c.curX, c.curY, c.subStartX, c.subStartY})
	c.curX, c.curY = c.subStartX, c.subStartY
}

func (c *Canvas) fill() {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(c.fillColor, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (c *Canvas) stroke() {
	opts := &vector.StrokeOptions{Width: float32(c.lineWidth)}

	if len(c.dash) == 0 || render.DashLength(c.dash) == 0 {
		c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	} else {
		var dashed vector.Path
		for _, s := range c.segments {
			for _, d := range render.DashSegment(s.x0, s.y0, s.x1, s.y1, c.dash) {
				dashed.MoveTo(float32(d[0]), float32(d[1]))
				dashed.LineTo(float32(d[2]), float32(d[3]))
			}
		}
		c.vertices, c.indices = dashed.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	}

	c.drawTriangles(c.strokeColor, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) drawTriangles(clr color.RGBA, opts *ebiten.DrawTrianglesOptions) {
	if len(c.indices) == 0 {
		return
	}

	// 顶点颜色需要预乘 alpha
	a := float32(clr.A) / 255 * float32(c.alpha)
	r := float32(clr.R) / 255 * a
	g := float32(clr.G) / 255 * a
	b := float32(clr.B) / 255 * a
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage(), opts)
}

func (c *Canvas) fillText(s string, x, y float64) {
	if c.fontSource == nil || !render.Finite(x, y) {
		return
	}

	face := &text.GoTextFace{
		Source:    c.fontSource,
		Size:      c.fontSize,
		Direction: text.DirectionLeftToRight,
	}

	// (x, y) 是基线位置，text/v2 以行顶为原点
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.fillColor)
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	text.Draw(c.target, s, face, op)
}
