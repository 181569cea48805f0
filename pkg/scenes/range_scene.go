// Package scenes 提供应用的交互场景
package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/components"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/ecs"
	"github.com/decker502/projectile/pkg/game"
	"github.com/decker502/projectile/pkg/render"
	"github.com/decker502/projectile/pkg/render/canvas"
	"github.com/decker502/projectile/pkg/simulation"
	"github.com/decker502/projectile/pkg/systems"
	"github.com/decker502/projectile/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 输入框字段名，与 ballistics.InvalidParameterError.Field 一致
const (
	FieldSpeed        = "speed"
	FieldAngle        = "angle"
	FieldBarrelLength = "barrelLength"
)

var (
	formBackground  = color.RGBA{240, 240, 240, 255}
	surfaceColor    = color.RGBA{255, 255, 255, 255}
	errorTextColor  = color.RGBA{200, 30, 30, 255}
	buttonTextColor = color.RGBA{255, 255, 255, 255}
)

// RangeScene 射击场场景
//
// 上方是参数表单（速度、角度、炮管长度三个数值输入框和 Fire 按钮），
// 下方是绘图表面。点击 Fire 或在输入框中按 Enter 启动一次新的运行，
// 正在进行的运行被取代。
type RangeScene struct {
	settings   *game.SettingsManager
	controller *simulation.Controller
	frames     *simulation.FrameQueue

	// clock 场景累计运行时间，作为帧回调的时间戳
	clock time.Duration

	// ECS
	entityManager         *ecs.EntityManager
	textInputSystem       *systems.TextInputSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	buttonSystem          *systems.ButtonSystem
	buttonRenderSystem    *systems.ButtonRenderSystem
	inputs                map[string]ecs.EntityID
	fireButton            ecs.EntityID

	// 绘图表面
	surface *ebiten.Image
	canvas  *canvas.Canvas
	latest  *render.DrawList
	dirty   bool

	uiFont       *text.GoTextFace
	errorMessage string
}

// NewRangeScene 创建射击场场景
//
// 参数:
//   - cfg: 模拟配置，nil 时使用默认配置
//   - settings: 设置管理器，nil 时仅使用内存设置
//   - initial: 输入框初始值（炮管长度为 0 时显示默认长度）
//
// 返回:
//   - error: 字体加载失败时返回错误
func NewRangeScene(cfg *config.SimulationConfig, settings *game.SettingsManager, initial ballistics.Parameters) (*RangeScene, error) {
	if cfg == nil {
		cfg = config.DefaultSimulationConfig()
	}
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	fontSource, err := canvas.NewDefaultFontSource()
	if err != nil {
		return nil, fmt.Errorf("range scene: %w", err)
	}

	controller := simulation.NewController(cfg, nil)
	surface := ebiten.NewImage(cfg.Surface.Width, cfg.Surface.Height)

	s := &RangeScene{
		settings:      settings,
		controller:    controller,
		frames:        simulation.NewFrameQueue(),
		entityManager: ecs.NewEntityManager(),
		inputs:        make(map[string]ecs.EntityID),
		surface:       surface,
		canvas:        canvas.NewCanvas(surface, fontSource, controller.Config().Style.LineWidth),
		uiFont:        &text.GoTextFace{Source: fontSource, Size: config.UIFontSize},
	}

	s.textInputSystem = systems.NewTextInputSystem(s.entityManager)
	s.textInputSystem.OnSubmit = s.Fire
	s.textInputRenderSystem = systems.NewTextInputRenderSystem(s.entityManager, s.uiFont, config.InputLabelOffsetY)
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager)

	initial = initial.WithDefaultLength(cfg.DefaultBarrelLength)
	s.createForm(initial)
	s.show(controller.Preview(initial))

	log.Printf("[RangeScene] Created: surface=%dx%d", cfg.Surface.Width, cfg.Surface.Height)
	return s, nil
}

// createForm 创建输入框和 Fire 按钮实体
func (s *RangeScene) createForm(initial ballistics.Parameters) {
	fields := []struct {
		name  string
		label string
		value float64
	}{
		{FieldSpeed, "Speed", initial.Speed},
		{FieldAngle, "Angle", initial.AngleDegrees},
		{FieldBarrelLength, "Size", initial.BarrelLength},
	}

	for i, f := range fields {
		id := s.entityManager.CreateEntity()
		value := formatInput(f.value)
		s.entityManager.AddComponent(id, &components.TextInputComponent{
			Name:           f.name,
			Label:          f.label,
			Text:           value,
			Width:          config.InputWidth,
			Height:         config.InputHeight,
			CursorPosition: len([]rune(value)),
			MaxLength:      config.InputMaxLength,
			AcceptRune:     systems.NumericRune,
			PaddingLeft:    6,
		})
		s.entityManager.AddComponent(id, &components.PositionComponent{
			X: config.FormPaddingX + float64(i)*config.InputSpacing,
			Y: config.FormRowY,
		})
		s.inputs[f.name] = id
	}

	s.fireButton = s.entityManager.CreateEntity()
	s.entityManager.AddComponent(s.fireButton, &components.ButtonComponent{
		Text:         "Fire",
		Font:         s.uiFont,
		TextColor:    buttonTextColor,
		NormalColor:  color.RGBA{32, 163, 141, 255},
		HoverColor:   color.RGBA{40, 185, 160, 255},
		PressedColor: color.RGBA{24, 125, 108, 255},
		Width:        config.ButtonWidth,
		Height:       config.ButtonHeight,
		Enabled:      true,
		OnClick:      s.Fire,
	})
	s.entityManager.AddComponent(s.fireButton, &components.PositionComponent{
		X: config.FormPaddingX + float64(len(fields))*config.InputSpacing,
		Y: config.FormRowY - (config.ButtonHeight-config.InputHeight)/2,
	})
}

// formatInput 输入框显示的数值文本
func formatInput(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseInput 把输入框文本解析为数值
//
// 空文本或无法解析的文本返回 NaN，交由参数校验处理。
func ParseInput(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// input 按字段名获取输入框组件
func (s *RangeScene) input(name string) *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.inputs[name])
	return input
}

// SetInput 设置输入框文本（用于命令行预填和测试）
func (s *RangeScene) SetInput(name, value string) {
	if input := s.input(name); input != nil {
		input.Text = value
		input.CursorPosition = len([]rune(value))
		input.Invalid = false
	}
}

// Parameters 读取表单当前的发射参数
func (s *RangeScene) Parameters() ballistics.Parameters {
	cfg := s.controller.Config()
	return ballistics.Parameters{
		Speed:         ParseInput(s.input(FieldSpeed).Text),
		AngleDegrees:  ParseInput(s.input(FieldAngle).Text),
		BarrelLength:  ParseInput(s.input(FieldBarrelLength).Text),
		SurfaceWidth:  float64(cfg.Surface.Width),
		SurfaceHeight: float64(cfg.Surface.Height),
	}
}

// Fire 用表单参数启动一次新的运行
//
// 参数不合法时显示错误提示并标红对应输入框，当前运行继续进行。
func (s *RangeScene) Fire() {
	params := s.Parameters()

	handle, err := s.controller.Start(params, s.frames, simulation.PresenterFunc(s.show))
	if err != nil {
		s.showError(err)
		return
	}

	s.clearErrors()
	s.settings.RecordLaunch(handle.Context().Params)
	log.Printf("[RangeScene] Fired run %d", handle.ID())
}

// showError 显示校验错误
func (s *RangeScene) showError(err error) {
	s.errorMessage = err.Error()

	var invalid *ballistics.InvalidParameterError
	if errors.As(err, &invalid) {
		for name, id := range s.inputs {
			input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
			input.Invalid = name == invalid.Field
		}
		s.errorMessage = fmt.Sprintf("Cannot fire: %s %s", invalid.Field, invalid.Reason)
	}
}

func (s *RangeScene) clearErrors() {
	s.errorMessage = ""
	for _, id := range s.inputs {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		input.Invalid = false
	}
}

// ErrorMessage 返回当前显示的错误提示（没有时为空）
func (s *RangeScene) ErrorMessage() string {
	return s.errorMessage
}

// Controller 返回场景使用的模拟控制器
func (s *RangeScene) Controller() *simulation.Controller {
	return s.controller
}

// Latest 返回最近一帧的绘图命令
func (s *RangeScene) Latest() *render.DrawList {
	return s.latest
}

// show 接收控制器生成的帧，下一次 Draw 时回放到绘图表面
func (s *RangeScene) show(dl *render.DrawList) {
	s.latest = dl
	s.dirty = true
}

// Update 更新表单交互并驱动帧回调
func (s *RangeScene) Update(deltaTime float64) {
	s.textInputSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)

	// 移动端没有 Enter 键：点击绘图表面发射
	if utils.IsMobile() {
		if pressed, x, y := utils.IsPointerJustPressed(); pressed && s.SurfaceContains(float64(x), float64(y)) {
			s.Fire()
		}
	}

	s.tick(deltaTime)
}

// SurfaceContains 判断屏幕坐标是否落在绘图表面内
func (s *RangeScene) SurfaceContains(x, y float64) bool {
	b := s.surface.Bounds()
	return utils.Rect{X: 0, Y: config.SurfaceOffsetY, Width: float64(b.Dx()), Height: float64(b.Dy())}.Contains(x, y)
}

// tick 推进场景时钟并执行本帧登记的回调
func (s *RangeScene) tick(deltaTime float64) {
	s.clock += time.Duration(deltaTime * float64(time.Second))
	s.frames.Flush(s.clock)
}

// Draw 绘制表单和绘图表面
func (s *RangeScene) Draw(screen *ebiten.Image) {
	if s.dirty {
		s.canvas.Execute(s.latest)
		s.dirty = false
	}

	screen.Fill(formBackground)

	bounds := s.surface.Bounds()
	vector.DrawFilledRect(screen, 0, config.SurfaceOffsetY, float32(bounds.Dx()), float32(bounds.Dy()), surfaceColor, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.SurfaceOffsetY)
	screen.DrawImage(s.surface, op)

	s.textInputRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.drawError(screen)
}

// drawError 在表单底部绘制错误提示，超出宽度自动换行
func (s *RangeScene) drawError(screen *ebiten.Image) {
	if s.errorMessage == "" {
		return
	}

	maxWidth := float64(config.WindowWidth) - 2*config.FormPaddingX
	lines := utils.WrapText(s.errorMessage, maxWidth, utils.FaceMeasure(s.uiFont))
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.FormPaddingX, config.ErrorBannerY+float64(i)*config.UIFontSize)
		op.ColorScale.ScaleWithColor(errorTextColor)
		text.Draw(screen, line, s.uiFont, op)
	}
}

// SaveOnExit 保存最后一组有效输入
//
// 表单当前参数通过校验时记录表单内容，否则保留上次成功发射时记录的值。
func (s *RangeScene) SaveOnExit() bool {
	params := s.controller.Prepare(s.Parameters())
	if err := params.Validate(); err != nil {
		log.Printf("[RangeScene] Form inputs not saved: %v", err)
	} else {
		s.settings.RecordLaunch(params)
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[RangeScene] Failed to save settings: %v", err)
		return false
	}
	return true
}
