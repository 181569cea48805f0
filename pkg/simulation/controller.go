package simulation

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/render"
)

var (
	// ErrStaleRun 运行已被新的运行取代
	ErrStaleRun = errors.New("run superseded by a newer run")
	// ErrRunCancelled 运行被显式取消
	ErrRunCancelled = errors.New("run cancelled")
)

// Presenter 接收每一帧生成的绘图命令
type Presenter interface {
	Present(dl *render.DrawList)
}

// PresenterFunc 函数形式的 Presenter
type PresenterFunc func(dl *render.DrawList)

// Present 调用 f(dl)
func (f PresenterFunc) Present(dl *render.DrawList) {
	f(dl)
}

// Controller 管理抛体运行的生命周期
//
// 同一时刻只有一个活动运行：Start 分配新的 RunID 并使上一个运行失效，
// 旧运行已登记的帧回调在执行时发现 ID 不匹配，以 Cancelled 结束且不再绘制。
//
// Controller 不是并发安全的，应只在宿主帧循环所在的 goroutine 中使用。
type Controller struct {
	config   *config.SimulationConfig
	renderer *render.Renderer

	nextID  RunID
	active  RunID
	current *RunHandle
}

// NewController 创建控制器
//
// 参数:
//   - cfg: 模拟配置，nil 时使用默认配置
//   - renderer: 渲染器，nil 时根据 cfg.Style 创建（颜色非法时回退到默认样式）
func NewController(cfg *config.SimulationConfig, renderer *render.Renderer) *Controller {
	if cfg == nil {
		cfg = config.DefaultSimulationConfig()
	}
	if renderer == nil {
		style, err := render.NewStyle(cfg.Style)
		if err != nil {
			log.Printf("[Controller] Warning: invalid style (%v), using default style", err)
			style = render.DefaultStyle()
		}
		renderer = render.NewRenderer(style)
	}
	return &Controller{config: cfg, renderer: renderer}
}

// Config 返回控制器使用的配置
func (c *Controller) Config() *config.SimulationConfig {
	return c.config
}

// ActiveRun 返回当前活动运行的 ID（0 表示没有）
func (c *Controller) ActiveRun() RunID {
	return c.active
}

// Current 返回最近一次启动的运行句柄（可能已结束），没有时返回 nil
func (c *Controller) Current() *RunHandle {
	return c.current
}

// Prepare 填充默认值：炮管长度为 0/NaN 时使用配置的默认长度，表面尺寸为 0 时使用配置的表面尺寸
func (c *Controller) Prepare(params ballistics.Parameters) ballistics.Parameters {
	params = params.WithDefaultLength(c.config.DefaultBarrelLength)
	if params.SurfaceWidth == 0 {
		params.SurfaceWidth = float64(c.config.Surface.Width)
	}
	if params.SurfaceHeight == 0 {
		params.SurfaceHeight = float64(c.config.Surface.Height)
	}
	return params
}

// Preview 返回参数对应的炮管静止画面，不启动运行也不影响当前运行
//
// 用于发射前预览炮管角度；参数不做校验，退化输入按数值规则绘制。
func (c *Controller) Preview(params ballistics.Parameters) *render.DrawList {
	ctx := NewRunContext(0, c.Prepare(params), c.config, c.renderer)
	return InitialFrame(ctx)
}

// Start 启动一次新的运行
//
// 流程：校验配置、填充默认值、（严格模式下）校验参数、取代上一个运行、
// 计算几何和轨迹摘要、立即呈现炮管静止的画面，然后登记第一个帧回调。
//
// 参数:
//   - params: 模拟参数
//   - scheduler: 帧回调原语
//   - presenter: 接收每一帧绘图命令，可以为 nil
//
// 返回:
//   - *RunHandle: 运行句柄
//   - error: 配置不合法，或严格模式下参数不合法（包装 *ballistics.InvalidParameterError）时返回错误，
//     此时上一个运行不受影响
func (c *Controller) Start(params ballistics.Parameters, scheduler FrameScheduler, presenter Presenter) (*RunHandle, error) {
	if scheduler == nil {
		return nil, fmt.Errorf("start run: scheduler is nil")
	}

	if err := c.config.Validate(); err != nil {
		log.Printf("[Controller] Rejected launch: invalid config: %v", err)
		return nil, fmt.Errorf("start run: invalid config: %w", err)
	}

	params = c.Prepare(params)
	if c.config.StrictValidation {
		if err := params.Validate(); err != nil {
			log.Printf("[Controller] Rejected launch: %v", err)
			return nil, fmt.Errorf("start run: %w", err)
		}
	}

	if c.current != nil {
		c.current.finish(PhaseCancelled, ErrStaleRun)
	}

	c.nextID++
	id := c.nextID
	c.active = id

	ctx := NewRunContext(id, params, c.config, c.renderer)
	h := &RunHandle{
		controller: c,
		ctx:        ctx,
		state:      NewRunState(ctx),
		scheduler:  scheduler,
		presenter:  presenter,
		done:       make(chan struct{}),
	}
	c.current = h

	log.Printf("[Controller] Run %d started: speed=%.2f angle=%.2f length=%.2f range=%.2f flatRange=%.2f",
		id, params.Speed, params.AngleDegrees, params.BarrelLength, ctx.Trajectory.Range, ctx.Trajectory.FlatRange)
	if math.IsNaN(ctx.Trajectory.Range) {
		log.Printf("[Controller] Warning: run %d has a non-finite range", id)
	}

	h.present(InitialFrame(ctx))
	scheduler.RequestFrame(h.step)

	return h, nil
}

// CancelActive 取消当前活动运行（如果有）
func (c *Controller) CancelActive() {
	if c.current != nil {
		c.current.Cancel()
	}
}

// RunHandle 一次运行的句柄
type RunHandle struct {
	controller *Controller
	ctx        RunContext
	state      RunState
	scheduler  FrameScheduler
	presenter  Presenter

	err  error
	done chan struct{}
}

// ID 返回运行标识
func (h *RunHandle) ID() RunID {
	return h.ctx.ID
}

// Context 返回运行上下文（参数、几何、轨迹摘要）
func (h *RunHandle) Context() RunContext {
	return h.ctx
}

// State 返回当前运行状态的快照
func (h *RunHandle) State() RunState {
	return h.state
}

// Err 返回运行被取消的原因（ErrStaleRun 或 ErrRunCancelled），其余情况为 nil
func (h *RunHandle) Err() error {
	return h.err
}

// Done 返回在运行进入终态时关闭的 channel
func (h *RunHandle) Done() <-chan struct{} {
	return h.done
}

// Cancel 取消运行；已结束的运行不受影响
//
// 已登记的帧回调仍会被宿主调用，但不会再绘制或登记新回调。
func (h *RunHandle) Cancel() {
	if h.state.Phase.Terminal() {
		return
	}
	if h.controller.active == h.ctx.ID {
		h.controller.active = 0
	}
	h.finish(PhaseCancelled, ErrRunCancelled)
}

func (h *RunHandle) step(ts time.Duration) {
	if h.state.Phase.Terminal() {
		return
	}
	if h.controller.active != h.ctx.ID {
		h.finish(PhaseCancelled, ErrStaleRun)
		return
	}

	next, dl := Advance(h.ctx, h.state, ts)
	h.state = next
	if dl != nil {
		h.present(dl)
	}

	if next.Phase == PhaseRunning {
		h.scheduler.RequestFrame(h.step)
		return
	}
	h.finish(next.Phase, nil)
}

func (h *RunHandle) present(dl *render.DrawList) {
	if h.presenter != nil {
		h.presenter.Present(dl)
	}
}

// finish 进入终态并关闭 done，重复调用无效
func (h *RunHandle) finish(phase Phase, err error) {
	select {
	case <-h.done:
		return
	default:
	}

	h.state.Phase = phase
	h.err = err
	close(h.done)

	switch phase {
	case PhaseLanded:
		log.Printf("[Controller] Run %d landed after %d updates (%.2fs), trail=%d",
			h.ctx.ID, h.state.UpdateCount, h.state.Elapsed.Seconds(), h.state.Trail.Len())
	case PhaseTimedOut:
		log.Printf("[Controller] Run %d timed out after %d updates without landing", h.ctx.ID, h.state.UpdateCount)
	case PhaseCancelled:
		log.Printf("[Controller] Run %d cancelled: %v", h.ctx.ID, err)
	}
}
