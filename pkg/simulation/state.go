// Package simulation 驱动一次抛体运行的逐帧动画
//
// 一次运行由 Controller.Start 启动，之后每个宿主帧回调调用一次纯函数 Advance：
//
//	(RunContext, RunState, 时间戳) -> (新 RunState, 绘图命令列表)
//
// Advance 不接触真实绘图表面，所有帧都以 render.DrawList 的形式交给 Presenter。
// 每次运行有唯一的 RunID，新运行会使旧运行的待执行回调失效。
package simulation

import (
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/render"
)

// Phase 运行阶段
type Phase int

const (
	// PhaseIdle 尚未启动
	PhaseIdle Phase = iota
	// PhaseRunning 正在逐帧推进
	PhaseRunning
	// PhaseLanded 抛体首次到达或穿过落地平面（终态）
	PhaseLanded
	// PhaseTimedOut 达到最大更新次数仍未落地（终态）
	PhaseTimedOut
	// PhaseCancelled 被取消或被新的运行取代（终态）
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseLanded:
		return "Landed"
	case PhaseTimedOut:
		return "TimedOut"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Terminal 是否为终态
func (p Phase) Terminal() bool {
	return p == PhaseLanded || p == PhaseTimedOut || p == PhaseCancelled
}

// RunID 运行标识，从 1 开始递增，0 表示没有活动运行
type RunID uint64

// RunContext 一次运行中不变的数据
//
// 在运行开始时计算一次，之后每帧只读。
type RunContext struct {
	ID         RunID
	Params     ballistics.Parameters
	Geometry   ballistics.BarrelGeometry
	Trajectory ballistics.Trajectory
	Gravity    float64

	// SampleInterval 每隔多少次更新采样一个轨迹点
	SampleInterval int
	// TrailCapacity 轨迹容量（0 = 无上限）
	TrailCapacity int
	// MaxFrames 最大更新次数（0 = 不限制）
	MaxFrames int

	Renderer *render.Renderer
}

// NewRunContext 根据参数和配置计算运行上下文
//
// params 应已填充默认值；cfg 为 nil 时使用默认配置。
func NewRunContext(id RunID, params ballistics.Parameters, cfg *config.SimulationConfig, renderer *render.Renderer) RunContext {
	if cfg == nil {
		cfg = config.DefaultSimulationConfig()
	}
	if renderer == nil {
		renderer = render.NewRenderer(render.DefaultStyle())
	}

	geom := ballistics.ComputeBarrelGeometry(params.BarrelLength, params.AngleDegrees)
	interval := cfg.TrailSampleInterval
	if interval < 1 {
		interval = 1
	}

	return RunContext{
		ID:             id,
		Params:         params,
		Geometry:       geom,
		Trajectory:     ballistics.NewTrajectory(params, geom, cfg.Gravity),
		Gravity:        cfg.Gravity,
		SampleInterval: interval,
		TrailCapacity:  cfg.TrailCapacity,
		MaxFrames:      cfg.MaxFrames,
		Renderer:       renderer,
	}
}

// RunState 一次运行的可变状态
//
// RunState 是值类型：Advance 接收旧值并返回新值，旧值保持不变。
type RunState struct {
	Phase Phase

	// Baseline 第 0 帧记录的基准时间戳
	Baseline    time.Duration
	HasBaseline bool
	// Elapsed 最近一次更新距基准的累计时间
	Elapsed time.Duration

	// FrameCount 收到的帧回调次数（含第 0 帧）
	FrameCount int
	// UpdateCount 实际计算位置的次数（不含第 0 帧）
	UpdateCount int

	Trail ballistics.Trail
	// Position 最近一次更新的抛体物理坐标，第一次更新前为炮口
	Position ballistics.Point
}

// NewRunState 创建运行开始时的状态：空轨迹、抛体位于炮口
func NewRunState(ctx RunContext) RunState {
	return RunState{
		Phase:    PhaseRunning,
		Trail:    ballistics.NewTrail(ctx.TrailCapacity),
		Position: ctx.Geometry.Fire,
	}
}

// Position 返回发射后经过 elapsed 时抛体的物理坐标
func (c RunContext) Position(elapsed time.Duration) ballistics.Point {
	return ballistics.PositionAt(c.Params, c.Geometry, c.Gravity, elapsed.Seconds())
}
