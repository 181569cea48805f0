package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/render"
	"github.com/decker502/projectile/pkg/simulation"
	"gopkg.in/yaml.v3"
)

// Sample 某一时刻的抛体位置
type Sample struct {
	Time float64 `yaml:"t"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Report 一次无界面运行的结果
type Report struct {
	Parameters ballistics.Parameters `yaml:"parameters"`
	Muzzle     ballistics.Point      `yaml:"muzzle"`
	Trajectory ballistics.Trajectory `yaml:"trajectory"`

	Phase   string             `yaml:"phase"`
	Updates int                `yaml:"updates"`
	Frames  int                `yaml:"frames"`
	Elapsed float64            `yaml:"elapsed"`
	Landing ballistics.Point   `yaml:"landing"`
	Trail   []ballistics.Point `yaml:"trail"`
	Samples []Sample           `yaml:"samples,omitempty"`
}

// defaultFlushLimit MaxFrames 为 0（不限制）时无界面运行的帧数上限
const defaultFlushLimit = 60 * 60 * 10

// Simulate 以固定帧间隔无界面地执行一次完整运行
//
// 参数:
//   - cfg: 模拟配置，nil 时使用默认配置
//   - params: 发射参数（表面尺寸为 0 时使用配置值）
//   - frameStep: 帧间隔
//   - sampleStep: 闭式位置采样间隔，0 表示不采样
//
// 返回:
//   - error: 参数校验失败（严格模式）时返回错误
func Simulate(cfg *config.SimulationConfig, params ballistics.Parameters, frameStep, sampleStep time.Duration) (*Report, error) {
	controller := simulation.NewController(cfg, nil)
	cfg = controller.Config()
	queue := simulation.NewFrameQueue()

	frames := 0
	handle, err := controller.Start(params, queue, simulation.PresenterFunc(func(_ *render.DrawList) {
		frames++
	}))
	if err != nil {
		return nil, err
	}

	limit := cfg.MaxFrames + 1
	if cfg.MaxFrames == 0 {
		limit = defaultFlushLimit
	}
	queue.Drive(0, frameStep, limit)
	if !handle.State().Phase.Terminal() {
		handle.Cancel()
	}

	ctx := handle.Context()
	state := handle.State()
	report := &Report{
		Parameters: ctx.Params,
		Muzzle:     ctx.Geometry.Fire,
		Trajectory: ctx.Trajectory,
		Phase:      state.Phase.String(),
		Updates:    state.UpdateCount,
		Frames:     frames,
		Elapsed:    state.Elapsed.Seconds(),
		Landing:    state.Position,
		Trail:      state.Trail.Points(),
	}

	if sampleStep > 0 {
		for t := time.Duration(0); t <= state.Elapsed; t += sampleStep {
			p := ctx.Position(t)
			report.Samples = append(report.Samples, Sample{Time: t.Seconds(), X: p.X, Y: p.Y})
		}
	}

	return report, nil
}

// WriteText 以对齐的文本表格输出报告
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "speed\t%.2f\n", r.Parameters.Speed)
	fmt.Fprintf(tw, "angle\t%.2f°\n", r.Parameters.AngleDegrees)
	fmt.Fprintf(tw, "barrel length\t%.2f\n", r.Parameters.BarrelLength)
	fmt.Fprintf(tw, "muzzle\t(%.2f, %.2f)\n", r.Muzzle.X, r.Muzzle.Y)
	fmt.Fprintf(tw, "range\t%.2f\n", r.Trajectory.Range)
	fmt.Fprintf(tw, "flat range\t%.2f\n", r.Trajectory.FlatRange)
	fmt.Fprintf(tw, "flight time\t%.2fs\n", r.Trajectory.FlightTime)
	fmt.Fprintf(tw, "phase\t%s\n", r.Phase)
	fmt.Fprintf(tw, "updates\t%d (%.2fs)\n", r.Updates, r.Elapsed)
	fmt.Fprintf(tw, "landing\t(%.2f, %.2f)\n", r.Landing.X, r.Landing.Y)

	if len(r.Trail) > 0 {
		fmt.Fprintf(tw, "\ntrail\tx\ty\n")
		for i, p := range r.Trail {
			fmt.Fprintf(tw, "%d\t%.2f\t%.2f\n", i, p.X, p.Y)
		}
	}

	if len(r.Samples) > 0 {
		fmt.Fprintf(tw, "\nt\tx\ty\n")
		for _, s := range r.Samples {
			fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\n", s.Time, s.X, s.Y)
		}
	}

	return tw.Flush()
}

// WriteYAML 以 YAML 输出报告
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
