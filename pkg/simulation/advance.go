package simulation

import (
	"time"

	"github.com/decker502/projectile/pkg/render"
)

// InitialFrame 运行开始时的画面：炮管静止，没有抛体和轨迹
func InitialFrame(ctx RunContext) *render.DrawList {
	return ctx.Renderer.Render(render.Frame{
		Width:      ctx.Params.SurfaceWidth,
		Height:     ctx.Params.SurfaceHeight,
		Geometry:   ctx.Geometry,
		Trajectory: ctx.Trajectory,
	})
}

// Advance 处理一次帧回调
//
// 第 0 帧只记录基准时间戳，不计算位置，也不产生画面。之后每帧：
//  1. 以基准为起点计算累计时间，求出抛体位置；
//  2. 用已有轨迹和当前位置渲染整帧（落地时附加射程标注）；
//  3. 每 SampleInterval 次更新把当前位置追加到轨迹；
//  4. y > 0 时保持 Running；否则（包括 y 为 NaN）进入 Landed。
//
// 达到 MaxFrames 仍未落地时进入 TimedOut。非 Running 状态原样返回，DrawList 为 nil。
func Advance(ctx RunContext, state RunState, ts time.Duration) (RunState, *render.DrawList) {
	if state.Phase != PhaseRunning {
		return state, nil
	}

	state.FrameCount++
	if !state.HasBaseline {
		state.Baseline = ts
		state.HasBaseline = true
		return state, nil
	}

	state.Elapsed = ts - state.Baseline
	state.UpdateCount++

	pos := ctx.Position(state.Elapsed)
	state.Position = pos
	landed := !(pos.Y > 0)

	dl := ctx.Renderer.Render(render.Frame{
		Width:      ctx.Params.SurfaceWidth,
		Height:     ctx.Params.SurfaceHeight,
		Geometry:   ctx.Geometry,
		Trajectory: ctx.Trajectory,
		Trail:      state.Trail,
		Projectile: &pos,
		Landed:     landed,
	})

	if state.UpdateCount%ctx.SampleInterval == 0 {
		state.Trail = state.Trail.Append(pos)
	}

	switch {
	case landed:
		state.Phase = PhaseLanded
	case ctx.MaxFrames > 0 && state.UpdateCount >= ctx.MaxFrames:
		state.Phase = PhaseTimedOut
	}

	return state, dl
}
