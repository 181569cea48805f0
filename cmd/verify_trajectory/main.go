// Package main 提供轨迹动画验证工具
// 不带输入表单，直接用命令行参数运行一次动画，用于检查绘制效果
//
// 用法:
//
//	go run cmd/verify_trajectory/main.go -speed 50 -angle 45
//
// 功能:
//   - 启动后立即发射
//   - 空格键重新发射（取代正在进行的运行）
//   - 上/下方向键调整发射角 5°，Enter 以新角度发射
//   - ESC 退出
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/render"
	"github.com/decker502/projectile/pkg/render/canvas"
	"github.com/decker502/projectile/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	speed      = flag.Float64("speed", 50, "发射速度")
	angle      = flag.Float64("angle", 45, "发射角（度）")
	size       = flag.Float64("size", 0, "炮管长度（0 = 默认值）")
	configPath = flag.String("config", "", "模拟配置文件路径")
)

// VerifyGame 验证工具结构
type VerifyGame struct {
	config     *config.SimulationConfig
	controller *simulation.Controller
	frames     *simulation.FrameQueue
	clock      time.Duration

	canvas *canvas.Canvas
	latest *render.DrawList
	params ballistics.Parameters
	status string
}

// NewVerifyGame 创建验证工具
func NewVerifyGame(cfg *config.SimulationConfig, params ballistics.Parameters) (*VerifyGame, error) {
	fontSource, err := canvas.NewDefaultFontSource()
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}

	target := ebiten.NewImage(cfg.Surface.Width, cfg.Surface.Height)
	g := &VerifyGame{
		config:     cfg,
		controller: simulation.NewController(cfg, nil),
		frames:     simulation.NewFrameQueue(),
		canvas:     canvas.NewCanvas(target, fontSource, cfg.Style.LineWidth),
		params:     params,
	}
	g.fire()
	return g, nil
}

func (g *VerifyGame) fire() {
	h, err := g.controller.Start(g.params, g.frames, simulation.PresenterFunc(func(dl *render.DrawList) {
		g.latest = dl
	}))
	if err != nil {
		g.status = err.Error()
		log.Printf("发射失败: %v", err)
		return
	}
	g.status = ""
	log.Printf("运行 %d: range=%.2f flatRange=%.2f", h.ID(), h.Context().Trajectory.Range, h.Context().Trajectory.FlatRange)
}

// Update 更新逻辑
func (g *VerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.params.AngleDegrees += 5
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.params.AngleDegrees -= 5
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.fire()
	}

	g.clock += time.Second / time.Duration(ebiten.TPS())
	g.frames.Flush(g.clock)
	return nil
}

// Draw 绘制画面
func (g *VerifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.canvas.Execute(g.latest)
	screen.DrawImage(g.canvas.Target(), nil)

	info := fmt.Sprintf("speed=%.1f angle=%.1f  [Space] fire  [Up/Down] angle  [Esc] quit", g.params.Speed, g.params.AngleDegrees)
	if h := g.controller.Current(); h != nil {
		info += fmt.Sprintf("\nrun %d: %s", h.ID(), h.State().Phase)
	}
	if g.status != "" {
		info += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, info)
}

// Layout 设置窗口布局
func (g *VerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Surface.Width, g.config.Surface.Height
}

func main() {
	flag.Parse()

	cfg := config.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := config.LoadSimulationConfig(*configPath)
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
		cfg = loaded
	}

	params := ballistics.Parameters{Speed: *speed, AngleDegrees: *angle, BarrelLength: *size}
	verifyGame, err := NewVerifyGame(cfg, params)
	if err != nil {
		log.Fatalf("创建验证工具失败: %v", err)
	}

	ebiten.SetWindowSize(cfg.Surface.Width, cfg.Surface.Height)
	ebiten.SetWindowTitle("轨迹验证 - Trajectory Verify")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(verifyGame); err != nil {
		log.Fatalf("运行失败: %v", err)
	}
}
