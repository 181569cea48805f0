package main

import (
	"flag"
	"log"

	"github.com/decker502/projectile/pkg/app"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	defaults := app.DefaultConfig()

	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "模拟配置文件路径（默认使用内置 data/simulation.yaml）")
	speed := flag.Float64("speed", defaults.Speed, "初始发射速度（默认使用上次的输入）")
	angle := flag.Float64("angle", defaults.Angle, "初始发射角，单位度（默认使用上次的输入）")
	size := flag.Float64("size", defaults.Size, "初始炮管长度（默认使用上次的输入）")
	fire := flag.Bool("fire", false, "启动后立即发射")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Speed:      *speed,
		Angle:      *angle,
		Size:       *size,
		AutoFire:   *fire,
	}

	projectileApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(projectileApp); err != nil {
		log.Fatal(err)
	}
}
