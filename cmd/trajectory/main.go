// trajectory 无界面地运行一次抛体模拟并输出射程和轨迹
//
// 用法:
//
//	go run ./cmd/trajectory -speed 50 -angle 45
//	go run ./cmd/trajectory -speed 30 -angle 60 -size 80 -step 0.5 -format yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
)

func main() {
	speed := flag.Float64("speed", 50, "发射速度")
	angle := flag.Float64("angle", 45, "发射角（度）")
	size := flag.Float64("size", 0, "炮管长度（0 = 配置中的默认值）")
	configPath := flag.String("config", "", "模拟配置文件路径（默认使用内置默认配置）")
	format := flag.String("format", "text", "输出格式: text 或 yaml")
	step := flag.Float64("step", 0, "闭式位置采样间隔（秒），0 表示不输出采样表")
	fps := flag.Int("fps", 60, "模拟帧率")
	lenient := flag.Bool("lenient", false, "关闭参数校验，退化输入按数值规则运行")
	verbose := flag.Bool("verbose", false, "显示详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := config.LoadSimulationConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *lenient {
		cfg.StrictValidation = false
	}
	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "错误: fps 必须为正数，当前 %d\n", *fps)
		os.Exit(1)
	}

	params := ballistics.Parameters{Speed: *speed, AngleDegrees: *angle, BarrelLength: *size}
	report, err := Simulate(cfg, params, time.Second/time.Duration(*fps), time.Duration(*step*float64(time.Second)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "text":
		err = WriteText(os.Stdout, report)
	case "yaml":
		err = WriteYAML(os.Stdout, report)
	default:
		err = fmt.Errorf("unknown format %q (want text or yaml)", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
