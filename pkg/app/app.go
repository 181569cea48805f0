// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/decker502/projectile/pkg/ballistics"
	"github.com/decker502/projectile/pkg/config"
	"github.com/decker502/projectile/pkg/game"
	"github.com/decker502/projectile/pkg/scenes"
	"github.com/decker502/projectile/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "projectile"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 模拟配置文件路径，为空则使用嵌入的 data/simulation.yaml
	ConfigPath string

	// Speed, Angle, Size 输入框初始值，NaN 表示使用上次保存的值
	Speed float64
	Angle float64
	Size  float64

	// AutoFire 启动后立即发射一次
	AutoFire bool
}

// DefaultConfig 返回不覆盖任何输入的默认启动配置
func DefaultConfig() Config {
	return Config{
		Speed: math.NaN(),
		Angle: math.NaN(),
		Size:  math.NaN(),
	}
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	simConfig, err := loadSimulationConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("模拟配置加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(openStorage())
	settings := settingsManager.GetSettings()
	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	initial := InitialParameters(settings, cfg)
	log.Printf("[App] Initial inputs: speed=%.2f angle=%.2f size=%.2f", initial.Speed, initial.AngleDegrees, initial.BarrelLength)

	rangeScene, err := scenes.NewRangeScene(simConfig, settingsManager, initial)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(rangeScene)

	if cfg.AutoFire {
		log.Printf("[App] AutoFire enabled")
		rangeScene.Fire()
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadSimulationConfig 从指定路径或嵌入资源加载模拟配置
func loadSimulationConfig(path string) (*config.SimulationConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载模拟配置文件: %s", path)
		return config.LoadSimulationConfig(path)
	}
	log.Printf("[Config] 加载嵌入模拟配置: %s", config.SimulationConfigPath)
	return config.LoadEmbeddedSimulationConfig()
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式，仅内存设置）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: failed to open gdata storage: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// InitialParameters 合并已保存的设置和命令行覆盖值
//
// cfg 中的 NaN 字段表示未指定，使用设置中的值。
func InitialParameters(settings *game.LaunchSettings, cfg Config) ballistics.Parameters {
	params := settings.Parameters()
	if !math.IsNaN(cfg.Speed) {
		params.Speed = cfg.Speed
	}
	if !math.IsNaN(cfg.Angle) {
		params.AngleDegrees = cfg.Angle
	}
	if !math.IsNaN(cfg.Size) {
		params.BarrelLength = cfg.Size
	}
	return params
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// 窗口关闭时保存输入
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveCurrent()
		return ebiten.Termination
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	a.settingsManager.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时以黑色填充 letterbox 区域
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, int(config.WindowHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
