// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/embedded"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/scenes"
	"github.com/gonewx/snake/pkg/utils"
)

// DefaultAppName gdata 存档目录名
const DefaultAppName = "gonewx_snake"

// embeddedConfigPath 内置默认配置在嵌入文件系统中的路径
const embeddedConfigPath = "data/config.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// AppName gdata 存档目录名，为空时使用 DefaultAppName
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.Session
	state        *game.GameState
	gameConfig   *config.GameConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	state := game.NewGameState(appName)

	audioContext := audio.NewContext(game.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, state.Settings)
	log.Printf("[App] AudioManager initialized")

	session, err := game.NewSession(gameConfig, utils.NewRandomSource(cfg.Seed), state.Scores)
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}
	session.AddListener(audioManager)

	sceneManager := game.NewSceneManager()
	scenes.RegisterAll(&scenes.Context{
		Session: session,
		Scenes:  sceneManager,
		State:   state,
		Audio:   audioManager,
	})

	return &App{
		sceneManager: sceneManager,
		session:      session,
		state:        state,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadGameConfig 加载游戏配置
//
// 优先级：指定文件 > 内置 data/config.yaml > 代码默认值
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(embeddedConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) || errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] 未嵌入配置，使用默认值")
		return config.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存到设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.state.Settings.SetFullscreen(fullscreen)
	if err := a.state.Settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save fullscreen setting: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，缩放使用线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// WindowTitle 返回配置中的窗口标题
func (a *App) WindowTitle() string {
	return a.gameConfig.WindowTitle
}

// StartFullscreen 返回设置中是否以全屏启动
func (a *App) StartFullscreen() bool {
	return a.state.Settings.GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
