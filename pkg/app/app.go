// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/scenes"
	"github.com/decker502/flappy/pkg/storage"
	"github.com/decker502/flappy/pkg/utils"
)

// audioSampleRate ebiten 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Player 玩家名，为空时使用上次的名字或弹出输入框
	Player string
	// ConfigPath 游戏配置文件路径，为空时使用内置默认配置
	ConfigPath string
	// Store 存储后端（gdata / file / memory），为空时使用 gdata
	Store string
	// StorePath gdata 的应用名或文件存储的路径
	StorePath string
	// Seed 障碍物随机种子，0 表示使用当前时间
	Seed int64
	// DisableAudio 不创建音频上下文
	DisableAudio bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	sceneManager *game.SceneManager
	simulation   *game.Simulation
	settings     *game.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg := config.DefaultGameConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadGameConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		gameCfg = loaded
	}

	store := openStore(cfg)

	var gdataManager *gdata.Manager
	if gs, ok := store.(*storage.GdataStore); ok {
		gdataManager = gs.Manager()
	}
	settings := game.NewSettingsManager(gdataManager)

	var audioContext *audio.Context
	if !cfg.DisableAudio {
		audioContext = audio.NewContext(audioSampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settings)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized (enabled=%v)", audioManager.Enabled())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Obstacle seed: %d", seed)

	scores := game.NewScoreManager(store, gameCfg)
	sim, err := game.NewSimulation(gameCfg, scores, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("模拟初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	playScene := scenes.NewPlayScene(sim, audioManager, settings)

	// 移动端没有实体键盘，直接使用默认名
	playerCfg := gameCfg.Player
	if utils.IsMobile() {
		playerCfg.RequireName = false
	}

	remembered := scores.LastPlayer()
	if name := game.ResolvePlayerName(cfg.Player, remembered, playerCfg); name != "" {
		if err := sim.StartOrRestart(name); err != nil {
			return nil, fmt.Errorf("无法开始游戏: %w", err)
		}
		sceneManager.SwitchTo(playScene)
	} else {
		log.Printf("[App] No player name, asking for one")
		sceneManager.SwitchTo(scenes.NewNameEntryScene(sim, sceneManager, playScene, remembered))
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		cfg:          gameCfg,
		sceneManager: sceneManager,
		simulation:   sim,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// openStore 打开存储后端，失败时降级为不持久化的存储
func openStore(cfg Config) storage.KVStore {
	kind := cfg.Store
	if kind == "" {
		kind = storage.KindGdata
	}

	store, err := storage.Open(kind, cfg.StorePath)
	if err != nil {
		log.Printf("[App] Warning: failed to open %s store: %v (scores will not persist)", kind, err)
		return storage.NewGdataStore(nil)
	}
	return store
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），每次推进一帧模拟
func (a *App) Update() error {
	// F11 切换全屏并记住选择
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，即世界尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.World.Width), int(a.cfg.World.Height)
}

// Simulation 返回模拟（用于调试与测试）
func (a *App) Simulation() *game.Simulation {
	return a.simulation
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
