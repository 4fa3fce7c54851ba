package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	flappyaudio "github.com/decker502/flappy/internal/audio"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/utils"
)

// PlayInput 一帧内收集到的玩家输入
type PlayInput struct {
	Flap        bool // 空格 / 上方向键 / W
	Pause       bool // P
	ToggleSound bool // M
	Click       bool // 鼠标左键或触摸
	X, Y        int  // 点击位置（世界坐标）
}

// PlayScene 游戏进行中的场景
//
// 每帧先处理输入，再推进一次模拟，最后根据结果播放音效。
type PlayScene struct {
	sim      *game.Simulation
	audio    *game.AudioManager
	settings *game.SettingsManager

	lastTick game.TickResult
}

// NewPlayScene 创建游戏场景
//
// 参数:
//   - sim: 模拟
//   - am: 音频管理器，可为 nil
//   - settings: 设置管理器，可为 nil
func NewPlayScene(sim *game.Simulation, am *game.AudioManager, settings *game.SettingsManager) *PlayScene {
	return &PlayScene{
		sim:      sim,
		audio:    am,
		settings: settings,
	}
}

// HandleInput 把输入转换为模拟操作
func (s *PlayScene) HandleInput(in PlayInput) {
	if in.ToggleSound && s.settings != nil {
		enabled := s.settings.ToggleSound()
		log.Printf("[PlayScene] Sound enabled=%v", enabled)
	}

	if in.Pause {
		s.sim.TogglePause()
	}

	if in.Click && s.sim.State() == game.StateEnded {
		w, h := s.worldSize()
		if config.InRestartButton(float64(in.X), float64(in.Y), w, h) {
			if err := s.sim.StartOrRestart(s.sim.Player()); err != nil {
				log.Printf("[PlayScene] Warning: restart failed: %v", err)
			}
		}
		return
	}

	if in.Flap || in.Click {
		if s.sim.Flap() && s.audio != nil {
			s.audio.PlaySound(flappyaudio.SoundFlap)
		}
	}
}

// Step 推进一帧并播放对应音效
func (s *PlayScene) Step() game.TickResult {
	s.lastTick = s.sim.Tick()
	if s.audio != nil {
		s.audio.OnTick(s.lastTick)
	}
	return s.lastTick
}

// Update 实现 game.Scene
func (s *PlayScene) Update(deltaTime float64) {
	s.HandleInput(readPlayInput())
	s.Step()
}

// Draw 实现 game.Scene
func (s *PlayScene) Draw(screen *ebiten.Image) {
	snap := s.sim.Snapshot()
	cfg := s.sim.Config()

	drawWorld(screen, snap, cfg)
	drawHUD(screen, snap)

	switch {
	case snap.State == game.StateEnded:
		drawGameOver(screen, snap, s.sim.Leaderboard(config.LeaderboardShown), cfg)
	case snap.Paused:
		drawPaused(screen, cfg)
	}
}

func (s *PlayScene) worldSize() (float64, float64) {
	cfg := s.sim.Config()
	return cfg.World.Width, cfg.World.Height
}

// readPlayInput 从 ebiten 读取本帧输入
func readPlayInput() PlayInput {
	in := PlayInput{
		Flap: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleSound: inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
	in.Click, in.X, in.Y = utils.IsJustTouchedOrClicked()
	return in
}
