package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
)

var (
	skyColor     = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor    = color.RGBA{R: 83, G: 171, B: 64, A: 255}
	pipeEdge     = color.RGBA{R: 55, G: 120, B: 42, A: 255}
	birdColor    = color.RGBA{R: 250, G: 208, B: 44, A: 255}
	wingColor    = color.RGBA{R: 230, G: 120, B: 30, A: 255}
	overlayColor = color.RGBA{A: 160}
	buttonColor  = color.RGBA{R: 230, G: 100, B: 40, A: 255}
)

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawWorld 绘制背景、管道与小鸟
func drawWorld(screen *ebiten.Image, snap game.Snapshot, cfg *config.GameConfig) {
	screen.Fill(skyColor)

	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		upper := o.UpperRect()
		lower := o.LowerRect(cfg.World.Height)
		fillRect(screen, upper.X, upper.Y, upper.W, upper.H, pipeColor)
		fillRect(screen, lower.X, lower.Y, lower.W, lower.H, pipeColor)
		// 管口
		fillRect(screen, upper.X-3, upper.Bottom()-12, upper.W+6, 12, pipeEdge)
		fillRect(screen, lower.X-3, lower.Y, lower.W+6, 12, pipeEdge)
	}

	b := snap.Bird.Bounds()
	fillRect(screen, b.X, b.Y, b.W, b.H, birdColor)

	// 翅膀按动画帧上下摆动
	frames := cfg.Bird.AnimFrames
	wingH := b.H / 3
	offset := 0.0
	if frames > 1 {
		offset = float64(snap.Bird.Frame) * (b.H - wingH) / float64(frames-1)
	}
	fillRect(screen, b.X+4, b.Y+offset, b.W/3, wingH, wingColor)
}

// drawHUD 绘制分数与最高分
func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Highscore: %d", snap.Highscore), 10, 26)
	if snap.Player != "" {
		ebitenutil.DebugPrintAt(screen, snap.Player, 10, 42)
	}
}

// drawGameOver 绘制结束画面：本局结果、排行榜、重新开始按钮
func drawGameOver(screen *ebiten.Image, snap game.Snapshot, top []game.Entry, cfg *config.GameConfig) {
	w, h := cfg.World.Width, cfg.World.Height
	fillRect(screen, 0, 0, w, h, overlayColor)

	cx := int(w / 2)
	y := int(h/2) - 170
	ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, y)
	y += 24
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), cx-30, y)
	if snap.LastRun != nil && snap.LastRun.NewHighScore {
		y += 16
		ebitenutil.DebugPrintAt(screen, "NEW HIGHSCORE!", cx-42, y)
	}

	y += 28
	ebitenutil.DebugPrintAt(screen, "Leaderboard", cx-33, y)
	for i, e := range top {
		y += 16
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d. %-10s %5d", i+1, e.Name, e.Score), cx-60, y)
	}

	bx, by, bw, bh := config.RestartButtonBounds(w, h)
	fillRect(screen, bx, by, bw, bh, buttonColor)
	ebitenutil.DebugPrintAt(screen, "Restart", int(bx+bw/2)-21, int(by+bh/2)-8)
}

// drawPaused 绘制暂停提示
func drawPaused(screen *ebiten.Image, cfg *config.GameConfig) {
	w, h := cfg.World.Width, cfg.World.Height
	fillRect(screen, 0, 0, w, h, overlayColor)
	ebitenutil.DebugPrintAt(screen, "PAUSED", int(w/2)-18, int(h/2)-8)
	ebitenutil.DebugPrintAt(screen, "Press P to resume", int(w/2)-51, int(h/2)+12)
}
