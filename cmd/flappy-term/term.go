package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	flappyaudio "github.com/decker502/flappy/internal/audio"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
)

// action 按键对应的操作
type action int

const (
	actionNone action = iota
	actionFlap
	actionPause
	actionRestart
	actionToggleSound
	actionQuit
)

var (
	styleSky  = tcell.StyleDefault.Background(tcell.ColorDarkCyan)
	stylePipe = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorDarkGreen)
	styleBird = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorRed)
	styleText = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHigh = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
)

// keyAction 把按键映射为操作
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp, tcell.KeyEnter:
		return actionFlap
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'k':
			return actionFlap
		case 'p', 'P':
			return actionPause
		case 'r', 'R':
			return actionRestart
		case 'm', 'M':
			return actionToggleSound
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// terminal 终端前端：一个 ~60Hz 的帧循环加一个读取事件的 goroutine
type terminal struct {
	screen tcell.Screen
	sim    *game.Simulation
	sound  *soundPlayer
}

func newTerminal(sim *game.Simulation, sound *soundPlayer) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &terminal{screen: screen, sim: sim, sound: sound}, nil
}

func (t *terminal) Close() {
	t.screen.Fini()
}

// Run 运行帧循环直到玩家退出
func (t *terminal) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen 已关闭
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			t.step()
			t.draw()
		}
	}
}

// handleEvent 处理一个事件，返回 false 表示退出
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.apply(keyAction(ev))
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// apply 执行操作，返回 false 表示退出
func (t *terminal) apply(a action) bool {
	switch a {
	case actionQuit:
		return false
	case actionFlap:
		if t.sim.Flap() {
			t.sound.Play(flappyaudio.SoundFlap)
		}
	case actionPause:
		t.sim.TogglePause()
	case actionRestart:
		if err := t.sim.StartOrRestart(t.sim.Player()); err != nil {
			log.Printf("[Term] Warning: restart failed: %v", err)
		}
	case actionToggleSound:
		log.Printf("[Term] Sound enabled=%v", t.sound.Toggle())
	}
	return true
}

func (t *terminal) step() {
	res := t.sim.Tick()
	if !res.Ended {
		return
	}
	if res.Run != nil && res.Run.NewHighScore {
		t.sound.Play(flappyaudio.SoundHighscore)
	} else {
		t.sound.Play(flappyaudio.SoundHit)
	}
}

func (t *terminal) draw() {
	snap := t.sim.Snapshot()
	cfg := t.sim.Config()

	cols, rows := t.screen.Size()
	vp := newViewport(cfg.World.Width, cfg.World.Height, cols, rows)

	t.screen.Clear()
	t.fill(0, 0, cols, rows, ' ', styleSky)

	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		c0, r0, c1, r1 := vp.cells(o.UpperRect())
		t.fill(c0, r0, c1, r1, '▒', stylePipe)
		c0, r0, c1, r1 = vp.cells(o.LowerRect(cfg.World.Height))
		t.fill(c0, r0, c1, r1, '▒', stylePipe)
	}

	c0, r0, c1, r1 := vp.cells(snap.Bird.Bounds())
	t.fill(c0, r0, c1, r1, ' ', styleBird)
	if c1 > c0 && r1 > r0 {
		wing := []rune{'^', '-', 'v'}[snap.Bird.Frame%3]
		t.screen.SetContent(c0, r0, wing, nil, styleBird)
	}

	t.text(0, 0, fmt.Sprintf(" Score: %d  Highscore: %d  %s ", snap.Score, snap.Highscore, snap.Player), styleText)

	switch {
	case snap.State == game.StateEnded:
		t.drawGameOver(snap, cols, rows)
	case snap.Paused:
		t.center(rows/2, " PAUSED - press p to resume ", styleText)
	}

	t.screen.Show()
}

func (t *terminal) drawGameOver(snap game.Snapshot, cols, rows int) {
	lines := []string{" GAME OVER ", fmt.Sprintf(" Score: %d ", snap.Score)}
	if snap.LastRun != nil && snap.LastRun.NewHighScore {
		lines = append(lines, " NEW HIGHSCORE! ")
	}
	lines = append(lines, "", " Leaderboard ")
	for i, e := range t.sim.Leaderboard(config.LeaderboardShown) {
		lines = append(lines, fmt.Sprintf(" %d. %-10s %5d ", i+1, e.Name, e.Score))
	}
	lines = append(lines, "", " space / r: restart   esc: quit ")

	y := rows/2 - len(lines)/2
	for i, line := range lines {
		style := styleText
		if i == 2 && snap.LastRun != nil && snap.LastRun.NewHighScore {
			style = styleHigh
		}
		t.center(y+i, line, style)
	}
}

func (t *terminal) fill(c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *terminal) center(y int, s string, style tcell.Style) {
	cols, _ := t.screen.Size()
	t.text((cols-len([]rune(s)))/2, y, s, style)
}
