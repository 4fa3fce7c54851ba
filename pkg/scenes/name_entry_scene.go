package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/flappy/pkg/game"
)

// NameEntryScene 输入玩家名的场景
//
// 玩家名未知（首次启动且要求手动输入）时显示。
// 按 Enter 提交，名字合法则开始第一局并切换到游戏场景。
type NameEntryScene struct {
	sim          *game.Simulation
	sceneManager *game.SceneManager
	next         game.Scene

	buffer  []rune
	maxLen  int
	message string
	elapsed float64
}

// NewNameEntryScene 创建输入玩家名场景
//
// 参数:
//   - sim: 模拟
//   - sm: 场景管理器，提交成功后切换到 next
//   - next: 游戏场景
//   - prefill: 输入框初始内容（可为空）
func NewNameEntryScene(sim *game.Simulation, sm *game.SceneManager, next game.Scene, prefill string) *NameEntryScene {
	s := &NameEntryScene{
		sim:          sim,
		sceneManager: sm,
		next:         next,
		maxLen:       sim.Config().Player.MaxNameLength,
	}
	s.InsertRunes([]rune(prefill))
	return s
}

// Text 返回当前输入内容
func (s *NameEntryScene) Text() string {
	return string(s.buffer)
}

// Message 返回最近一次提交失败的提示
func (s *NameEntryScene) Message() string {
	return s.message
}

// InsertRunes 追加字符，忽略不可打印字符，超过最大长度的部分被丢弃
func (s *NameEntryScene) InsertRunes(runes []rune) {
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			continue
		}
		if len(s.buffer) >= s.maxLen {
			return
		}
		s.buffer = append(s.buffer, r)
	}
}

// Backspace 删除最后一个字符
func (s *NameEntryScene) Backspace() {
	if len(s.buffer) > 0 {
		s.buffer = s.buffer[:len(s.buffer)-1]
	}
}

// Submit 用当前输入开始游戏
//
// 返回:
//   - bool: 名字合法并已切换到游戏场景
func (s *NameEntryScene) Submit() bool {
	if err := s.sim.StartOrRestart(string(s.buffer)); err != nil {
		if errors.Is(err, game.ErrInvalidPlayerName) {
			s.message = fmt.Sprintf("Name must be 1-%d characters", s.maxLen)
		} else {
			s.message = err.Error()
		}
		log.Printf("[NameEntryScene] Rejected name %q: %v", string(s.buffer), err)
		return false
	}

	s.message = ""
	s.sceneManager.SwitchTo(s.next)
	return true
}

// Update 读取键盘输入
func (s *NameEntryScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	s.InsertRunes(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.Submit()
	}
}

// Draw 绘制输入框
func (s *NameEntryScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	ebitenutil.DebugPrintAt(screen, "FLAPPY", int(w/2)-18, int(h/3))
	ebitenutil.DebugPrintAt(screen, "Enter your name:", int(w/2)-48, int(h/3)+40)

	boxX, boxY, boxW, boxH := w/2-80, h/3+60, 160.0, 24.0
	fillRect(screen, boxX, boxY, boxW, boxH, color.RGBA{R: 255, G: 255, B: 255, A: 200})

	text := string(s.buffer)
	// 光标每半秒闪烁一次
	if int(s.elapsed*2)%2 == 0 {
		text += "_"
	}
	ebitenutil.DebugPrintAt(screen, text, int(boxX)+6, int(boxY)+4)

	if s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, int(boxX)-10, int(boxY+boxH)+10)
	}
	ebitenutil.DebugPrintAt(screen, "Press Enter to start", int(w/2)-60, int(boxY+boxH)+40)
}
