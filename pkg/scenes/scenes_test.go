package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/storage"
)

func newTestSimulation(t *testing.T) *game.Simulation {
	t.Helper()
	cfg := config.DefaultGameConfig()
	scores := game.NewScoreManager(storage.NewMemoryStore(), cfg)
	sim, err := game.NewSimulation(cfg, scores, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSimulation() error: %v", err)
	}
	return sim
}

// 让小鸟撞到天花板以结束本局
func endRun(t *testing.T, scene *PlayScene) {
	t.Helper()
	for i := 0; i < 1000 && scene.sim.State() == game.StateRunning; i++ {
		scene.HandleInput(PlayInput{Flap: true})
		scene.Step()
	}
	if scene.sim.State() != game.StateEnded {
		t.Fatal("run should have ended")
	}
}

func TestNameEntryScene_Editing(t *testing.T) {
	sim := newTestSimulation(t)
	scene := NewNameEntryScene(sim, game.NewSceneManager(), nil, "")

	scene.InsertRunes([]rune("Al\x00ice"))
	if scene.Text() != "Alice" {
		t.Errorf("unprintable runes should be dropped, got %q", scene.Text())
	}

	scene.InsertRunes([]rune("ABCDEFGHIJ"))
	if got := len([]rune(scene.Text())); got != 10 {
		t.Errorf("input should be capped at 10 characters, got %d", got)
	}

	for i := 0; i < 20; i++ {
		scene.Backspace()
	}
	if scene.Text() != "" {
		t.Errorf("expected empty text after backspacing, got %q", scene.Text())
	}
}

func TestNameEntryScene_Submit(t *testing.T) {
	sim := newTestSimulation(t)
	sm := game.NewSceneManager()
	play := NewPlayScene(sim, nil, nil)
	scene := NewNameEntryScene(sim, sm, play, "")
	sm.SwitchTo(scene)

	scene.InsertRunes([]rune("   "))
	if scene.Submit() {
		t.Fatal("blank name should be rejected")
	}
	if scene.Message() == "" {
		t.Error("rejected name should show a message")
	}
	if sm.GetCurrentScene() != scene {
		t.Error("scene should not change on rejected name")
	}
	if sim.State() != game.StateNotStarted {
		t.Errorf("simulation should not start, got %s", sim.State())
	}

	scene.InsertRunes([]rune("Bob"))
	if !scene.Submit() {
		t.Fatalf("valid name rejected: %s", scene.Message())
	}
	if sm.GetCurrentScene() != play {
		t.Error("should switch to play scene")
	}
	if sim.State() != game.StateRunning || sim.Player() != "Bob" {
		t.Errorf("expected running as Bob, got %s/%q", sim.State(), sim.Player())
	}
}

func TestNameEntryScene_Prefill(t *testing.T) {
	scene := NewNameEntryScene(newTestSimulation(t), game.NewSceneManager(), nil, "Carol")
	if scene.Text() != "Carol" {
		t.Errorf("expected prefilled name, got %q", scene.Text())
	}
}

func TestPlayScene_PauseFreezes(t *testing.T) {
	sim := newTestSimulation(t)
	if err := sim.StartOrRestart("Alice"); err != nil {
		t.Fatal(err)
	}
	scene := NewPlayScene(sim, nil, nil)

	scene.HandleInput(PlayInput{Pause: true})
	before := sim.Snapshot()
	if res := scene.Step(); res.Advanced {
		t.Error("paused simulation should not advance")
	}
	if sim.Snapshot().Tick != before.Tick {
		t.Error("tick changed while paused")
	}

	scene.HandleInput(PlayInput{Pause: true})
	if res := scene.Step(); !res.Advanced {
		t.Error("resumed simulation should advance")
	}
}

func TestPlayScene_RestartButton(t *testing.T) {
	sim := newTestSimulation(t)
	if err := sim.StartOrRestart("Alice"); err != nil {
		t.Fatal(err)
	}
	scene := NewPlayScene(sim, nil, nil)
	endRun(t, scene)

	cfg := sim.Config()
	bx, by, bw, bh := config.RestartButtonBounds(cfg.World.Width, cfg.World.Height)

	// 按钮外的点击不会重新开始
	scene.HandleInput(PlayInput{Click: true, X: 1, Y: 1})
	if sim.State() != game.StateEnded {
		t.Fatalf("click outside button should not restart, got %s", sim.State())
	}

	scene.HandleInput(PlayInput{Click: true, X: int(bx + bw/2), Y: int(by + bh/2)})
	if sim.State() != game.StateRunning {
		t.Fatalf("click on button should restart, got %s", sim.State())
	}
	if sim.Score() != 0 {
		t.Errorf("restart should reset score, got %d", sim.Score())
	}
}

func TestPlayScene_FlapRestartsAfterEnd(t *testing.T) {
	sim := newTestSimulation(t)
	if err := sim.StartOrRestart("Alice"); err != nil {
		t.Fatal(err)
	}
	scene := NewPlayScene(sim, nil, nil)
	endRun(t, scene)

	scene.HandleInput(PlayInput{Flap: true})
	if sim.State() != game.StateRunning {
		t.Errorf("flap after game over should restart, got %s", sim.State())
	}
}

func TestPlayScene_ToggleSound(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	scene := NewPlayScene(newTestSimulation(t), game.NewAudioManager(nil, settings), settings)

	scene.HandleInput(PlayInput{ToggleSound: true})
	if settings.GetSettings().SoundEnabled {
		t.Error("sound should be disabled after toggle")
	}
}
