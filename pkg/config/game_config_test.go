package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 内置默认值
	if cfg.World.Width != 360 || cfg.World.Height != 640 {
		t.Errorf("expected world 360x640, got %.0fx%.0f", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Bird.Gravity != 0.6 {
		t.Errorf("expected gravity 0.6, got %f", cfg.Bird.Gravity)
	}
	if cfg.Bird.Lift != -10 {
		t.Errorf("expected lift -10, got %f", cfg.Bird.Lift)
	}
	if cfg.Obstacles.Interval != 100 {
		t.Errorf("expected interval 100, got %d", cfg.Obstacles.Interval)
	}
	if cfg.Obstacles.GapSize != 150 {
		t.Errorf("expected gap 150, got %f", cfg.Obstacles.GapSize)
	}
	if cfg.Scoring.Policy != ScorePolicyTicks || cfg.Scoring.TicksPerPoint != 15 {
		t.Errorf("expected ticks/15 scoring, got %s/%d", cfg.Scoring.Policy, cfg.Scoring.TicksPerPoint)
	}
	if cfg.Leaderboard.Mode != LeaderboardBestPerPlayer || cfg.Leaderboard.Capacity != 5 {
		t.Errorf("unexpected leaderboard defaults: %+v", cfg.Leaderboard)
	}
	if cfg.Player.HighscoreSuffix != "_highscore" {
		t.Errorf("expected _highscore suffix, got %q", cfg.Player.HighscoreSuffix)
	}
}

// 每次调用返回独立副本，修改不影响后续调用
func TestDefaultGameConfig_Independent(t *testing.T) {
	a := DefaultGameConfig()
	a.World.Width = 1

	b := DefaultGameConfig()
	if b.World.Width != 360 {
		t.Errorf("default config was mutated through a previous copy: %f", b.World.Width)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
obstacles:
  interval: 90
scoring:
  policy: passed
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Obstacles.Interval != 90 {
					t.Errorf("expected interval 90, got %d", cfg.Obstacles.Interval)
				}
				if cfg.Obstacles.Speed != 2.5 {
					t.Errorf("expected default speed 2.5, got %f", cfg.Obstacles.Speed)
				}
				if cfg.Scoring.Policy != ScorePolicyPassed {
					t.Errorf("expected passed policy, got %s", cfg.Scoring.Policy)
				}
				if cfg.World.Height != 640 {
					t.Errorf("expected default height 640, got %f", cfg.World.Height)
				}
			},
		},
		{
			name: "top runs leaderboard",
			yamlContent: `
leaderboard:
  mode: top-runs
  capacity: 3
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Leaderboard.Mode != LeaderboardTopRuns {
					t.Errorf("expected top-runs, got %s", cfg.Leaderboard.Mode)
				}
				if cfg.Leaderboard.Capacity != 3 {
					t.Errorf("expected capacity 3, got %d", cfg.Leaderboard.Capacity)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "world: [1, 2",
			wantErr:     true,
			errContains: "failed to parse game config",
		},
		{
			name: "gap does not fit",
			yamlContent: `
obstacles:
  maxGapTop: 600
`,
			wantErr:     true,
			errContains: "gap does not fit world",
		},
		{
			name: "inverted gap range",
			yamlContent: `
obstacles:
  minGapTop: 200
  maxGapTop: 100
`,
			wantErr:     true,
			errContains: "gap top range invalid",
		},
		{
			name: "zero interval",
			yamlContent: `
obstacles:
  interval: 0
`,
			wantErr:     true,
			errContains: "obstacle interval must be positive",
		},
		{
			name: "unknown policy",
			yamlContent: `
scoring:
  policy: coins
`,
			wantErr:     true,
			errContains: "unknown scoring policy",
		},
		{
			name: "unknown leaderboard mode",
			yamlContent: `
leaderboard:
  mode: weekly
`,
			wantErr:     true,
			errContains: "unknown leaderboard mode",
		},
		{
			name: "zero ticks per point",
			yamlContent: `
scoring:
  ticksPerPoint: 0
`,
			wantErr:     true,
			errContains: "ticksPerPoint must be positive",
		},
		{
			name: "negative world",
			yamlContent: `
world:
  width: -1
`,
			wantErr:     true,
			errContains: "world size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("bird:\n  gravity: 0.5\n"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bird.Gravity != 0.5 {
		t.Errorf("expected gravity 0.5, got %f", cfg.Bird.Gravity)
	}
}

func TestLoadGameConfig_FileNotFound(t *testing.T) {
	_, err := LoadGameConfig("/nonexistent/path/flappy.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read game config") {
		t.Errorf("unexpected error: %v", err)
	}
}
