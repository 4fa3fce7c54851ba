package systems

import (
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

func TestTickScorePolicy(t *testing.T) {
	p := TickScorePolicy{TicksPerPoint: 15}

	tests := []struct {
		tick int
		want int
	}{
		{0, 0},
		{14, 0},
		{15, 1},
		{29, 1},
		{30, 2},
		{151, 10},
	}

	for _, tt := range tests {
		if got := p.Score(tt.tick, nil, nil, 0); got != tt.want {
			t.Errorf("Score(%d) = %d, want %d", tt.tick, got, tt.want)
		}
	}
}

func TestPassScorePolicy(t *testing.T) {
	p := PassScorePolicy{}
	bird := newTestBird() // x = 50

	obstacles := []components.ObstacleComponent{
		{X: -10, Width: 50}, // 右沿 40 < 50，已越过
		{X: 0, Width: 50},   // 右沿 50，未越过
		{X: 200, Width: 50},
	}

	score := p.Score(0, bird, obstacles, 3)
	if score != 4 {
		t.Errorf("expected score 4, got %d", score)
	}
	if !obstacles[0].Passed || obstacles[1].Passed {
		t.Errorf("unexpected passed flags: %+v", obstacles)
	}

	// 同一管道不重复计分
	score = p.Score(1, bird, obstacles, score)
	if score != 4 {
		t.Errorf("expected score to stay 4, got %d", score)
	}

	obstacles[1].X = -1
	score = p.Score(2, bird, obstacles, score)
	if score != 5 {
		t.Errorf("expected score 5, got %d", score)
	}
}

func TestNewScorePolicy(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ScoringConfig
		wantErr bool
		check   func(*testing.T, ScorePolicy)
	}{
		{
			name: "ticks",
			cfg:  config.ScoringConfig{Policy: config.ScorePolicyTicks, TicksPerPoint: 15},
			check: func(t *testing.T, p ScorePolicy) {
				if _, ok := p.(TickScorePolicy); !ok {
					t.Errorf("expected TickScorePolicy, got %T", p)
				}
			},
		},
		{
			name: "passed",
			cfg:  config.ScoringConfig{Policy: config.ScorePolicyPassed},
			check: func(t *testing.T, p ScorePolicy) {
				if _, ok := p.(PassScorePolicy); !ok {
					t.Errorf("expected PassScorePolicy, got %T", p)
				}
			},
		},
		{name: "zero ticks", cfg: config.ScoringConfig{Policy: config.ScorePolicyTicks}, wantErr: true},
		{name: "unknown", cfg: config.ScoringConfig{Policy: "distance"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewScorePolicy(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewScorePolicy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}
