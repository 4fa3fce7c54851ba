package config

import "testing"

func TestRestartButtonBounds(t *testing.T) {
	x, y, w, h := RestartButtonBounds(GameWindowWidth, GameWindowHeight)
	if x != 120 || y != 380 || w != 120 || h != 40 {
		t.Errorf("RestartButtonBounds() = (%v, %v, %v, %v), want (120, 380, 120, 40)", x, y, w, h)
	}
}

func TestInRestartButton(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 180, 400, true},
		{"left edge excluded", 120, 400, false},
		{"just inside left", 121, 381, true},
		{"above", 180, 380, false},
		{"below", 180, 420, false},
		{"right outside", 241, 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRestartButton(tt.px, tt.py, 360, 640); got != tt.want {
				t.Errorf("InRestartButton(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
