package components

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 20, Y: 20, W: 20, H: 20}, true},
		{"contained", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 10, H: 10}, false},
		{"left of", Rect{X: 0, Y: 10, W: 5, H: 10}, false},
		{"above", Rect{X: 10, Y: 0, W: 10, H: 5}, false},
		{"zero height", Rect{X: 15, Y: 15, W: 5, H: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// 对称性
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestObstacleGeometry(t *testing.T) {
	o := &ObstacleComponent{X: 100, Width: 50, GapTop: 200, GapSize: 150}

	if o.GapBottom() != 350 {
		t.Errorf("expected gap bottom 350, got %f", o.GapBottom())
	}
	if o.BottomHeight(640) != 290 {
		t.Errorf("expected bottom height 290, got %f", o.BottomHeight(640))
	}

	upper := o.UpperRect()
	if upper.Y != 0 || upper.H != 200 {
		t.Errorf("unexpected upper rect: %+v", upper)
	}
	lower := o.LowerRect(640)
	if lower.Y != 350 || lower.Bottom() != 640 {
		t.Errorf("unexpected lower rect: %+v", lower)
	}

	if o.OffScreen() {
		t.Error("obstacle at x=100 should be on screen")
	}
	o.X = -50
	if !o.OffScreen() {
		t.Error("obstacle with trailing edge at 0 should be off screen")
	}
	o.X = -49.5
	if o.OffScreen() {
		t.Error("obstacle with trailing edge at 0.5 should still be on screen")
	}
}
