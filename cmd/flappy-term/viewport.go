package main

import (
	"math"

	"github.com/decker502/flappy/pkg/components"
)

// viewport 把世界坐标映射到终端字符格
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(worldW, worldH float64, cols, rows int) viewport {
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// cells 返回矩形覆盖的字符格范围 [c0, c1) x [r0, r1)，已裁剪到屏幕内
// 非空矩形至少占一格
func (v viewport) cells(r components.Rect) (c0, r0, c1, r1 int) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0
	}
	c0, r0 = v.col(r.X), v.row(r.Y)
	c1 = int(math.Ceil(r.Right() * v.sx))
	r1 = int(math.Ceil(r.Bottom() * v.sy))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	c0 = clampInt(c0, 0, v.cols)
	c1 = clampInt(c1, 0, v.cols)
	r0 = clampInt(r0, 0, v.rows)
	r1 = clampInt(r1, 0, v.rows)
	return c0, r0, c1, r1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
