package components

// ObstacleComponent 一对上下管道
//
// 上管道占据 [0, GapTop]，下管道占据 [GapTop+GapSize, worldHeight]。
// 切片中的顺序即生成顺序，也是从左到右的屏幕顺序。
type ObstacleComponent struct {
	X       float64 // 左沿X坐标，每帧递减
	Width   float64 // 管道宽度
	GapTop  float64 // 空隙上沿
	GapSize float64 // 空隙高度
	Passed  bool    // 小鸟是否已经越过（用于按障碍计分）
}

// GapBottom 返回空隙下沿Y坐标
func (o *ObstacleComponent) GapBottom() float64 {
	return o.GapTop + o.GapSize
}

// BottomHeight 返回下管道的高度
func (o *ObstacleComponent) BottomHeight(worldHeight float64) float64 {
	return worldHeight - o.GapBottom()
}

// UpperRect 返回上管道的矩形
func (o *ObstacleComponent) UpperRect() Rect {
	return Rect{X: o.X, Y: 0, W: o.Width, H: o.GapTop}
}

// LowerRect 返回下管道的矩形
func (o *ObstacleComponent) LowerRect(worldHeight float64) Rect {
	return Rect{X: o.X, Y: o.GapBottom(), W: o.Width, H: o.BottomHeight(worldHeight)}
}

// TrailingEdge 返回管道右沿X坐标
func (o *ObstacleComponent) TrailingEdge() float64 {
	return o.X + o.Width
}

// OffScreen 管道是否已完全移出世界左边界
func (o *ObstacleComponent) OffScreen() bool {
	return o.TrailingEdge() <= 0
}
