package components

// BirdComponent 小鸟的运动学状态
// 由 PhysicsSystem 每帧更新，重新开始时按配置重置
type BirdComponent struct {
	X        float64 // 左上角X坐标（固定不变）
	Y        float64 // 左上角Y坐标
	Width    float64 // 碰撞盒宽度
	Height   float64 // 碰撞盒高度
	Velocity float64 // 垂直速度（像素/帧，向下为正）
	Gravity  float64 // 每帧速度增量
	Lift     float64 // 拍翅后的速度（负值向上）
	Frame    int     // 当前动画帧索引
}

// Bounds 返回小鸟的碰撞盒
func (b *BirdComponent) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
