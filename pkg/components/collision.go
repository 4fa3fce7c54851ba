package components

// Rect 轴对齐矩形（左上角 + 宽高），用于碰撞检测
type Rect struct {
	X float64 // 左上角X坐标
	Y float64 // 左上角Y坐标
	W float64 // 宽度
	H float64 // 高度
}

// Intersects 检查两个矩形是否重叠（AABB）
//
// 使用严格不等式：仅边缘接触不算碰撞
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Bottom 返回矩形下沿Y坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right 返回矩形右沿X坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}
