package systems

import (
	"github.com/decker502/flappy/pkg/components"
)

// AnimationSystem 小鸟拍翅动画帧推进
type AnimationSystem struct {
	frames int // 动画帧总数
	every  int // 每隔多少帧切换
}

// NewAnimationSystem 创建动画系统
//
// 参数:
//   - frames: 精灵图中的帧数
//   - every: 切换间隔（帧），必须为正
func NewAnimationSystem(frames, every int) *AnimationSystem {
	return &AnimationSystem{frames: frames, every: every}
}

// Update 在 tick 为 every 的整数倍时切到下一帧
func (as *AnimationSystem) Update(tick int, bird *components.BirdComponent) {
	if as.frames <= 0 || as.every <= 0 {
		return
	}
	if tick%as.every == 0 {
		bird.Frame = (bird.Frame + 1) % as.frames
	}
}
