package systems

import (
	"github.com/decker502/flappy/pkg/components"
)

// PhysicsSystem 小鸟的垂直运动积分
//
// 每帧：拍翅则速度直接置为 Lift，否则速度加上 Gravity；随后位置加上速度。
// 速度不做任何限幅。
type PhysicsSystem struct{}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update 推进小鸟一帧
//
// 参数:
//   - bird: 小鸟状态，原地修改
//   - flapped: 本帧是否发生拍翅
func (ps *PhysicsSystem) Update(bird *components.BirdComponent, flapped bool) {
	if flapped {
		bird.Velocity = bird.Lift
	} else {
		bird.Velocity += bird.Gravity
	}
	bird.Y += bird.Velocity
}
