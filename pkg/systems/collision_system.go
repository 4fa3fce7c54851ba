package systems

import (
	"github.com/decker502/flappy/pkg/components"
)

// CollisionKind 碰撞类型
type CollisionKind int

const (
	// CollisionNone 无碰撞
	CollisionNone CollisionKind = iota
	// CollisionObstacle 撞到管道
	CollisionObstacle
	// CollisionCeiling 飞出世界上边界
	CollisionCeiling
	// CollisionFloor 落到世界下边界之外
	CollisionFloor
)

// String 返回碰撞类型名称（用于日志）
func (k CollisionKind) String() string {
	switch k {
	case CollisionObstacle:
		return "obstacle"
	case CollisionCeiling:
		return "ceiling"
	case CollisionFloor:
		return "floor"
	default:
		return "none"
	}
}

// CollisionResult 单帧碰撞检测结果
type CollisionResult struct {
	Kind  CollisionKind
	Index int // 撞到的管道下标，非管道碰撞时为 -1
}

// Hit 是否发生碰撞
func (r CollisionResult) Hit() bool {
	return r.Kind != CollisionNone
}

// CollisionSystem 小鸟与管道、世界边界之间的AABB碰撞检测
//
// 纯函数式：不修改任何状态，重复调用结果一致。
// 运行结束后的"只触发一次"由 Simulation 的状态机保证。
type CollisionSystem struct {
	worldHeight float64
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(worldHeight float64) *CollisionSystem {
	return &CollisionSystem{worldHeight: worldHeight}
}

// Check 检测小鸟当前是否碰撞
//
// 按生成顺序检查管道，返回第一个命中的管道；都未命中时再检查上下边界。
//
// 参数:
//   - bird: 小鸟状态
//   - obstacles: 管道序列
//
// 返回:
//   - CollisionResult: 碰撞结果
func (cs *CollisionSystem) Check(bird *components.BirdComponent, obstacles []components.ObstacleComponent) CollisionResult {
	box := bird.Bounds()

	for i := range obstacles {
		o := &obstacles[i]
		// 水平方向不重叠时不可能撞到该管道
		if !(box.X < o.TrailingEdge() && box.Right() > o.X) {
			continue
		}
		if box.Y < o.GapTop || box.Bottom() > o.GapBottom() {
			return CollisionResult{Kind: CollisionObstacle, Index: i}
		}
	}

	if box.Y < 0 {
		return CollisionResult{Kind: CollisionCeiling, Index: -1}
	}
	if box.Bottom() > cs.worldHeight {
		return CollisionResult{Kind: CollisionFloor, Index: -1}
	}

	return CollisionResult{Kind: CollisionNone, Index: -1}
}
