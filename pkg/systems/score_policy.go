package systems

import (
	"fmt"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// ScorePolicy 计分策略
//
// 每帧在碰撞检测通过后调用一次，返回新的分数。
// 实现可以修改管道的 Passed 标记，但不能修改其他状态。
type ScorePolicy interface {
	Score(tick int, bird *components.BirdComponent, obstacles []components.ObstacleComponent, current int) int
}

// TickScorePolicy 按存活帧数计分：floor(tick / TicksPerPoint)
type TickScorePolicy struct {
	TicksPerPoint int
}

// Score 实现 ScorePolicy
func (p TickScorePolicy) Score(tick int, _ *components.BirdComponent, _ []components.ObstacleComponent, _ int) int {
	return tick / p.TicksPerPoint
}

// PassScorePolicy 小鸟左沿越过管道右沿时加 1 分，每个管道只计一次
type PassScorePolicy struct{}

// Score 实现 ScorePolicy
func (PassScorePolicy) Score(_ int, bird *components.BirdComponent, obstacles []components.ObstacleComponent, current int) int {
	for i := range obstacles {
		o := &obstacles[i]
		if !o.Passed && o.TrailingEdge() < bird.X {
			o.Passed = true
			current++
		}
	}
	return current
}

// NewScorePolicy 根据配置创建计分策略
//
// 参数:
//   - cfg: 计分配置
//
// 返回:
//   - ScorePolicy: 策略实例
//   - error: 未知策略名时返回错误
func NewScorePolicy(cfg config.ScoringConfig) (ScorePolicy, error) {
	switch cfg.Policy {
	case config.ScorePolicyTicks:
		if cfg.TicksPerPoint <= 0 {
			return nil, fmt.Errorf("ticksPerPoint must be positive: %d", cfg.TicksPerPoint)
		}
		return TickScorePolicy{TicksPerPoint: cfg.TicksPerPoint}, nil
	case config.ScorePolicyPassed:
		return PassScorePolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring policy: %q", cfg.Policy)
	}
}
