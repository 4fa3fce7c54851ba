package systems

import (
	"math/rand"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// ObstacleSpawnSystem 管道的生成、移动与回收
//
// 生成严格按固定间隔：只在 tick 为 Interval 整数倍时追加新管道。
// 新管道总是出现在世界右边界，因此切片顺序始终等于从左到右的顺序。
type ObstacleSpawnSystem struct {
	cfg        config.ObstacleConfig
	worldWidth float64
	rng        *rand.Rand
}

// NewObstacleSpawnSystem 创建障碍物生成系统
//
// 参数:
//   - cfg: 障碍物配置（已校验）
//   - worldWidth: 世界宽度，新管道的初始X坐标
//   - rng: 随机源，测试中传入固定种子保证可复现
//
// 返回:
//   - *ObstacleSpawnSystem: 系统实例
func NewObstacleSpawnSystem(cfg config.ObstacleConfig, worldWidth float64, rng *rand.Rand) *ObstacleSpawnSystem {
	return &ObstacleSpawnSystem{
		cfg:        cfg,
		worldWidth: worldWidth,
		rng:        rng,
	}
}

// ShouldSpawn 判断当前 tick 是否生成新管道
func (ss *ObstacleSpawnSystem) ShouldSpawn(tick int) bool {
	return tick%ss.cfg.Interval == 0
}

// Spawn 在世界右边界生成一个新管道，空隙上沿在 [MinGapTop, MaxGapTop) 内均匀分布
func (ss *ObstacleSpawnSystem) Spawn() components.ObstacleComponent {
	gapTop := ss.cfg.MinGapTop + ss.rng.Float64()*(ss.cfg.MaxGapTop-ss.cfg.MinGapTop)
	return components.ObstacleComponent{
		X:       ss.worldWidth,
		Width:   ss.cfg.Width,
		GapTop:  gapTop,
		GapSize: ss.cfg.GapSize,
	}
}

// Update 推进所有管道一帧
//
// 顺序：按需生成 → 全部左移 Speed → 移除已完全离开屏幕的管道。
// 过滤复用原切片的底层数组，保持原有顺序。
//
// 参数:
//   - tick: 当前帧序号（从 0 开始）
//   - obstacles: 当前管道序列
//
// 返回:
//   - []components.ObstacleComponent: 更新后的管道序列
func (ss *ObstacleSpawnSystem) Update(tick int, obstacles []components.ObstacleComponent) []components.ObstacleComponent {
	if ss.ShouldSpawn(tick) {
		obstacles = append(obstacles, ss.Spawn())
	}

	for i := range obstacles {
		obstacles[i].X -= ss.cfg.Speed
	}

	kept := obstacles[:0]
	for _, o := range obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	return kept
}
