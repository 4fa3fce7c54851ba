package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed flappy.yaml
var defaultGameConfigYAML []byte

// 计分策略
const (
	// ScorePolicyTicks 按存活帧数计分：score = floor(ticks / ticksPerPoint)
	ScorePolicyTicks = "ticks"
	// ScorePolicyPassed 每穿过一个障碍物得 1 分
	ScorePolicyPassed = "passed"
)

// 排行榜模式
const (
	// LeaderboardBestPerPlayer 每个玩家只保留一条最高分记录
	LeaderboardBestPerPlayer = "best-per-player"
	// LeaderboardTopRuns 保存单局记录，按分数降序截断到 capacity 条
	LeaderboardTopRuns = "top-runs"
)

// GameConfig 游戏调参配置
//
// 配置文件位置: pkg/config/flappy.yaml（编译时嵌入，作为默认值）
type GameConfig struct {
	World       WorldConfig       `yaml:"world"`
	Bird        BirdConfig        `yaml:"bird"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Player      PlayerConfig      `yaml:"player"`
}

// WorldConfig 世界尺寸（逻辑像素）
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig 小鸟初始状态与物理参数
type BirdConfig struct {
	X       float64 `yaml:"x"`       // 初始X坐标
	Y       float64 `yaml:"y"`       // 初始Y坐标
	Width   float64 `yaml:"width"`   // 碰撞盒宽度
	Height  float64 `yaml:"height"`  // 碰撞盒高度
	Gravity float64 `yaml:"gravity"` // 每帧速度增量（向下为正）
	Lift    float64 `yaml:"lift"`    // 拍翅时直接设置的速度（负值向上）

	AnimFrames int `yaml:"animFrames"` // 动画帧数
	AnimEvery  int `yaml:"animEvery"`  // 每隔多少帧切换一次动画帧
}

// ObstacleConfig 障碍物生成参数
type ObstacleConfig struct {
	Interval  int     `yaml:"interval"`  // 生成间隔（帧）
	Speed     float64 `yaml:"speed"`     // 每帧左移距离
	Width     float64 `yaml:"width"`     // 管道宽度
	GapSize   float64 `yaml:"gapSize"`   // 上下管道之间的空隙高度
	MinGapTop float64 `yaml:"minGapTop"` // 空隙上沿最小值
	MaxGapTop float64 `yaml:"maxGapTop"` // 空隙上沿最大值（不含）
}

// ScoringConfig 计分策略配置
type ScoringConfig struct {
	Policy        string `yaml:"policy"`
	TicksPerPoint int    `yaml:"ticksPerPoint"`
}

// LeaderboardConfig 排行榜配置
type LeaderboardConfig struct {
	Mode     string `yaml:"mode"`
	Capacity int    `yaml:"capacity"`
	Key      string `yaml:"key"` // 持久化存储键
}

// PlayerConfig 玩家名相关配置
type PlayerConfig struct {
	DefaultName     string `yaml:"defaultName"`
	MaxNameLength   int    `yaml:"maxNameLength"`
	RequireName     bool   `yaml:"requireName"` // true 时必须手动输入名字，不使用 DefaultName
	LastNameKey     string `yaml:"lastNameKey"`
	HighscoreSuffix string `yaml:"highscoreSuffix"`
}

// DefaultGameConfig 返回嵌入的默认配置
//
// 嵌入文件在编译期固定，解析失败属于编程错误，直接 panic
func DefaultGameConfig() *GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded flappy.yaml is invalid: %v", err))
	}
	return &cfg
}

// ParseGameConfig 解析 YAML 配置内容
//
// 未出现的字段保留默认值，因此外部配置文件只需写出要覆盖的部分。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GameConfig: 合并默认值并校验通过的配置
//   - error: 解析或校验失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 检查项：
//   - 世界、小鸟、障碍物尺寸为正
//   - 空隙上沿范围合法，且最低的空隙仍能完整放进世界高度内
//   - 计分策略与排行榜模式为已知取值
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *GameConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive: %.1fx%.1f", c.World.Width, c.World.Height)
	}

	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("bird size must be positive: %.1fx%.1f", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.AnimFrames <= 0 || c.Bird.AnimEvery <= 0 {
		return fmt.Errorf("bird animation must be positive: frames=%d every=%d", c.Bird.AnimFrames, c.Bird.AnimEvery)
	}

	o := c.Obstacles
	if o.Interval <= 0 {
		return fmt.Errorf("obstacle interval must be positive: %d", o.Interval)
	}
	if o.Speed <= 0 {
		return fmt.Errorf("obstacle speed must be positive: %.2f", o.Speed)
	}
	if o.Width <= 0 || o.GapSize <= 0 {
		return fmt.Errorf("obstacle width and gap must be positive: width=%.1f gap=%.1f", o.Width, o.GapSize)
	}
	if o.MinGapTop < 0 || o.MinGapTop > o.MaxGapTop {
		return fmt.Errorf("gap top range invalid: min(%.1f) max(%.1f)", o.MinGapTop, o.MaxGapTop)
	}
	if o.MaxGapTop+o.GapSize > c.World.Height {
		return fmt.Errorf("gap does not fit world: maxGapTop(%.1f) + gapSize(%.1f) > height(%.1f)",
			o.MaxGapTop, o.GapSize, c.World.Height)
	}

	switch c.Scoring.Policy {
	case ScorePolicyTicks:
		if c.Scoring.TicksPerPoint <= 0 {
			return fmt.Errorf("ticksPerPoint must be positive: %d", c.Scoring.TicksPerPoint)
		}
	case ScorePolicyPassed:
	default:
		return fmt.Errorf("unknown scoring policy: %q", c.Scoring.Policy)
	}

	switch c.Leaderboard.Mode {
	case LeaderboardBestPerPlayer, LeaderboardTopRuns:
	default:
		return fmt.Errorf("unknown leaderboard mode: %q", c.Leaderboard.Mode)
	}
	if c.Leaderboard.Capacity <= 0 {
		return fmt.Errorf("leaderboard capacity must be positive: %d", c.Leaderboard.Capacity)
	}
	if c.Leaderboard.Key == "" {
		return fmt.Errorf("leaderboard key must not be empty")
	}

	if c.Player.MaxNameLength <= 0 {
		return fmt.Errorf("maxNameLength must be positive: %d", c.Player.MaxNameLength)
	}
	if c.Player.LastNameKey == "" || c.Player.HighscoreSuffix == "" {
		return fmt.Errorf("player storage keys must not be empty")
	}

	return nil
}
