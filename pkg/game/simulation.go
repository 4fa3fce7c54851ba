package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/systems"
)

// RunState 单局状态
type RunState int

const (
	// StateNotStarted 尚未开始（等待输入玩家名或开始操作）
	StateNotStarted RunState = iota
	// StateRunning 进行中
	StateRunning
	// StateEnded 已结束（发生碰撞），等待重新开始
	StateEnded
)

// String 返回状态名称（用于日志）
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "not-started"
	}
}

// TickResult 单帧推进结果
type TickResult struct {
	Advanced  bool                    // 本帧是否真正推进（未开始、暂停或已结束时为 false）
	Ended     bool                    // 本帧是否因碰撞结束
	Collision systems.CollisionResult // 碰撞详情
	Run       *RunResult              // 结束时的结算结果，否则为 nil
}

// Snapshot 提供给渲染层的只读快照
type Snapshot struct {
	Bird      components.BirdComponent
	Obstacles []components.ObstacleComponent // 副本
	Score     int
	Highscore int
	Player    string
	State     RunState
	Paused    bool
	Tick      int
	LastRun   *RunResult // 最近一局的结算结果（副本），未结束过时为 nil
}

// Simulation 模拟状态管理器
//
// 持有一局游戏的全部状态（小鸟、管道序列、帧计数、分数），由宿主每帧调用 Tick 推进。
// 单线程使用：所有方法都应在同一个 goroutine（游戏主循环）中调用。
//
// 状态机：NotStarted → Running → Ended → Running ...
//   - StartOrRestart: 任意状态 → Running（重置全部实体）
//   - Tick: Running 且未暂停时推进；碰撞时 Running → Ended 并结算
//   - Ended 为终态，直到下一次 StartOrRestart
type Simulation struct {
	cfg    *config.GameConfig
	scores *ScoreManager

	physics   *systems.PhysicsSystem
	spawner   *systems.ObstacleSpawnSystem
	collision *systems.CollisionSystem
	animation *systems.AnimationSystem
	policy    systems.ScorePolicy

	state       RunState
	paused      bool
	flapPending bool

	bird      components.BirdComponent
	obstacles []components.ObstacleComponent
	tick      int
	score     int
	highscore int
	player    string
	lastRun   *RunResult
}

// NewSimulation 创建模拟
//
// 参数:
//   - cfg: 游戏配置（已校验）
//   - scores: 最高分/排行榜管理器
//   - rng: 障碍物随机源
//
// 返回:
//   - *Simulation: 处于 NotStarted 状态的模拟
//   - error: 计分策略配置无效时返回错误
func NewSimulation(cfg *config.GameConfig, scores *ScoreManager, rng *rand.Rand) (*Simulation, error) {
	policy, err := systems.NewScorePolicy(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to create score policy: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		scores:    scores,
		physics:   systems.NewPhysicsSystem(),
		spawner:   systems.NewObstacleSpawnSystem(cfg.Obstacles, cfg.World.Width, rng),
		collision: systems.NewCollisionSystem(cfg.World.Height),
		animation: systems.NewAnimationSystem(cfg.Bird.AnimFrames, cfg.Bird.AnimEvery),
		policy:    policy,
		state:     StateNotStarted,
	}
	s.resetEntities()
	return s, nil
}

// resetEntities 按配置重置小鸟、管道、帧计数与分数
func (s *Simulation) resetEntities() {
	b := s.cfg.Bird
	s.bird = components.BirdComponent{
		X:       b.X,
		Y:       b.Y,
		Width:   b.Width,
		Height:  b.Height,
		Gravity: b.Gravity,
		Lift:    b.Lift,
	}
	s.obstacles = s.obstacles[:0]
	s.tick = 0
	s.score = 0
	s.flapPending = false
}

// StartOrRestart 开始或重新开始一局
//
// 玩家名不合法时拒绝操作，状态保持不变。
// 成功时重置全部实体、读取该玩家的最高分并记住玩家名。
//
// 参数:
//   - name: 玩家名
//
// 返回:
//   - error: 玩家名不合法时返回包装了 ErrInvalidPlayerName 的错误
func (s *Simulation) StartOrRestart(name string) error {
	name, err := ValidatePlayerName(name, s.cfg.Player.MaxNameLength)
	if err != nil {
		return err
	}

	if name != s.player {
		s.scores.RememberPlayer(name)
	}
	s.player = name
	s.resetEntities()
	s.highscore = s.scores.Highscore(name)
	s.state = StateRunning
	s.paused = false

	log.Printf("[Simulation] Run started: player=%s highscore=%d", name, s.highscore)
	return nil
}

// Flap 处理拍翅输入
//
// 进行中且未暂停：记录拍翅，下一次 Tick 时生效。
// 未开始或已结束且已知玩家名：直接重新开始一局。
//
// 返回:
//   - bool: 拍翅是否被接受（用于播放音效）
func (s *Simulation) Flap() bool {
	switch s.state {
	case StateRunning:
		if s.paused {
			return false
		}
		s.flapPending = true
		return true
	default:
		if s.player != "" {
			if err := s.StartOrRestart(s.player); err != nil {
				log.Printf("[Simulation] Warning: restart rejected: %v", err)
			}
		}
		return false
	}
}

// TogglePause 切换暂停状态，仅在进行中有效
//
// 返回:
//   - bool: 切换后的暂停状态
func (s *Simulation) TogglePause() bool {
	if s.state != StateRunning {
		return s.paused
	}
	s.paused = !s.paused
	log.Printf("[Simulation] Paused=%v at tick %d", s.paused, s.tick)
	return s.paused
}

// Tick 推进一帧
//
// 顺序：物理 → 障碍物 → 碰撞（命中则结束并结算，本帧不再计分）→ 帧计数 → 计分 → 动画。
//
// 返回:
//   - TickResult: 本帧结果
func (s *Simulation) Tick() TickResult {
	if s.state != StateRunning || s.paused {
		return TickResult{Collision: systems.CollisionResult{Index: -1}}
	}

	s.physics.Update(&s.bird, s.flapPending)
	s.flapPending = false

	s.obstacles = s.spawner.Update(s.tick, s.obstacles)

	hit := s.collision.Check(&s.bird, s.obstacles)
	if hit.Hit() {
		run := s.end(hit)
		return TickResult{Advanced: true, Ended: true, Collision: hit, Run: &run}
	}

	s.tick++
	s.score = s.policy.Score(s.tick, &s.bird, s.obstacles, s.score)
	s.animation.Update(s.tick, &s.bird)

	return TickResult{Advanced: true, Collision: hit}
}

// end 结束本局并结算
func (s *Simulation) end(hit systems.CollisionResult) RunResult {
	s.state = StateEnded
	s.paused = false
	s.flapPending = false

	run := s.scores.FinalizeRun(s.player, s.score)
	if run.NewHighScore {
		s.highscore = run.Best
	}
	s.lastRun = &run

	log.Printf("[Simulation] Run ended: player=%s score=%d collision=%s tick=%d",
		s.player, s.score, hit.Kind, s.tick)
	return run
}

// State 返回当前状态
func (s *Simulation) State() RunState {
	return s.state
}

// Paused 是否暂停
func (s *Simulation) Paused() bool {
	return s.paused
}

// Player 返回当前玩家名，未开始过时为空
func (s *Simulation) Player() string {
	return s.player
}

// Score 返回当前分数
func (s *Simulation) Score() int {
	return s.score
}

// Leaderboard 返回排行榜前 n 名
func (s *Simulation) Leaderboard(n int) []Entry {
	return s.scores.Top(n)
}

// Config 返回模拟使用的配置
func (s *Simulation) Config() *config.GameConfig {
	return s.cfg
}

// Snapshot 生成只读快照，供渲染层使用
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Bird:      s.bird,
		Obstacles: append([]components.ObstacleComponent(nil), s.obstacles...),
		Score:     s.score,
		Highscore: s.highscore,
		Player:    s.player,
		State:     s.state,
		Paused:    s.paused,
		Tick:      s.tick,
	}
	if s.lastRun != nil {
		run := *s.lastRun
		snap.LastRun = &run
	}
	return snap
}
