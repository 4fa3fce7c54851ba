package game

import (
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/storage"
)

// Entry 排行榜中的一条记录
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// RunRecord 单局记录（top-runs 模式下持久化）
type RunRecord struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

// RunResult 一局结束后的结算结果
type RunResult struct {
	RunID        string // 本局唯一ID
	Player       string // 玩家名
	Score        int    // 本局分数
	PreviousBest int    // 结算前的个人最高分
	Best         int    // 结算后的个人最高分
	NewHighScore bool   // 是否刷新个人最高分
}

// ScoreManager 最高分与排行榜管理器
//
// 职责：
//   - 读写每个玩家的最高分（键为 "<name><highscoreSuffix>"）
//   - 维护排行榜（best-per-player 或 top-runs 两种模式，由配置决定）
//   - 记住上次使用的玩家名
//
// 错误处理：
//   - 存储中的数据缺失或损坏时一律回退为 0 / 空排行榜，不向调用方报错
//   - 写入失败只记录日志，本局结算结果照常返回
type ScoreManager struct {
	store  storage.KVStore
	player config.PlayerConfig
	board  config.LeaderboardConfig

	now   func() time.Time
	newID func() string
}

// NewScoreManager 创建最高分管理器
//
// 参数：
//   - store: 同步键值存储
//   - cfg: 游戏配置（使用 player 和 leaderboard 两节）
//
// 返回：
//   - *ScoreManager: 管理器实例
func NewScoreManager(store storage.KVStore, cfg *config.GameConfig) *ScoreManager {
	return &ScoreManager{
		store:  store,
		player: cfg.Player,
		board:  cfg.Leaderboard,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Mode 返回排行榜模式
func (sm *ScoreManager) Mode() string {
	return sm.board.Mode
}

func (sm *ScoreManager) highscoreKey(name string) string {
	return name + sm.player.HighscoreSuffix
}

// Highscore 读取玩家的个人最高分
//
// 键不存在或值无法解析为整数时返回 0
func (sm *ScoreManager) Highscore(name string) int {
	raw, ok := sm.store.Get(sm.highscoreKey(name))
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[ScoreManager] Warning: malformed highscore for %q: %q", name, raw)
		return 0
	}
	return v
}

// LastPlayer 返回上次使用的玩家名，未记录时返回空字符串
func (sm *ScoreManager) LastPlayer() string {
	name, _ := sm.store.Get(sm.player.LastNameKey)
	return name
}

// RememberPlayer 记住玩家名，下次启动时自动使用
func (sm *ScoreManager) RememberPlayer(name string) {
	if err := sm.store.Set(sm.player.LastNameKey, name); err != nil {
		log.Printf("[ScoreManager] Warning: failed to remember player: %v", err)
	}
}

// FinalizeRun 结算一局
//
// 步骤：
//  1. 读取个人最高分（缺失为 0），本局分数严格大于时更新并标记 NewHighScore
//  2. 无论是否刷新，都把本局写入排行榜
//
// 参数：
//   - name: 玩家名
//   - score: 本局分数
//
// 返回：
//   - RunResult: 结算结果
func (sm *ScoreManager) FinalizeRun(name string, score int) RunResult {
	prev := sm.Highscore(name)
	result := RunResult{
		RunID:        sm.newID(),
		Player:       name,
		Score:        score,
		PreviousBest: prev,
		Best:         prev,
	}

	if score > prev {
		result.Best = score
		result.NewHighScore = true
		if err := sm.store.Set(sm.highscoreKey(name), strconv.Itoa(score)); err != nil {
			log.Printf("[ScoreManager] Warning: failed to save highscore: %v", err)
		}
		log.Printf("[ScoreManager] New highscore for %s: %d (was %d)", name, score, prev)
	}

	sm.record(RunRecord{ID: result.RunID, Name: name, Score: score, At: sm.now()})
	return result
}

// record 把一局写入排行榜
func (sm *ScoreManager) record(run RunRecord) {
	var (
		data []byte
		err  error
	)

	switch sm.board.Mode {
	case config.LeaderboardTopRuns:
		runs := sm.loadRuns()
		runs = append(runs, run)
		sort.SliceStable(runs, func(i, j int) bool {
			return runs[i].Score > runs[j].Score
		})
		if len(runs) > sm.board.Capacity {
			runs = runs[:sm.board.Capacity]
		}
		data, err = json.Marshal(runs)

	default:
		entries := upsertBest(sm.loadBest(), run.Name, run.Score)
		data, err = json.Marshal(entries)
	}

	if err != nil {
		log.Printf("[ScoreManager] Warning: failed to encode leaderboard: %v", err)
		return
	}
	if err := sm.store.Set(sm.board.Key, string(data)); err != nil {
		log.Printf("[ScoreManager] Warning: failed to save leaderboard: %v", err)
	}
}

// upsertBest 每个玩家只保留一条记录；已存在时仅在分数更高时更新，位置不变
func upsertBest(entries []Entry, name string, score int) []Entry {
	for i := range entries {
		if entries[i].Name == name {
			if score > entries[i].Score {
				entries[i].Score = score
			}
			return entries
		}
	}
	return append(entries, Entry{Name: name, Score: score})
}

// Top 返回排行榜前 n 名
//
// 按分数降序排列，同分时保持写入顺序（稳定排序）；n <= 0 时返回空切片
//
// 参数：
//   - n: 最多返回的条数
//
// 返回：
//   - []Entry: 排行榜记录（副本）
func (sm *ScoreManager) Top(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}

	var entries []Entry
	switch sm.board.Mode {
	case config.LeaderboardTopRuns:
		for _, r := range sm.loadRuns() {
			entries = append(entries, Entry{Name: r.Name, Score: r.Score})
		}
	default:
		entries = sm.loadBest()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Runs 返回 top-runs 模式下保存的单局记录（best-per-player 模式返回空）
func (sm *ScoreManager) Runs() []RunRecord {
	if sm.board.Mode != config.LeaderboardTopRuns {
		return []RunRecord{}
	}
	return sm.loadRuns()
}

// loadBest 读取 best-per-player 排行榜
//
// 持久化格式为按首次写入顺序排列的 [{name, score}] 数组。
// 同时兼容 {"name": score} 对象格式（旧存档），此时按名字排序以保证确定性。
func (sm *ScoreManager) loadBest() []Entry {
	raw, ok := sm.store.Get(sm.board.Key)
	if !ok || raw == "" {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return dedupeBest(entries)
	}

	var legacy map[string]int
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil {
		names := make([]string, 0, len(legacy))
		for name := range legacy {
			names = append(names, name)
		}
		sort.Strings(names)
		entries = make([]Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, Entry{Name: name, Score: legacy[name]})
		}
		return entries
	}

	log.Printf("[ScoreManager] Warning: malformed leaderboard, starting empty")
	return []Entry{}
}

// dedupeBest 合并重复名字（手工编辑过的存档），保留每个名字的最高分
func dedupeBest(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = upsertBest(out, e.Name, e.Score)
	}
	return out
}

// loadRuns 读取 top-runs 排行榜
func (sm *ScoreManager) loadRuns() []RunRecord {
	raw, ok := sm.store.Get(sm.board.Key)
	if !ok || raw == "" {
		return []RunRecord{}
	}

	var runs []RunRecord
	if err := json.Unmarshal([]byte(raw), &runs); err != nil {
		log.Printf("[ScoreManager] Warning: malformed leaderboard, starting empty: %v", err)
		return []RunRecord{}
	}
	if runs == nil {
		runs = []RunRecord{}
	}
	return runs
}
