// flappy-term 在终端中运行的 Flappy
//
// 使用方法:
//
//	go run ./cmd/flappy-term -player Alice
//
// 操作: 空格拍翅，p 暂停，r 重新开始，m 静音，Esc / Ctrl-C 退出
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/storage"
)

var (
	player     = flag.String("player", "", "玩家名（为空时使用上次的名字或提示输入）")
	configPath = flag.String("config", "", "游戏配置文件路径（为空时使用内置配置）")
	storeKind  = flag.String("store", storage.KindFile, "存储后端: file, gdata, memory")
	storePath  = flag.String("store-path", "", "文件存储路径或 gdata 应用名")
	seed       = flag.Int64("seed", 0, "障碍物随机种子（0 表示随机）")
	mute       = flag.Bool("mute", false, "禁用音效")
	logPath    = flag.String("log", "", "日志文件路径（终端被界面占用，为空时不输出日志）")
)

func main() {
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	store := openStore(*storeKind, *storePath)
	scores := game.NewScoreManager(store, cfg)

	name := game.ResolvePlayerName(*player, scores.LastPlayer(), cfg.Player)
	if name == "" {
		var err error
		name, err = promptName(os.Stdin, os.Stdout, cfg.Player.MaxNameLength)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read player name: %v\n", err)
			os.Exit(1)
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	sim, err := game.NewSimulation(cfg, scores, rand.New(rand.NewSource(s)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}
	if err := sim.StartOrRestart(name); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	sound := newSoundPlayer(!*mute)
	defer sound.Close()

	term, err := newTerminal(sim, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	term.Run()
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

// openStore 打开存储，失败时降级为内存存储
func openStore(kind, location string) storage.KVStore {
	if kind == storage.KindFile && location == "" {
		location = defaultStorePath()
	}
	store, err := storage.Open(kind, location)
	if err != nil {
		log.Printf("[Term] Warning: failed to open %s store: %v (scores will not persist)", kind, err)
		return storage.NewMemoryStore()
	}
	return store
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "flappy_scores.yaml"
	}
	return filepath.Join(dir, "flappy", "scores.yaml")
}

// promptName 在进入全屏界面前从标准输入读取玩家名，直到输入合法
func promptName(in io.Reader, out io.Writer, maxLen int) (string, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Player name (1-%d characters): ", maxLen)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		name, err := game.ValidatePlayerName(scanner.Text(), maxLen)
		if err == nil {
			return name, nil
		}
		fmt.Fprintf(out, "%v\n", err)
	}
}
