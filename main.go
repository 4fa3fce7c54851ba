package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flappy/pkg/app"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/storage"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	player     = flag.String("player", "", "玩家名（为空时使用上次的名字或弹出输入框）")
	configPath = flag.String("config", "", "游戏配置文件路径（为空时使用内置配置）")
	storeKind  = flag.String("store", storage.KindGdata, "存储后端: gdata, file, memory")
	storePath  = flag.String("store-path", "", "gdata 应用名或文件存储路径")
	seed       = flag.Int64("seed", 0, "障碍物随机种子（0 表示随机）")
	mute       = flag.Bool("mute", false, "禁用音频")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Player:       *player,
		ConfigPath:   *configPath,
		Store:        *storeKind,
		StorePath:    *storePath,
		Seed:         *seed,
		DisableAudio: *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Flappy")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
