package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（输入玩家名、游戏进行中）
// 同一时刻只有一个场景的 Update 和 Draw 会被调用。
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
