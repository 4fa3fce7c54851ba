package config

// 布局配置常量
// 桌面端窗口与界面元素位置，坐标均为世界坐标（逻辑像素）

const (
	// GameWindowWidth 桌面端窗口宽度
	GameWindowWidth = 360

	// GameWindowHeight 桌面端窗口高度
	GameWindowHeight = 640

	// RestartButtonWidth 结束画面中"重新开始"按钮的宽度
	RestartButtonWidth = 120.0

	// RestartButtonHeight 按钮高度
	RestartButtonHeight = 40.0

	// RestartButtonOffsetY 按钮上沿相对屏幕中心的Y偏移
	RestartButtonOffsetY = 60.0

	// LeaderboardShown 结束画面展示的排行榜条数
	LeaderboardShown = 5
)

// RestartButtonBounds 返回"重新开始"按钮的矩形区域
// 返回值：x, y, w, h
func RestartButtonBounds(worldWidth, worldHeight float64) (float64, float64, float64, float64) {
	x := worldWidth/2 - RestartButtonWidth/2
	y := worldHeight/2 + RestartButtonOffsetY
	return x, y, RestartButtonWidth, RestartButtonHeight
}

// InRestartButton 判断坐标是否落在"重新开始"按钮内（边界不含）
func InRestartButton(px, py, worldWidth, worldHeight float64) bool {
	x, y, w, h := RestartButtonBounds(worldWidth, worldHeight)
	return px > x && px < x+w && py > y && py < y+h
}
