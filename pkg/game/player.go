package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/decker502/flappy/pkg/config"
)

// ErrInvalidPlayerName 玩家名不合法（为空、过长或含不可打印字符）
var ErrInvalidPlayerName = errors.New("invalid player name")

// ValidatePlayerName 验证并规范化玩家名
//
// 规则：
//   - 去除首尾空白后不能为空
//   - 长度不超过 maxLen 个字符（按 rune 计）
//   - 只能包含可打印字符
//
// 参数：
//   - name: 原始输入
//   - maxLen: 最大长度
//
// 返回：
//   - string: 去除首尾空白后的名字
//   - error: 验证失败时返回包装了 ErrInvalidPlayerName 的错误
func ValidatePlayerName(name string, maxLen int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPlayerName)
	}
	if n := utf8.RuneCountInString(name); n > maxLen {
		return "", fmt.Errorf("%w: %d characters, max %d", ErrInvalidPlayerName, n, maxLen)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: contains unprintable character %U", ErrInvalidPlayerName, r)
		}
	}
	return name, nil
}

// ResolvePlayerName 在启动模拟前确定玩家名
//
// 优先级：命令行/配置传入的名字 → 上次使用的名字 → 默认名（仅当不要求手动输入时）。
// 返回空字符串表示需要前端弹出输入框。
func ResolvePlayerName(explicit, remembered string, cfg config.PlayerConfig) string {
	for _, candidate := range []string{explicit, remembered} {
		if name, err := ValidatePlayerName(candidate, cfg.MaxNameLength); err == nil {
			return name
		}
	}
	if !cfg.RequireName {
		if name, err := ValidatePlayerName(cfg.DefaultName, cfg.MaxNameLength); err == nil {
			return name
		}
	}
	return ""
}
