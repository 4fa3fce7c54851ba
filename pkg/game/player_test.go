package game

import (
	"errors"
	"testing"

	"github.com/decker502/flappy/pkg/config"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"普通名字", "Alice", "Alice", false},
		{"去除首尾空白", "  Bob  ", "Bob", false},
		{"中间空格", "Ann Lee", "Ann Lee", false},
		{"刚好10个字符", "abcdefghij", "abcdefghij", false},
		{"中文按字符计数", "小鸟飞飞", "小鸟飞飞", false},
		{"空名字", "", "", true},
		{"只有空白", "   ", "", true},
		{"超过10个字符", "abcdefghijk", "", true},
		{"不可打印字符", "bad\x00name", "", true},
		{"制表符", "a\tb", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePlayerName(tt.input, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePlayerName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPlayerName) {
				t.Errorf("error should wrap ErrInvalidPlayerName: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidatePlayerName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePlayerName(t *testing.T) {
	required := config.DefaultGameConfig().Player
	optional := required
	optional.RequireName = false

	tests := []struct {
		name       string
		explicit   string
		remembered string
		cfg        config.PlayerConfig
		want       string
	}{
		{"显式名字优先", "Alice", "Bob", required, "Alice"},
		{"显式名字非法时使用记住的名字", "waytoolongname", "Bob", required, "Bob"},
		{"使用记住的名字", "", "Bob", required, "Bob"},
		{"需要输入时返回空", "", "", required, ""},
		{"不需要输入时使用默认名", "", "", optional, "Player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePlayerName(tt.explicit, tt.remembered, tt.cfg); got != tt.want {
				t.Errorf("ResolvePlayerName() = %q, want %q", got, tt.want)
			}
		})
	}
}
