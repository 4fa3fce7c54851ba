// Package storage 提供同步键值存储能力
//
// 存储接口为字符串键、字符串值，读操作同步返回。
// 上层（ScoreManager）把"键不存在"和"读取失败"一视同仁，均回退到默认值，
// 因此 Get 不返回 error。
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/flappy/pkg/utils"
)

// KVStore 同步键值存储
type KVStore interface {
	// Get 读取键值；键不存在或读取失败时 ok 为 false
	Get(key string) (value string, ok bool)

	// Set 写入键值
	Set(key, value string) error
}

// 存储后端类型
const (
	KindGdata  = "gdata"
	KindFile   = "file"
	KindMemory = "memory"
)

// DefaultAppName gdata 使用的应用名（决定存档目录）
const DefaultAppName = "flappy_newx"

// Open 按类型打开存储后端
//
// 参数:
//   - kind: 后端类型（gdata / file / memory）
//   - location: gdata 的应用名或文件路径；memory 忽略此参数
//
// 返回:
//   - KVStore: 存储实例
//   - error: 打开失败时返回错误，调用方可降级为内存存储
func Open(kind, location string) (KVStore, error) {
	switch kind {
	case KindGdata:
		if location == "" {
			location = DefaultAppName
		}
		if err := utils.EnsureStorageDir(); err != nil {
			return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
		}
		manager, err := gdata.Open(gdata.Config{AppName: location})
		if err != nil {
			return nil, fmt.Errorf("failed to open gdata %q: %w", location, err)
		}
		log.Printf("[Storage] gdata opened, app=%s root=%q", location, utils.GetStoragePath())
		return NewGdataStore(manager), nil

	case KindFile:
		if location == "" {
			return nil, fmt.Errorf("file store requires a path")
		}
		return OpenFileStore(location)

	case KindMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store kind: %q", kind)
	}
}
