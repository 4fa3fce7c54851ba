package storage

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// gdataObject 所有键值都存放在同一个 gdata 对象下
const gdataObject = "kv"

// GdataStore 基于 gdata 的跨平台持久化存储
//
// 架构说明：
//   - 每个键对应 gdata 对象 "kv" 下的一个属性（一个文件）
//   - 属性名为键的十六进制编码，玩家名中的任意字符都不会影响文件名
//   - gdataManager 为 nil 时进入降级模式，数据只保存在内存中
type GdataStore struct {
	gdataManager *gdata.Manager
	fallback     *MemoryStore
}

// NewGdataStore 创建 gdata 存储
//
// 参数:
//   - gdataManager: gdata 管理器，可为 nil（降级模式）
//
// 返回:
//   - *GdataStore: 存储实例
func NewGdataStore(gdataManager *gdata.Manager) *GdataStore {
	if gdataManager == nil {
		log.Printf("[GdataStore] Warning: gdata manager not available, scores will not persist")
	}
	return &GdataStore{
		gdataManager: gdataManager,
		fallback:     NewMemoryStore(),
	}
}

// Persistent 是否真正持久化（非降级模式）
func (s *GdataStore) Persistent() bool {
	return s.gdataManager != nil
}

// Manager 返回底层 gdata 管理器，降级模式下为 nil
// 设置等其他存档与分数共用同一个 gdata 目录
func (s *GdataStore) Manager() *gdata.Manager {
	return s.gdataManager
}

// Get 实现 KVStore
func (s *GdataStore) Get(key string) (string, bool) {
	if s.gdataManager == nil {
		return s.fallback.Get(key)
	}

	prop := propName(key)
	if !s.gdataManager.ObjectPropExists(gdataObject, prop) {
		return "", false
	}

	data, err := s.gdataManager.LoadObjectProp(gdataObject, prop)
	if err != nil {
		log.Printf("[GdataStore] Warning: failed to load %q: %v", key, err)
		return "", false
	}
	return string(data), true
}

// Set 实现 KVStore
func (s *GdataStore) Set(key, value string) error {
	if s.gdataManager == nil {
		return s.fallback.Set(key, value)
	}

	if err := s.gdataManager.SaveObjectProp(gdataObject, propName(key), []byte(value)); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// propName 把任意键转换为文件名安全的属性名
func propName(key string) string {
	return hex.EncodeToString([]byte(key))
}
