package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore 单个 YAML 文件承载的键值存储
//
// 职责：
//   - 打开时读入全部键值，文件不存在视为空存储
//   - 文件损坏时记录警告并以空存储继续（与"键不存在"同等对待）
//   - 每次 Set 都整体重写文件（格式化输出，便于人工查看）
type FileStore struct {
	path string
	data map[string]string
}

// OpenFileStore 打开（或创建）文件存储
//
// 参数:
//   - path: YAML 文件路径，父目录不存在时自动创建
//
// 返回:
//   - *FileStore: 存储实例
//   - error: 目录创建失败或文件不可读时返回错误
func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	fs := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var loaded map[string]string
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		log.Printf("[FileStore] Warning: %s is malformed, starting empty: %v", path, err)
		return fs, nil
	}
	for k, v := range loaded {
		fs.data[k] = v
	}

	log.Printf("[FileStore] Loaded %d keys from %s", len(fs.data), path)
	return fs, nil
}

// Path 返回存储文件路径
func (fs *FileStore) Path() string {
	return fs.path
}

// Get 实现 KVStore
func (fs *FileStore) Get(key string) (string, bool) {
	v, ok := fs.data[key]
	return v, ok
}

// Set 实现 KVStore
//
// 写文件失败时内存中的值仍然保留，本次进程内可继续读取
func (fs *FileStore) Set(key, value string) error {
	fs.data[key] = value

	out, err := yaml.Marshal(fs.data)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(fs.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
