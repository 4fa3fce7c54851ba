package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("flappy_store_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	// 测试结束后删除测试目录
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

// 所有后端共享的行为
func exerciseStore(t *testing.T, s KVStore) {
	_, ok := s.Get("missing")
	assert.False(t, ok, "missing key should not be found")

	require.NoError(t, s.Set("Alice_highscore", "10"))
	v, ok := s.Get("Alice_highscore")
	assert.True(t, ok)
	assert.Equal(t, "10", v)

	require.NoError(t, s.Set("Alice_highscore", "12"))
	v, _ = s.Get("Alice_highscore")
	assert.Equal(t, "12", v, "Set should overwrite")

	// 任意字符的键
	odd := "../we!rd/ name_highscore"
	require.NoError(t, s.Set(odd, `{"a":1}`))
	v, ok = s.Get(odd)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)
	assert.Equal(t, 2, s.Len())
}

func TestGdataStore_Degraded(t *testing.T) {
	s := NewGdataStore(nil)
	assert.False(t, s.Persistent())
	assert.Nil(t, s.Manager())
	exerciseStore(t, s)
}

func TestGdataStore_Persistent(t *testing.T) {
	manager := createTestGdataManager(t, "persist")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	s := NewGdataStore(manager)
	require.True(t, s.Persistent())
	assert.Same(t, manager, s.Manager())
	exerciseStore(t, s)

	// 同一 manager 上的新实例模拟重启
	reopened := NewGdataStore(manager)
	v, ok := reopened.Get("Alice_highscore")
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	exerciseStore(t, s)

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, ok := reopened.Get("Alice_highscore")
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}

func TestFileStore_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml [\n"), 0644))

	s, err := OpenFileStore(path)
	require.NoError(t, err, "malformed file should be treated as empty")
	_, ok := s.Get("anything")
	assert.False(t, ok)

	// 写入后覆盖损坏的文件
	require.NoError(t, s.Set("k", "v"))
	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	v, _ := reopened.Get("k")
	assert.Equal(t, "v", v)
}

func TestOpen(t *testing.T) {
	s, err := Open(KindMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(KindFile, filepath.Join(t.TempDir(), "kv.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open(KindFile, "")
	assert.Error(t, err)

	_, err = Open("redis", "")
	assert.ErrorContains(t, err, "unknown store kind")
}

func TestPropName(t *testing.T) {
	assert.Equal(t, "6162", propName("ab"))
	assert.NotEqual(t, propName("a/b"), propName("a_b"))
}
