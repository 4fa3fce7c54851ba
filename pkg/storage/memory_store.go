package storage

// MemoryStore 纯内存存储，用于测试和持久化不可用时的降级模式
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get 实现 KVStore
func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set 实现 KVStore
func (s *MemoryStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

// Len 返回键数量
func (s *MemoryStore) Len() int {
	return len(s.data)
}
