package repository

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value   string
	expires time.Time // zero = never
}

// MemoryCache is an in-process CacheRepository used when no Redis server is
// configured.
type MemoryCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		m.evict(key, e)
		return "", false
	}
	return e.value, true
}

// evict removes key only if it still holds the expired entry e; a Set that
// raced in after the read keeps its fresh value.
func (m *MemoryCache) evict(key string, e memoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.data[key]; ok && cur == e {
		delete(m.data, key)
	}
}

func (m *MemoryCache) Set(key string, value string) error {
	e := memoryEntry{value: value}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
