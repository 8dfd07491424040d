package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is the in-process CacheRepository used when no Redis is
// configured. Expired entries are swept on every Set, and when full it
// drops the oldest entry.
type MemoryCache struct {
	mu       sync.Mutex
	data     map[string]memoryEntry
	order    []string
	capacity int
	now      func() time.Time
}

// NewMemoryCache holds at most capacity entries. A capacity <= 0 means no limit.
func NewMemoryCache(capacity int) *MemoryCache {
	return &MemoryCache{
		data:     make(map[string]memoryEntry),
		capacity: capacity,
		now:      time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if entry.expired(m.now()) {
		m.remove(key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	now := m.now()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Rewriting a key makes it the newest entry.
	if _, ok := m.data[key]; ok {
		m.remove(key)
	}
	m.sweep(now)

	for m.capacity > 0 && len(m.order) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.data, oldest)
	}
	m.data[key] = entry
	m.order = append(m.order, key)
	return nil
}

// Len returns the number of entries held, including expired ones not yet swept.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// sweep drops expired entries. Callers hold mu.
func (m *MemoryCache) sweep(now time.Time) {
	kept := m.order[:0]
	for _, key := range m.order {
		if m.data[key].expired(now) {
			delete(m.data, key)
			continue
		}
		kept = append(kept, key)
	}
	m.order = kept
}

// remove deletes key from both the map and the insertion order. Callers hold mu.
func (m *MemoryCache) remove(key string) {
	delete(m.data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}
