package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-key expiry. It backs tests and
// local runs; expiry is checked lazily on access against an injectable clock.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

// SetClock substitutes the time source, for expiry tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || s.now().After(item.expiresAt) {
		return "", false
	}
	return item.value, true
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = memoryItem{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *MemoryStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *MemoryStore) Keys(_ context.Context, pattern string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	now := s.now()
	for k, item := range s.items {
		if now.After(item.expiresAt) {
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
