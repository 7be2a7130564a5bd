package cache

import (
	"context"
	"time"
)

// Store is the key-value cache behind the chat subsystem. Implementations
// must treat the cache as best-effort: a failed read reports absence and a
// failed write is logged and dropped, so the chat feature degrades to
// "no memory" instead of becoming unavailable.
type Store interface {
	// Get returns the value for key, or ok=false when the key is absent,
	// expired, or the cache is unreachable.
	Get(ctx context.Context, key string) (value string, ok bool)

	// Set writes value under key with the given TTL, best-effort.
	Set(ctx context.Context, key, value string, ttl time.Duration)

	// Delete removes key immediately, best-effort.
	Delete(ctx context.Context, key string)

	// Keys returns the keys matching a glob-style pattern.
	Keys(ctx context.Context, pattern string) []string
}
