package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"chat-service/internal/logger"
)

// RedisStore implements Store on a Redis client. All Redis errors are
// contained here: reads degrade to absence and writes are logged and
// swallowed, so callers never see an infrastructure failure.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false
	}
	if err != nil {
		logger.Error("cache get failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Error("cache set failed", "key", key, "error", err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		logger.Error("cache delete failed", "key", key, "error", err)
	}
}

func (s *RedisStore) Keys(ctx context.Context, pattern string) []string {
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Error("cache keys failed", "pattern", pattern, "error", err)
		return nil
	}
	return keys
}
