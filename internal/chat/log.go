package chat

import (
	"context"
	"encoding/json"
	"time"

	"chat-service/internal/cache"
	"chat-service/internal/logger"
)

// MaxEntries caps a conversation log. When an append would exceed it, the
// oldest entries are dropped so the newest MaxEntries survive.
const MaxEntries = 50

// Log stores each session's history as one serialized blob per cache key.
//
// Append is a read-modify-write over that blob and is NOT atomic: two
// concurrent appends to the same session both read the same base sequence
// and the last write wins, silently dropping the other writer's entries.
// This matches the baseline design; closing the race needs a native
// push-and-trim primitive or versioned writes.
type Log struct {
	store cache.Store
	ttl   time.Duration
}

func NewLog(store cache.Store, ttl time.Duration) *Log {
	return &Log{store: store, ttl: ttl}
}

// Append adds entries in order, truncates to the newest MaxEntries, and
// rewrites the blob with a fresh TTL. Every write slides the expiry window.
func (l *Log) Append(ctx context.Context, userID int64, sessionID string, entries ...Entry) {
	if len(entries) == 0 {
		return
	}

	current := l.Read(ctx, userID, sessionID)
	current = append(current, entries...)

	if len(current) > MaxEntries {
		current = current[len(current)-MaxEntries:]
	}

	data, err := json.Marshal(current)
	if err != nil {
		logger.Error("failed to marshal conversation log",
			"user_id", userID, "session_id", sessionID, "error", err)
		return
	}

	l.store.Set(ctx, sessionKey(userID, sessionID), string(data), l.ttl)
}

// Read returns the session's entries in append order. An absent key or a
// blob that fails to deserialize both read as empty history.
func (l *Log) Read(ctx context.Context, userID int64, sessionID string) []Entry {
	raw, ok := l.store.Get(ctx, sessionKey(userID, sessionID))
	if !ok {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Error("corrupt conversation log, treating as empty",
			"user_id", userID, "session_id", sessionID, "error", err)
		return nil
	}
	return entries
}

// Delete removes the session's log immediately.
func (l *Log) Delete(ctx context.Context, userID int64, sessionID string) {
	l.store.Delete(ctx, sessionKey(userID, sessionID))
}
