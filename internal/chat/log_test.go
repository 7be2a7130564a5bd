package chat

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"chat-service/internal/cache"
)

func TestLogAppendAndRead(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	log := NewLog(store, 24*time.Hour)

	log.Append(ctx, 42, "s1",
		Entry{Role: RoleUser, Text: "hello"},
		Entry{Role: RoleAssistant, Text: "hi"},
	)

	entries := log.Read(ctx, 42, "s1")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Role != RoleUser || entries[0].Text != "hello" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Role != RoleAssistant || entries[1].Text != "hi" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}

	// reading twice without writes yields identical sequences
	again := log.Read(ctx, 42, "s1")
	if !reflect.DeepEqual(entries, again) {
		t.Fatalf("reads differ: %+v vs %+v", entries, again)
	}
}

func TestLogCapKeepsNewestFifty(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	log := NewLog(store, 24*time.Hour)

	for i := 0; i < 55; i++ {
		log.Append(ctx, 42, "s1", Entry{Role: RoleUser, Text: fmt.Sprintf("msg-%d", i)})
	}

	entries := log.Read(ctx, 42, "s1")
	if len(entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(entries))
	}
	// the oldest five were dropped; the rest survive in original order
	for i, e := range entries {
		want := fmt.Sprintf("msg-%d", i+5)
		if e.Text != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, e.Text)
		}
	}
}

func TestLogMissingKeyReadsEmpty(t *testing.T) {
	ctx := context.Background()
	log := NewLog(cache.NewMemoryStore(), 24*time.Hour)

	if entries := log.Read(ctx, 42, "nope"); len(entries) != 0 {
		t.Fatalf("expected empty history, got %+v", entries)
	}
}

func TestLogCorruptBlobReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	log := NewLog(store, 24*time.Hour)

	store.Set(ctx, sessionKey(42, "s1"), "{not json", time.Hour)

	if entries := log.Read(ctx, 42, "s1"); len(entries) != 0 {
		t.Fatalf("corrupt blob should read as empty, got %+v", entries)
	}
}

func TestLogSlidingExpiry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	log := NewLog(store, 24*time.Hour)

	now := time.Now()
	store.SetClock(func() time.Time { return now })

	log.Append(ctx, 42, "s1", Entry{Role: RoleUser, Text: "one"})

	// a write inside the window resets the 24h expiry
	now = now.Add(23 * time.Hour)
	log.Append(ctx, 42, "s1", Entry{Role: RoleUser, Text: "two"})

	now = now.Add(23 * time.Hour)
	if entries := log.Read(ctx, 42, "s1"); len(entries) != 2 {
		t.Fatalf("expected log alive after refreshed write, got %+v", entries)
	}

	// silence past the window expires the log; that reads as empty, not an error
	now = now.Add(2 * time.Hour)
	if entries := log.Read(ctx, 42, "s1"); len(entries) != 0 {
		t.Fatalf("expected expired log to read empty, got %+v", entries)
	}
}

func TestLogDelete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	log := NewLog(store, 24*time.Hour)

	log.Append(ctx, 42, "s1", Entry{Role: RoleUser, Text: "hello"})
	log.Delete(ctx, 42, "s1")

	if entries := log.Read(ctx, 42, "s1"); len(entries) != 0 {
		t.Fatalf("expected deleted log to read empty, got %+v", entries)
	}
}
