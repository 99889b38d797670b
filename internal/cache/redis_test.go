package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// Runs against a live server only when CACHE_REDIS_ADDR is set.
func TestRedisRoundTrip(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("CACHE_REDIS_ADDR"))
	if addr == "" {
		t.Skip("CACHE_REDIS_ADDR not set")
	}
	ctx := context.Background()

	store, err := NewRedis(ctx, addr, os.Getenv("CACHE_REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Delete(ctx, "test:key")
		_ = store.Close()
	})

	if err := store.Set(ctx, "test:key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "test:key")
	if err != nil || string(got) != "value" {
		t.Fatalf("get: %q, %v", got, err)
	}
	if err := store.Delete(ctx, "test:key"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "test:key"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
}
