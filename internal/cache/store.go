// internal/cache/store.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a string key/value store with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Keys for the cached reference lists.
const (
	KeyTeams    = "teams:list"
	KeyReferees = "referees:list"
	KeyVenues   = "venues:list"
)

// ReadThrough returns the cached value for key or loads, stores, and returns
// it. A nil store always loads. Cache failures are logged and fall through to
// load; load failures are returned.
func ReadThrough[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(ctx)
	}
	logger := log.Ctx(ctx)

	raw, err := store.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		logger.Warn().Str("cache_key", key).Msg("Discarding undecodable cache entry")
	case !errors.Is(err, ErrMiss):
		logger.Warn().Err(err).Str("cache_key", key).Msg("Cache read failed")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := store.Set(ctx, key, encoded, ttl); err != nil {
		logger.Warn().Err(err).Str("cache_key", key).Msg("Cache write failed")
	}
	return value, nil
}

// Invalidate drops keys, logging instead of failing so that a cache outage
// never blocks a committed write.
func Invalidate(ctx context.Context, store Store, keys ...string) {
	if store == nil || len(keys) == 0 {
		return
	}
	if err := store.Delete(ctx, keys...); err != nil {
		log.Ctx(ctx).Warn().Err(err).Strs("cache_keys", keys).Msg("Cache invalidation failed")
	}
}
