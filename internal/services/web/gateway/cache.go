package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	webstorage "github.com/louisbranch/coursefront/internal/services/web/storage"
)

// QueryCache keeps successful query payloads addressed by key. Keys are
// joined with ':' and the first segment is the cache scope.
type QueryCache struct {
	store webstorage.CacheStore
}

// NewQueryCache wraps store. A nil store yields a nil cache, which disables
// caching.
func NewQueryCache(store webstorage.CacheStore) *QueryCache {
	if store == nil {
		return nil
	}
	return &QueryCache{store: store}
}

// CacheKey joins key segments into a storage key.
func CacheKey(key []string) string {
	parts := make([]string, 0, len(key))
	for _, part := range key {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ":")
}

// ownerSegment is the trailing key segment of token-scoped entries. It never
// contains the token itself.
func ownerSegment(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "u" + hex.EncodeToString(sum[:12])
}

func (q *QueryCache) load(ctx context.Context, key string) (webstorage.CacheEntry, bool) {
	if q == nil || key == "" {
		return webstorage.CacheEntry{}, false
	}
	entry, ok, err := q.store.GetCacheEntry(ctx, key)
	if err != nil {
		return webstorage.CacheEntry{}, false
	}
	return entry, ok
}

func (q *QueryCache) save(ctx context.Context, key string, payload []byte, now time.Time) error {
	if q == nil || key == "" {
		return nil
	}
	scope, _, _ := strings.Cut(key, ":")
	return q.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        scope,
		PayloadBytes: payload,
		CheckedAt:    now,
		RefreshedAt:  now,
	})
}

// Invalidate marks the entry keyed prefix, and every entry nested under it,
// stale so the next read refetches.
func (q *QueryCache) Invalidate(ctx context.Context, prefix string, now time.Time) error {
	if q == nil {
		return nil
	}
	if _, err := q.store.MarkPrefixStale(ctx, prefix, now); err != nil {
		return fmt.Errorf("invalidate %s: %w", prefix, err)
	}
	return nil
}

// fresh reports whether a cached entry may be served without refetching.
func fresh(entry webstorage.CacheEntry, opts QueryOptions, now time.Time) bool {
	if entry.Stale || len(entry.PayloadBytes) == 0 {
		return false
	}
	age := now.Sub(entry.RefreshedAt)
	if opts.RefetchInterval > 0 && age >= opts.RefetchInterval {
		return false
	}
	if opts.RefetchOnMount && age > opts.StaleTime {
		return false
	}
	return true
}
