package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached query payload and its freshness metadata.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	Stale        bool
	CheckedAt    time.Time
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Session binds an opaque cookie id to a backend-issued bearer token.
type Session struct {
	ID          string
	AccessToken string
	DisplayName string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// CacheStore persists query cache entries.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	// MarkPrefixStale flags every entry whose key equals prefix or starts
	// with prefix followed by ':' and reports how many rows changed.
	MarkPrefixStale(ctx context.Context, prefix string, checkedAt time.Time) (int64, error)
}

// SessionStore persists server-side sessions.
type SessionStore interface {
	SaveSession(ctx context.Context, session Session) error
	LoadSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// Store is the full web persistence contract.
type Store interface {
	CacheStore
	SessionStore
	Close() error
}
