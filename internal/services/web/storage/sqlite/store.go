package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/coursefront/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/coursefront/internal/services/web/storage"
	"github.com/louisbranch/coursefront/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for the query cache and sessions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a web SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// GetCacheEntry loads a cache payload and metadata by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	if err := s.ready(); err != nil {
		return webstorage.CacheEntry{}, false, err
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	var entry webstorage.CacheEntry
	var stale, checkedAt, refreshedAt, expiresAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT cache_key, scope, payload_json, stale, checked_at, refreshed_at, expires_at
		 FROM cache_entries
		 WHERE cache_key = ?`,
		cacheKey,
	).Scan(&entry.CacheKey, &entry.Scope, &entry.PayloadBytes, &stale, &checkedAt, &refreshedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return webstorage.CacheEntry{}, false, nil
	}
	if err != nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.Stale = stale != 0
	entry.CheckedAt = unixMillisToTime(checkedAt)
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload and metadata by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = s.now().UTC()
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = entry.CheckedAt
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO cache_entries (cache_key, scope, payload_json, stale, checked_at, refreshed_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    stale = excluded.stale,
		    checked_at = excluded.checked_at,
		    refreshed_at = excluded.refreshed_at,
		    expires_at = excluded.expires_at`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		boolToInt(entry.Stale),
		timeToUnixMillis(entry.CheckedAt),
		timeToUnixMillis(entry.RefreshedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if err := s.ready(); err != nil {
		return err
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// MarkPrefixStale flags the entry keyed prefix and every "prefix:..." entry.
func (s *Store) MarkPrefixStale(ctx context.Context, prefix string, checkedAt time.Time) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return 0, fmt.Errorf("cache key prefix is required")
	}
	if checkedAt.IsZero() {
		checkedAt = s.now().UTC()
	}
	// ';' sorts immediately after ':' so the range covers exactly "prefix:*".
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE cache_entries
		 SET stale = 1, checked_at = ?
		 WHERE cache_key = ? OR (cache_key >= ? AND cache_key < ?)`,
		timeToUnixMillis(checkedAt),
		prefix,
		prefix+":",
		prefix+";",
	)
	if err != nil {
		return 0, fmt.Errorf("mark cache prefix stale: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark cache prefix stale: %w", err)
	}
	return affected, nil
}

// SaveSession upserts a session and prunes expired rows. created_at is kept
// on update.
func (s *Store) SaveSession(ctx context.Context, session webstorage.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.AccessToken) == "" {
		return fmt.Errorf("access token is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	now := s.now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, timeToUnixMillis(now)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prune sessions: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO web_sessions (session_id, access_token, display_name, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		    access_token = excluded.access_token,
		    display_name = excluded.display_name,
		    expires_at = excluded.expires_at`,
		session.ID,
		session.AccessToken,
		strings.TrimSpace(session.DisplayName),
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(session.ExpiresAt),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save session: %w", err)
	}
	return nil
}

// LoadSession returns a live session. Expired rows read as missing.
func (s *Store) LoadSession(ctx context.Context, sessionID string) (webstorage.Session, bool, error) {
	if err := s.ready(); err != nil {
		return webstorage.Session{}, false, err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return webstorage.Session{}, false, nil
	}

	var session webstorage.Session
	var createdAt, expiresAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT session_id, access_token, display_name, created_at, expires_at
		 FROM web_sessions
		 WHERE session_id = ? AND expires_at > ?`,
		sessionID,
		timeToUnixMillis(s.now().UTC()),
	).Scan(&session.ID, &session.AccessToken, &session.DisplayName, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return webstorage.Session{}, false, nil
	}
	if err != nil {
		return webstorage.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	return session, true, nil
}

// DeleteSession removes a session by id.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
