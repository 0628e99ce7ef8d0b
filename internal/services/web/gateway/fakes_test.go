package gateway

import (
	"context"
	"strings"
	"sync"
	"time"

	webstorage "github.com/louisbranch/coursefront/internal/services/web/storage"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) NotifySuccess(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) NotifyError(message string)   { n.errors = append(n.errors, message) }

type fakeCacheStore struct {
	mu           sync.Mutex
	entries      map[string]webstorage.CacheEntry
	invalidated  []string
	markStaleErr error
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{entries: map[string]webstorage.CacheEntry{}}
}

func (s *fakeCacheStore) GetCacheEntry(_ context.Context, key string) (webstorage.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *fakeCacheStore) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.CacheKey] = entry
	return nil
}

func (s *fakeCacheStore) DeleteCacheEntry(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *fakeCacheStore) MarkPrefixStale(_ context.Context, prefix string, _ time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = append(s.invalidated, prefix)
	if s.markStaleErr != nil {
		return 0, s.markStaleErr
	}
	var n int64
	for key, entry := range s.entries {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			entry.Stale = true
			s.entries[key] = entry
			n++
		}
	}
	return n, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }
