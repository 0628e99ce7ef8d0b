package session

import (
	"context"
	"errors"
	"sync"

	"github.com/louisbranch/coursefront/internal/services/web/storage"
)

// fakeSessionStore implements storage.SessionStore in memory.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]storage.Session
	saveErr  error
	deleted  []string
}

var _ storage.SessionStore = (*fakeSessionStore)(nil)

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]storage.Session{}}
}

func (f *fakeSessionStore) SaveSession(_ context.Context, session storage.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) LoadSession(_ context.Context, sessionID string) (storage.Session, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	return session, ok, nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sessionID == "broken" {
		return errors.New("disk full")
	}
	delete(f.sessions, sessionID)
	f.deleted = append(f.deleted, sessionID)
	return nil
}

func (f *fakeSessionStore) only() (storage.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		return session, len(f.sessions) == 1
	}
	return storage.Session{}, false
}
