// Package session signs visitors in with a backend-issued bearer token held
// in the server-side session store.
package session

import (
	"net/http"
	"time"

	"github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
	"github.com/louisbranch/coursefront/internal/services/web/storage"
)

// Module provides the login and logout routes.
type Module struct {
	sessions storage.SessionStore
	base     modulehandler.Base
	now      func() time.Time
}

// New returns a session module backed by deps.Sessions.
func New(deps module.Dependencies) Module {
	return Module{sessions: deps.Sessions, base: modulehandler.NewBase(deps), now: deps.Now}
}

// NewWithStore returns a session module with explicit collaborators.
func NewWithStore(sessions storage.SessionStore, base modulehandler.Base, now func() time.Time) Module {
	return Module{sessions: sessions, base: base, now: now}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "session" }

// Healthy reports whether a session store is configured.
func (m Module) Healthy() bool {
	return m.sessions != nil
}

// Mount wires login and logout handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.sessions, m.now), m.base))
	return module.Mount{Prefix: routepath.Login, Aliases: []string{routepath.Logout}, Handler: mux}, nil
}
