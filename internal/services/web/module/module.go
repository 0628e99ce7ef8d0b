// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/coursefront/internal/platform/endpoints"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
	"github.com/louisbranch/coursefront/internal/services/web/storage"
)

// Mount describes a module route mount. Prefix ending in "/" mounts a
// subtree; otherwise it mounts one exact path. Aliases mount the same
// handler at additional paths.
type Mount struct {
	Prefix  string
	Aliases []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// ClientFactory builds the gateway client for one request.
type ClientFactory func(*http.Request) *gateway.Client

// Dependencies carries the shared collaborators modules are built from.
type Dependencies struct {
	Endpoints    *endpoints.Registry
	Clients      ClientFactory
	Sessions     storage.SessionStore
	HTMLPolicy   trustedhtml.Policy
	StaleTime    time.Duration
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}

// ClockNow returns the configured clock, defaulting to time.Now.
func (d Dependencies) ClockNow() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// NewClientFactory returns a factory forwarding the request's session token,
// notice collector and logger to every gateway client it builds.
func NewClientFactory(httpClient *http.Client, cache *gateway.QueryCache, now func() time.Time) ClientFactory {
	return func(r *http.Request) *gateway.Client {
		ctx := r.Context()
		return gateway.New(gateway.Config{
			HTTPClient: httpClient,
			Token:      webctx.Token(ctx),
			Notifier:   flash.FromContext(ctx),
			Cache:      cache,
			Logger:     zerolog.Ctx(ctx),
			Now:        now,
		})
	}
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
