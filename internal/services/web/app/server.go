package app

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
)

// BuildRootHandler composes a root mux using the configured module groups.
// Authentication reads the session resolved by webctx.Middleware.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Authenticated: func(r *http.Request) bool {
			return webctx.FromContext(r.Context()).SignedIn
		},
		PublicModules:    cfg.PublicModules,
		ProtectedModules: cfg.ProtectedModules,
	})
}
