// Package cta dispatches banner call-to-action submissions.
package cta

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// Module provides the call-to-action route.
type Module struct {
	base modulehandler.Base
}

// New returns a cta module.
func New(deps module.Dependencies) Module {
	return Module{base: modulehandler.NewBase(deps)}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cta" }

// Mount wires the call-to-action handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.CTA, Handler: mux}, nil
}
