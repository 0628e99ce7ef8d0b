// Package reviews lists, submits and deletes student reviews through the
// gateway's cached queries and mutations.
package reviews

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// Module provides the authenticated review routes.
type Module struct {
	gateways  GatewayFactory
	base      modulehandler.Base
	available bool
}

// New returns a reviews module backed by the content API.
func New(deps module.Dependencies) Module {
	base := modulehandler.NewBase(deps)
	return Module{
		gateways:  NewAPIGatewayFactory(deps.Endpoints, deps.StaleTime, base.Client),
		base:      base,
		available: deps.Endpoints != nil,
	}
}

// NewWithGateway returns a reviews module with explicit gateway and handler
// dependencies.
func NewWithGateway(gateways GatewayFactory, base modulehandler.Base) Module {
	return Module{gateways: gateways, base: base, available: gateways != nil}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "reviews" }

// Healthy reports whether the module can reach the content API.
func (m Module) Healthy() bool {
	return m.available
}

// Mount wires review route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(service{}, m.gateways, m.base))
	return module.Mount{Prefix: routepath.ReviewsPrefix, Aliases: []string{routepath.Reviews}, Handler: mux}, nil
}
