// Package course serves the course landing pages and their polled banner
// and testimonial fragments.
package course

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// Module provides the public course routes. It owns the root mount, so
// unmatched paths render the not-found page here.
type Module struct {
	gateways  GatewayFactory
	base      modulehandler.Base
	policy    trustedhtml.Policy
	available bool
}

// New returns a course module backed by the content API.
func New(deps module.Dependencies) Module {
	base := modulehandler.NewBase(deps)
	return Module{
		gateways:  NewAPIGatewayFactory(deps.Endpoints, deps.StaleTime, base.Client),
		base:      base,
		policy:    deps.HTMLPolicy,
		available: deps.Endpoints != nil,
	}
}

// NewWithGateway returns a course module with explicit gateway and handler
// dependencies.
func NewWithGateway(gateways GatewayFactory, base modulehandler.Base, policy trustedhtml.Policy) Module {
	return Module{gateways: gateways, base: base, policy: policy, available: gateways != nil}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "course" }

// Healthy reports whether the module can reach the content API.
func (m Module) Healthy() bool {
	return m.available
}

// Mount wires course route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.policy), m.gateways, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
