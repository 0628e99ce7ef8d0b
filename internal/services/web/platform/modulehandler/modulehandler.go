// Package modulehandler provides a composable base for web module handlers.
//
// Modules share request-scoped gateway access, localization, page rendering
// and error writing. Handlers embed Base rather than duplicating that
// scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	module "github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/coursefront/internal/services/web/platform/i18n"
	"github.com/louisbranch/coursefront/internal/services/web/platform/pagerender"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
	"github.com/louisbranch/coursefront/internal/services/web/platform/weberror"
)

// Base carries the shared request-scoped collaborators used by module
// handlers.
type Base struct {
	clients      module.ClientFactory
	schemePolicy requestmeta.SchemePolicy
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{clients: deps.Clients, schemePolicy: deps.SchemePolicy}
}

// NewTestBase builds a handler base whose clients carry no transport
// overrides.
func NewTestBase() Base {
	return Base{}
}

// Client returns the gateway client for r.
func (b Base) Client(r *http.Request) *gateway.Client {
	if b.clients == nil {
		ctx := httpx.RequestContext(r)
		return gateway.New(gateway.Config{Token: webctx.Token(ctx), Notifier: flash.FromContext(ctx)})
	}
	return b.clients(r)
}

// Localizer returns the printer for the request language.
func (b Base) Localizer(r *http.Request) webi18n.Localizer {
	return webctx.Localizer(httpx.RequestContext(r))
}

// LanguageCode returns the short request language code.
func (b Base) LanguageCode(r *http.Request) string {
	return webctx.LanguageCode(httpx.RequestContext(r))
}

// SignedIn reports whether the request carries a live session.
func (b Base) SignedIn(r *http.Request) bool {
	return webctx.FromContext(httpx.RequestContext(r)).SignedIn
}

// SchemePolicy returns the forwarded-proto trust policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.schemePolicy
}

// WritePage renders a full module page (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a partial response with out-of-band notices.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}

// WriteNotFound renders a 404 error page within the layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// WriteNotices answers an HTMX request with only the collected notices,
// rendered as an out-of-band toast swap.
func (b Base) WriteNotices(w http.ResponseWriter, r *http.Request) {
	b.WriteFragment(w, r, nil)
}

// InvalidFormStatus is the status for re-rendering a rejected form. HTMX
// only swaps successful responses, so its requests get 200.
func InvalidFormStatus(r *http.Request) int {
	if httpx.IsHTMXRequest(r) {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

// Redirect moves the notices collected during r into the flash cookie and
// redirects to location.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	notices := flash.FromContext(httpx.RequestContext(r)).Drain()
	flash.WriteWithPolicy(w, r, notices, b.schemePolicy)
	httpx.WriteRedirect(w, r, location)
}
