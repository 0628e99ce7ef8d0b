// Package language switches the visitor's content language.
package language

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/coursefront/internal/services/web/platform/i18n"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// Module provides the language switch route.
type Module struct {
	base modulehandler.Base
}

// New returns a language module.
func New(deps module.Dependencies) Module {
	return Module{base: modulehandler.NewBase(deps)}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "language" }

// Mount wires the language switch handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, m.base)
	return module.Mount{Prefix: routepath.Lang, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, base modulehandler.Base) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Lang, func(w http.ResponseWriter, r *http.Request) {
		handleSwitch(w, r, base)
	})
	mux.HandleFunc(routepath.Lang, httpx.MethodNotAllowed(http.MethodGet))
}

// handleSwitch persists the requested language and returns the visitor to
// next, or to the referring page. An unsupported language leaves the cookie
// untouched.
func handleSwitch(w http.ResponseWriter, r *http.Request, base modulehandler.Base) {
	query := r.URL.Query()
	if tag, ok := webi18n.Parse(query.Get(webi18n.LangParam)); ok {
		webi18n.SetLanguageCookie(w, tag)
	}
	target := requestmeta.LocalPath(query.Get("next"), requestmeta.RefererPath(r, routepath.Root))
	base.Redirect(w, r, target)
}
