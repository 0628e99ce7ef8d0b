package cta

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.CTA, h.handleAction)
	mux.HandleFunc(routepath.CTA, httpx.MethodNotAllowed(http.MethodPost))
}
