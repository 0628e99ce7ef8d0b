package reviews

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Reviews, h.handleList)
	mux.HandleFunc(http.MethodPost+" "+routepath.Reviews, h.handleCreate)
	mux.HandleFunc(http.MethodDelete+" "+routepath.ReviewPattern, h.handleDelete)
	mux.HandleFunc(http.MethodPost+" "+routepath.ReviewDeletePattern, h.handleDelete)
	mux.HandleFunc(routepath.ReviewDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.ReviewsPrefix, h.WriteNotFound)
}
