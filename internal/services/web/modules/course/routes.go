package course

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Home, h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductPattern, h.handleCourse)
	mux.HandleFunc(routepath.ProductPattern, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductCarouselPattern, h.handleCarousel)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductTestimonialsPattern, h.handleTestimonials)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
