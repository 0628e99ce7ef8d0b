package course

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service  service
	gateways GatewayFactory
}

func newHandlers(s service, gateways GatewayFactory, base modulehandler.Base) handlers {
	if gateways == nil {
		gateways = func(*http.Request) PageGateway { return unavailableGateway{} }
	}
	return handlers{Base: base, service: s, gateways: gateways}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	pc, err := h.service.homePage(r.Context(), h.gateways(r), h.LanguageCode(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeCourse(w, r, pc)
}

func (h handlers) handleCourse(w http.ResponseWriter, r *http.Request) {
	pc, err := h.service.coursePage(r.Context(), h.gateways(r), r.PathValue("slug"), h.LanguageCode(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeCourse(w, r, pc)
}

func (h handlers) writeCourse(w http.ResponseWriter, r *http.Request, pc pageContent) {
	loc := h.Localizer(r)
	h.WritePage(w, r, pc.Page.Title, http.StatusOK, webtemplates.CoursePage(courseView(pc, h.service.policy, loc)))
}

func (h handlers) handleCarousel(w http.ResponseWriter, r *http.Request) {
	pc, err := h.service.fragmentPage(r.Context(), h.gateways(r), r.PathValue("slug"), h.LanguageCode(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	slide := queryInt(r, "slide")
	h.WriteFragment(w, r, webtemplates.CarouselFragment(bannerView(pc, slide, h.service.policy, h.Localizer(r))))
}

func (h handlers) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(strings.TrimSpace(r.PathValue("idx")))
	if err != nil {
		h.WriteNotFound(w, r)
		return
	}
	pc, err := h.service.fragmentPage(r.Context(), h.gateways(r), r.PathValue("slug"), h.LanguageCode(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view, ok := stripView(pc, idx, queryInt(r, "offset"), h.Localizer(r))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	h.WriteFragment(w, r, webtemplates.TestimonialStrip(view))
}

// queryInt reads a non-negative integer query parameter, defaulting to 0.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
