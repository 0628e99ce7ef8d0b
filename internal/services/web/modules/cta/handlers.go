package cta

import (
	"net/http"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleAction navigates for routing actions. Notice-only actions stay on
// the current page: HTMX callers get an out-of-band toast, others are sent
// back to the referring page with the notice in the flash cookie.
func (h handlers) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	result := dispatch(r.PostForm.Get("action"))
	if result.Notice.Message != "" {
		flash.FromContext(httpx.RequestContext(r)).Add(result.Notice.Kind, result.Notice.Message)
	}

	if result.Location != "" {
		h.Redirect(w, r, result.Location)
		return
	}
	if httpx.IsHTMXRequest(r) {
		h.WriteNotices(w, r)
		return
	}
	h.Redirect(w, r, requestmeta.RefererPath(r, routepath.Root))
}
