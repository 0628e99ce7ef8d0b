package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	appErrorTitleKey    = "error.title"
	appErrorNotFoundKey = "error.not_found"
	appErrorBackHomeKey = "error.back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return TOr(loc, appErrorNotFoundKey, "Page not found")
	}
	return TOr(loc, appErrorTitleKey, "Something went wrong")
}

// AppErrorState renders the error page body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(context.Context) g.Node {
		status := normalizeAppErrorStatus(statusCode)
		return h.Section(h.ID("app-error-state"), h.Class("app-error"),
			h.H1(g.Textf("%d", status)),
			h.P(g.Text(AppErrorPageTitle(status, loc))),
			h.A(h.Href("/"), g.Text(TOr(loc, appErrorBackHomeKey, "Back to home"))),
		)
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
