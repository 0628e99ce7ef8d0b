package templates

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ToastRegionID is the element id of the toast container.
const ToastRegionID = "toasts"

// Toast is one rendered notice.
type Toast struct {
	Kind    string
	Message string
}

// ToastsOOB renders the toast container as an HTMX out-of-band swap so
// fragment responses can refresh notices.
func ToastsOOB(toasts []Toast) templ.Component {
	return component(func(context.Context) g.Node {
		return toastRegion(toasts, true)
	})
}

func toastRegion(toasts []Toast, oob bool) g.Node {
	return h.Div(h.ID(ToastRegionID), h.Class("toasts"), h.Role("status"), h.Aria("live", "polite"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Map(toasts, func(toast Toast) g.Node {
			return h.Div(h.Class("toast toast-"+toast.Kind), g.Text(toast.Message))
		}),
	)
}
