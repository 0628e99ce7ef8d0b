package templates

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoginView is the sign-in form.
type LoginView struct {
	Next string
	Loc  Localizer
}

// LoginPage renders the bearer token sign-in form.
func LoginPage(view LoginView) templ.Component {
	return component(func(context.Context) g.Node {
		loc := view.Loc
		return h.Section(h.Class("login"),
			h.H1(g.Text(TOr(loc, "session.title", "Sign in"))),
			h.Form(h.Action("/login"), h.Method("post"),
				h.Input(h.Type("hidden"), h.Name("next"), h.Value(view.Next)),
				h.Label(h.For("session-token"), g.Text(TOr(loc, "session.token", "Access token"))),
				h.Input(h.ID("session-token"), h.Type("password"), h.Name("token"), h.Required(), g.Attr("autocomplete", "off")),
				h.Button(h.Type("submit"), g.Text(TOr(loc, "session.submit", "Continue"))),
			),
		)
	})
}
