package templates

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/navigation"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Asset paths served from the embedded static directory.
const (
	stylesheetPath = "/static/app.css"
	scriptPath     = "/static/app.js"
)

// LayoutOptions describes the full-page shell.
type LayoutOptions struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	SignedIn     bool
	Toasts       []Toast
}

// Layout renders the document shell around the attached children.
func Layout(opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context) g.Node {
		return h.Doctype(h.HTML(
			h.Lang(opts.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(ComposePageTitle(opts.Title, opts.Loc))),
				h.Link(h.Rel("stylesheet"), h.Href(stylesheetPath)),
				h.Script(h.Src(htmxScriptURL), h.Defer()),
				h.Script(h.Src(scriptPath), h.Defer()),
			),
			h.Body(
				g.Attr("hx-boost", "true"),
				hxTarget("#main"),
				navbar(opts),
				toastRegion(opts.Toasts, false),
				h.Main(h.ID("main"), h.Class("site-main"), children(ctx)),
			),
		))
	})
}

// ComposePageTitle suffixes title with the site name.
func ComposePageTitle(title string, loc Localizer) string {
	site := TOr(loc, "site.title", "10 Minute School")
	title = strings.TrimSpace(title)
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}

// LanguageToggleURL returns the current URL with the other language selected.
func LanguageToggleURL(path, rawQuery, lang string) string {
	target := "en"
	if lang == "en" {
		target = "bn"
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set("lang", target)
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}

func navbar(opts LayoutOptions) g.Node {
	loc := opts.Loc
	return h.Header(h.Class("site-header"),
		h.Nav(h.Class("navbar"),
			h.A(h.Href("/"), h.Class("navbar-logo"),
				h.Span(h.Aria("label", TOr(loc, "site.logo_alt", "10 Minute School Logo")), g.Text(TOr(loc, "site.title", "10 Minute School"))),
			),
			h.Form(h.Action("/"), h.Method("get"), h.Class("navbar-search"),
				h.Input(h.Type("search"), h.Name("q"), h.Placeholder(TOr(loc, "nav.search_placeholder", "Search"))),
			),
			h.Ul(h.Class("navbar-menu"),
				g.Map(navigation.Menu(), func(item navigation.Item) g.Node {
					return menuItem(item, opts.CurrentPath, loc)
				}),
			),
			h.A(h.Class("navbar-language"), h.Href(LanguageToggleURL(opts.CurrentPath, opts.CurrentQuery, opts.Lang)),
				g.Text(TOr(loc, "nav.language_toggle", "EN")),
			),
			h.Span(h.Class("navbar-hotline"), g.Text(TOr(loc, "site.hotline", navigation.Hotline))),
			sessionButton(opts.SignedIn, loc),
		),
	)
}

func menuItem(item navigation.Item, currentPath string, loc Localizer) g.Node {
	label := T(loc, item.LabelKey)
	active := item.Active(currentPath)
	if !item.HasChildren() {
		return h.Li(g.If(active, h.Class("active")), h.A(h.Href(item.Href), g.Text(label)))
	}
	class := "has-submenu"
	if active {
		class += " active"
	}
	return h.Li(h.Class(class),
		h.Span(g.Text(label)),
		h.Ul(h.Class("submenu"),
			g.Map(item.Children, func(child navigation.Item) g.Node {
				return menuItem(child, currentPath, loc)
			}),
		),
	)
}

func sessionButton(signedIn bool, loc Localizer) g.Node {
	if signedIn {
		return h.Form(h.Action(routepath.Logout), h.Method("post"), h.Class("navbar-session"),
			h.Button(h.Type("submit"), g.Text(TOr(loc, "nav.logout", "Logout"))),
		)
	}
	return h.A(h.Class("navbar-session"), h.Href(routepath.Login), g.Text(TOr(loc, "nav.login", "Login")))
}
