package templates

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/content"
)

// CourseView is a full course page.
type CourseView struct {
	Banner   BannerView
	Sections []content.Section
	Options  SectionsOptions
}

// CoursePage renders the banner followed by the course sections.
func CoursePage(view CourseView) templ.Component {
	return component(func(ctx context.Context) g.Node {
		return h.Div(h.Class("course-page"),
			embed(ctx, Banner(view.Banner)),
			embed(ctx, Sections(view.Sections, view.Options)),
		)
	})
}
