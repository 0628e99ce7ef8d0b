package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/carousel"
	"github.com/louisbranch/coursefront/internal/services/web/content"
)

// TestimonialStripView is the auto-scrolling testimonial strip.
type TestimonialStripView struct {
	Items []content.Testimonial
	Strip carousel.Strip
	// URL is the strip fragment endpoint. Empty renders a static strip.
	URL string
	Loc Localizer
}

// TestimonialStrip renders the strip alone for HTMX polling.
func TestimonialStrip(view TestimonialStripView) templ.Component {
	return component(func(context.Context) g.Node {
		return stripNode(view)
	})
}

// OffsetURL returns the strip fragment URL at offset.
func OffsetURL(base string, offset int) string {
	return base + "?offset=" + strconv.Itoa(offset)
}

func testimonialsNode(section content.Section, view TestimonialStripView) g.Node {
	return h.Section(sectionAttrs(section, "section-testimonials"),
		sectionHeading(section, content.DefaultTestimonialsDesc),
		stripNode(view),
	)
}

func stripNode(view TestimonialStripView) g.Node {
	strip := carousel.NewStrip(len(view.Items), view.Strip.Offset)
	verified := TOr(view.Loc, "testimonials.verified", "Verified Student")
	return h.Div(h.Class("testimonial-strip"),
		g.If(view.URL != "" && strip.Scrolls(), hxEvery(OffsetURL(view.URL, strip.Advance().Offset), carousel.StripInterval)),
		g.Map(strip.Order(), func(idx int) g.Node {
			t := view.Items[idx]
			return h.Div(h.Class("testimonial-card"), h.ID(t.Key),
				portrait(t.ProfileImage, content.Or(t.Name, "Student"), content.Initial(t.Name, content.DefaultTestimonialInitial)),
				h.Div(h.Class("stars"), g.Text(stars(content.TestimonialStars))),
				h.H3(g.Text(t.Name)),
				h.P(h.Class("verified"), g.Text(verified)),
				h.P(h.Class("quote"), g.Text("\""+t.Testimonial+"\"")),
			)
		}),
	)
}

func stars(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "★"
	}
	return out
}
