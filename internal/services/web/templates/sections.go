package templates

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/carousel"
	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
)

// SectionsOptions controls section rendering.
type SectionsOptions struct {
	Policy trustedhtml.Policy
	Loc    Localizer
	// StripURL returns the testimonial strip fragment endpoint for the
	// section at idx. Nil renders static strips.
	StripURL func(idx int) string
}

// Sections renders each section in order by its kind.
func Sections(sections []content.Section, opts SectionsOptions) templ.Component {
	return component(func(context.Context) g.Node {
		nodes := make(g.Group, 0, len(sections))
		for idx, section := range sections {
			nodes = append(nodes, sectionNode(idx, section, opts))
		}
		return h.Div(h.Class("course-sections"), nodes)
	})
}

func sectionNode(idx int, section content.Section, opts SectionsOptions) g.Node {
	switch body := section.Body.(type) {
	case content.OfferSection:
		return offersNode(section, body)
	case content.InstructorSection:
		return instructorsNode(section, body, opts.Policy)
	case content.FeatureSection:
		return featuresNode(section, body)
	case content.PointerSection:
		return pointersNode(section, body)
	case content.GroupJoinSection:
		return groupJoinNode(section, body)
	case content.TestimonialSection:
		url := ""
		if opts.StripURL != nil {
			url = opts.StripURL(idx)
		}
		return testimonialsNode(section, TestimonialStripView{
			Items: body.Items,
			Strip: carousel.NewStrip(len(body.Items), 0),
			URL:   url,
			Loc:   opts.Loc,
		})
	case content.AboutSection:
		return aboutNode(section, body, opts.Policy)
	case content.UnknownSection:
		return nil
	default:
		return nil
	}
}

func sectionHeading(section content.Section, fallbackDescription string) g.Node {
	return h.Div(h.Class("section-heading"),
		h.H2(g.Text(section.Name)),
		h.P(g.Text(content.Or(section.Description, fallbackDescription))),
	)
}

func sectionAttrs(section content.Section, class string) g.Node {
	color, ok := styleColor(section.BgColor)
	return g.Group{
		h.ID(section.Key),
		h.Class("course-section " + class),
		g.If(ok, h.Style("background-color: "+color)),
	}
}

func offersNode(section content.Section, body content.OfferSection) g.Node {
	return h.Section(sectionAttrs(section, "section-offers"),
		g.Map(body.Items, func(offer content.Offer) g.Node {
			return h.Div(h.Class("offer-card"), h.ID(offer.Key),
				h.P(h.Strong(g.Text(offer.Text))),
			)
		}),
	)
}

func instructorsNode(section content.Section, body content.InstructorSection, policy trustedhtml.Policy) g.Node {
	return h.Section(sectionAttrs(section, "section-instructors"),
		sectionHeading(section, content.DefaultInstructorsDescription),
		h.Div(h.Class("instructor-grid"),
			g.Map(body.Items, func(inst content.Instructor) g.Node {
				bio := trustedhtml.FromCMS(inst.Description, policy).Or(content.DefaultInstructorBio)
				return h.Div(h.Class("instructor-card"), h.ID(inst.Key),
					portrait(inst.Image, content.Or(inst.Name, "Instructor"), content.Initial(inst.Name, content.DefaultInstructorInitial)),
					h.H3(g.Text(inst.Name)),
					h.P(h.Class("instructor-short"), g.Text(inst.ShortDescription)),
					h.Div(h.Class("instructor-bio"), g.Raw(bio.String())),
				)
			}),
		),
	)
}

func featuresNode(section content.Section, body content.FeatureSection) g.Node {
	return h.Section(sectionAttrs(section, "section-features"),
		sectionHeading(section, content.DefaultFeaturesDescription),
		h.Div(h.Class("feature-grid"),
			g.Map(body.Items, func(feature content.Feature) g.Node {
				return h.Div(h.Class("feature-card"), h.ID(feature.Key),
					portrait(feature.Icon, "Feature Icon", content.Initial(feature.Title, content.DefaultFeatureInitial)),
					h.H3(g.Text(feature.Title)),
					h.P(g.Text(feature.Text())),
				)
			}),
		),
	)
}

func pointersNode(section content.Section, body content.PointerSection) g.Node {
	return h.Section(sectionAttrs(section, "section-pointers"),
		sectionHeading(section, content.DefaultPointersDescription),
		h.Ul(h.Class("pointer-list two-column"),
			g.Map(body.Items, func(pointer content.Pointer) g.Node {
				return h.Li(h.ID(pointer.Key), h.Span(h.Class("check"), g.Text("✔")), h.P(g.Text(pointer.Text)))
			}),
		),
	)
}

func groupJoinNode(section content.Section, body content.GroupJoinSection) g.Node {
	return h.Section(sectionAttrs(section, "section-group-join"),
		g.Map(body.Items, func(v content.GroupJoin) g.Node {
			background := h.Class("group-join-card gradient")
			if v.Background.Image != "" {
				background = g.Group{
					h.Class("group-join-card"),
					h.Style("background-image: url('" + styleURL(v.Background.Image) + "')"),
				}
			}
			return h.Div(background, h.ID(v.Key),
				h.H2(g.Text(v.Title)),
				h.P(g.Text(v.Description)),
				h.A(h.Class("group-join-cta"), h.Href(safeURL(v.CTA.ClickedURL)), h.Target("_blank"), h.Rel("noopener noreferrer"),
					g.Text(v.CTAText()),
				),
			)
		}),
	)
}

func aboutNode(section content.Section, body content.AboutSection, policy trustedhtml.Policy) g.Node {
	return h.Section(sectionAttrs(section, "section-about"),
		g.Map(body.Items, func(item content.About) g.Node {
			title := trustedhtml.FromCMS(item.Title, policy).Or(content.DefaultAboutTitle)
			description := trustedhtml.FromCMS(item.Description, policy).Or(content.DefaultAboutDescription)
			return h.Div(h.Class("about-block"), h.ID(item.Key),
				h.Div(h.Class("about-title"), g.Raw(title.String())),
				h.Div(h.Class("about-description"), g.Raw(description.String())),
			)
		}),
	)
}

// portrait renders an image or an initial badge when the image is missing.
func portrait(src, alt, initial string) g.Node {
	if src != "" {
		return h.Img(h.Class("portrait"), h.Src(safeURL(src)), h.Alt(alt))
	}
	return h.Span(h.Class("portrait initial-badge"), g.Text(initial))
}
