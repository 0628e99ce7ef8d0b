package course

import (
	"github.com/louisbranch/coursefront/internal/services/web/carousel"
	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

func bannerView(pc pageContent, slide int, policy trustedhtml.Policy, loc webtemplates.Localizer) webtemplates.BannerView {
	images := pc.Page.Images()
	return webtemplates.BannerView{
		Title:       pc.Page.Title,
		Description: trustedhtml.FromCMS(pc.Page.Description, policy).WithoutBannerParagraphClass(),
		Images:      images,
		Carousel:    carousel.New(len(images), slide),
		CTA:         pc.Page.CTAText,
		Checklist:   pc.Page.Checklist,
		CarouselURL: routepath.ProductCarousel(pc.Slug),
		Loc:         loc,
	}
}

func courseView(pc pageContent, policy trustedhtml.Policy, loc webtemplates.Localizer) webtemplates.CourseView {
	slug := pc.Slug
	return webtemplates.CourseView{
		Banner:   bannerView(pc, 0, policy, loc),
		Sections: pc.Sections,
		Options: webtemplates.SectionsOptions{
			Policy: policy,
			Loc:    loc,
			StripURL: func(idx int) string {
				return routepath.ProductTestimonials(slug, idx)
			},
		},
	}
}

// stripView returns the strip of the testimonials section at idx.
func stripView(pc pageContent, idx, offset int, loc webtemplates.Localizer) (webtemplates.TestimonialStripView, bool) {
	if idx < 0 || idx >= len(pc.Sections) {
		return webtemplates.TestimonialStripView{}, false
	}
	body, ok := pc.Sections[idx].Body.(content.TestimonialSection)
	if !ok {
		return webtemplates.TestimonialStripView{}, false
	}
	return webtemplates.TestimonialStripView{
		Items: body.Items,
		Strip: carousel.NewStrip(len(body.Items), offset),
		URL:   routepath.ProductTestimonials(pc.Slug, idx),
		Loc:   loc,
	}, true
}
