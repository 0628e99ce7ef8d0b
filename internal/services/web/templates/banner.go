package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/carousel"
	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
)

// CarouselElementID is the element id of the banner slider.
const CarouselElementID = "banner-carousel"

// BannerView is the course banner.
type BannerView struct {
	Title       string
	Description trustedhtml.HTML
	Images      []string
	Carousel    carousel.Carousel
	CTA         content.CTAText
	Checklist   []content.ChecklistItem
	// CarouselURL is the slider fragment endpoint. Empty renders a static
	// slider.
	CarouselURL string
	Loc         Localizer
}

// Banner renders the course banner.
func Banner(view BannerView) templ.Component {
	return component(func(context.Context) g.Node {
		return h.Section(h.Class("banner"),
			h.Div(h.Class("banner-copy"),
				h.H1(g.Text(view.Title)),
				g.If(!view.Description.Empty(), h.Div(h.Class("banner-description"), g.Raw(view.Description.String()))),
			),
			h.Div(h.Class("banner-media"),
				carouselNode(view),
				ctaNode(view.CTA),
				checklistNode(view.Checklist),
			),
		)
	})
}

// CarouselFragment renders the slider alone for HTMX polling and controls.
func CarouselFragment(view BannerView) templ.Component {
	return component(func(context.Context) g.Node {
		return carouselNode(view)
	})
}

// SlideURL returns the fragment URL selecting slide idx.
func SlideURL(base string, idx int) string {
	return base + "?slide=" + strconv.Itoa(idx)
}

func carouselNode(view BannerView) g.Node {
	c := carousel.New(len(view.Images), view.Carousel.Index)
	if c.Len == 0 {
		return nil
	}
	live := view.CarouselURL != ""
	slide := func(idx int, children ...g.Node) g.Node {
		attrs := g.Group{}
		if live {
			attrs = g.Group{hxGet(SlideURL(view.CarouselURL, idx)), hxTarget("#" + CarouselElementID), hxSwap("outerHTML")}
		}
		return h.Button(h.Type("button"), attrs, g.Group(children))
	}
	return h.Div(h.ID(CarouselElementID), h.Class("carousel"),
		g.If(live && c.AutoAdvance(), hxEvery(SlideURL(view.CarouselURL, c.Next().Index), carousel.SlideInterval)),
		h.Div(h.Class("carousel-slide"),
			h.Img(h.Src(safeURL(view.Images[c.Index])), h.Alt(fmt.Sprintf("Slide %d", c.Index))),
			g.If(c.Len > 1, g.Group{
				slide(c.Previous().Index, h.Class("carousel-prev"), h.Aria("label", TOr(view.Loc, "banner.previous", "Previous")), g.Text("‹")),
				slide(c.Next().Index, h.Class("carousel-next"), h.Aria("label", TOr(view.Loc, "banner.next", "Next")), g.Text("›")),
			}),
		),
		h.Div(h.Class("carousel-thumbnails"),
			g.Map(indexes(len(view.Images)), func(idx int) g.Node {
				class := "carousel-thumbnail"
				if idx == c.Index {
					class += " active"
				}
				return slide(idx, h.Class(class),
					h.Img(h.Src(safeURL(view.Images[idx])), h.Alt(fmt.Sprintf("Thumbnail %d", idx))),
				)
			}),
		),
	)
}

func ctaNode(cta content.CTAText) g.Node {
	if cta.Name == "" {
		return nil
	}
	return h.Form(h.Class("banner-cta"), h.Action("/cta"), h.Method("post"),
		hxPost("/cta"), hxSwap("none"),
		h.Input(h.Type("hidden"), h.Name("action"), h.Value(cta.Value)),
		h.Button(h.Type("submit"), g.Text(cta.Name)),
	)
}

func checklistNode(items []content.ChecklistItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Ul(h.Class("banner-checklist"),
		g.Map(items, func(item content.ChecklistItem) g.Node {
			return h.Li(h.Span(h.Class("check"), g.Text("✔")), h.P(g.Text(item.Text)))
		}),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
