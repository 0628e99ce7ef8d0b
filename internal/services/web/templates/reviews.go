package templates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// ReviewsListID is the element id of the review list.
const ReviewsListID = "reviews-list"

// ReviewItem is one student review.
type ReviewItem struct {
	ID           string
	Name         string
	Testimonial  string
	ProfileImage string
	Tags         []string
}

// ReviewsView is the reviews page.
type ReviewsView struct {
	Items     []ReviewItem
	Page      int
	PageCount int
	Total     int
	SignedIn  bool
	Loc       Localizer
}

// ReviewsPage renders the review list and the submission form.
func ReviewsPage(view ReviewsView) templ.Component {
	return component(func(ctx context.Context) g.Node {
		loc := view.Loc
		return h.Div(h.Class("reviews-page"),
			h.H1(g.Text(TOr(loc, "reviews.title", "Student reviews"))),
			reviewsListNode(view),
			g.If(view.SignedIn, reviewFormNode(loc)),
		)
	})
}

// ReviewsList renders the list alone for HTMX refreshes.
func ReviewsList(view ReviewsView) templ.Component {
	return component(func(context.Context) g.Node {
		return reviewsListNode(view)
	})
}

func reviewsListNode(view ReviewsView) g.Node {
	loc := view.Loc
	page := max(view.Page, 1)
	pageCount := max(view.PageCount, 1)
	var items g.Node = h.P(h.Class("reviews-empty"), g.Text(TOr(loc, "reviews.empty", "No reviews yet.")))
	if len(view.Items) > 0 {
		items = h.Ul(h.Class("reviews"),
			g.Map(view.Items, func(item ReviewItem) g.Node {
				return reviewNode(item, view.SignedIn, loc)
			}),
		)
	}
	return h.Div(h.ID(ReviewsListID),
		items,
		h.Nav(h.Class("pager"),
			g.If(page > 1, h.A(h.Href(ReviewsPageURL(page-1)), g.Text(TOr(loc, "reviews.previous", "Previous")))),
			h.Span(g.Text(pageLabel(loc, page, pageCount))),
			g.If(page < pageCount, h.A(h.Href(ReviewsPageURL(page+1)), g.Text(TOr(loc, "reviews.next", "Next")))),
		),
	)
}

func pageLabel(loc Localizer, page, pageCount int) string {
	if loc == nil {
		return fmt.Sprintf("Page %d of %d", page, pageCount)
	}
	return loc.Sprintf("reviews.page", page, pageCount)
}

// ReviewsPageURL returns the reviews list URL for page.
func ReviewsPageURL(page int) string {
	if page <= 1 {
		return "/reviews"
	}
	return "/reviews?page=" + strconv.Itoa(page)
}

func reviewNode(item ReviewItem, signedIn bool, loc Localizer) g.Node {
	return h.Li(h.Class("review"),
		portrait(item.ProfileImage, content.Or(item.Name, "Student"), content.Initial(item.Name, content.DefaultTestimonialInitial)),
		h.H3(g.Text(item.Name)),
		h.P(h.Class("quote"), g.Text(item.Testimonial)),
		g.If(len(item.Tags) > 0, h.Ul(h.Class("tags"),
			g.Map(item.Tags, func(tag string) g.Node { return h.Li(g.Text(tag)) }),
		)),
		g.If(signedIn && item.ID != "", h.Form(h.Action(routepath.ReviewDelete(item.ID)), h.Method("post"),
			hxDelete(routepath.Review(item.ID)), hxTarget("#"+ReviewsListID), hxSwap("outerHTML"),
			hxConfirm(TOr(loc, "reviews.delete", "Delete")+"?"),
			h.Button(h.Type("submit"), g.Text(TOr(loc, "reviews.delete", "Delete"))),
		)),
	)
}

func reviewFormNode(loc Localizer) g.Node {
	field := func(id, labelKey, fallback string, input g.Node) g.Node {
		return h.Div(h.Class("field"),
			h.Label(h.For(id), g.Text(TOr(loc, labelKey, fallback))),
			input,
		)
	}
	return h.Form(h.Class("review-form"), h.Action("/reviews"), h.Method("post"), g.Attr("enctype", "multipart/form-data"),
		field("review-name", "reviews.name", "Name", h.Input(h.ID("review-name"), h.Type("text"), h.Name("name"))),
		field("review-testimonial", "reviews.testimonial", "Testimonial", h.Textarea(h.ID("review-testimonial"), h.Name("testimonial"))),
		field("review-image", "reviews.profile_image", "Profile image", h.Input(h.ID("review-image"), h.Type("file"), h.Name("profile_image"), g.Attr("accept", "image/*"))),
		field("review-tags", "reviews.tags", "Tags", h.Input(h.ID("review-tags"), h.Type("text"), h.Name("tags"))),
		h.Button(h.Type("submit"), g.Text(TOr(loc, "reviews.submit", "Submit review"))),
	)
}
