// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root     = "/"
	Home     = "/{$}"
	Login    = "/login"
	Logout   = "/logout"
	Health   = "/up"
	CTA      = "/cta"
	Lang     = "/lang"
	Checkout = "/checkout"

	ProductPrefix              = "/product/"
	ProductPattern             = ProductPrefix + "{slug}"
	ProductCarouselPattern     = ProductPrefix + "{slug}/carousel"
	ProductTestimonialsPattern = ProductPrefix + "{slug}/testimonials/{idx}"

	Reviews             = "/reviews"
	ReviewsPrefix       = "/reviews/"
	ReviewPattern       = ReviewsPrefix + "{reviewID}"
	ReviewDeletePattern = ReviewsPrefix + "{reviewID}/delete"
)

// Product returns the course page path for slug.
func Product(slug string) string {
	return ProductPrefix + escapeSegment(slug)
}

// ProductCarousel returns the banner slider fragment path for slug.
func ProductCarousel(slug string) string {
	return Product(slug) + "/carousel"
}

// ProductTestimonials returns the testimonial strip fragment path for the
// section at idx.
func ProductTestimonials(slug string, idx int) string {
	return Product(slug) + "/testimonials/" + strconv.Itoa(idx)
}

// Review returns the path of one review.
func Review(reviewID string) string {
	return ReviewsPrefix + escapeSegment(reviewID)
}

// ReviewDelete returns the form-post delete path of one review.
func ReviewDelete(reviewID string) string {
	return Review(reviewID) + "/delete"
}

// LoginWithNext returns the login path returning to next afterwards.
func LoginWithNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + url.Values{"next": {next}}.Encode()
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
