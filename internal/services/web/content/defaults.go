package content

import (
	"strings"
	"unicode/utf8"
)

// Display fallbacks so partially populated CMS content never leaves a blank
// region.
const (
	DefaultInstructorsDescription = "Learn from industry experts with years of experience"
	DefaultInstructorBio          = "Expert instructor with extensive experience in the field."
	DefaultInstructorInitial      = "I"
	DefaultFeaturesDescription    = "Everything you need to succeed in your learning journey"
	DefaultFeatureText            = "Comprehensive feature designed to enhance your learning experience."
	DefaultFeatureInitial         = "F"
	DefaultPointersDescription    = "Key benefits you'll get from this course"
	DefaultGroupJoinCTA           = "Join Now"
	DefaultTestimonialsDesc       = "What our students say about their experience"
	DefaultTestimonialInitial     = "U"
	DefaultAboutTitle             = "Course Information"
	DefaultAboutDescription       = "Comprehensive course content designed to help you achieve your goals."
)

// TestimonialStars is the fixed star decoration on testimonial cards.
const TestimonialStars = 5

// Or returns value, or fallback when value is blank.
func Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// Initial returns the first character of name, or fallback when blank.
func Initial(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}

// Text returns the subtitle, then the description, then the default copy.
func (f Feature) Text() string {
	return Or(f.Subtitle, Or(f.Description, DefaultFeatureText))
}

// CTAText returns the call-to-action label with its default.
func (g GroupJoin) CTAText() string {
	return Or(g.CTA.Text, DefaultGroupJoinCTA)
}
