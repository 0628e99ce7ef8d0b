package content

import "strings"

// Media is one banner slide.
type Media struct {
	Name          string `json:"name"`
	ResourceType  string `json:"resource_type"`
	ThumbnailURL  string `json:"thumbnail_url"`
	ResourceValue string `json:"resource_value"`
}

// ImageURL prefers the thumbnail over the resource value.
func (m Media) ImageURL() string {
	if url := strings.TrimSpace(m.ThumbnailURL); url != "" {
		return url
	}
	return strings.TrimSpace(m.ResourceValue)
}

// ChecklistItem is one banner checklist line.
type ChecklistItem struct {
	ID   ID     `json:"id"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// CTAText is the banner call to action. Value selects the action.
type CTAText struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Page is the course page payload. Description is CMS HTML.
type Page struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Media       []Media         `json:"media"`
	Checklist   []ChecklistItem `json:"checklist"`
	CTAText     CTAText         `json:"cta_text"`
	Sections    []RawSection    `json:"sections"`
}

// Images returns the slide image URLs, skipping slides without one.
func (p Page) Images() []string {
	out := make([]string, 0, len(p.Media))
	for _, m := range p.Media {
		if url := m.ImageURL(); url != "" {
			out = append(out, url)
		}
	}
	return out
}

// Testimonials returns the values of the first testimonials section.
func Testimonials(sections []Section) []Testimonial {
	for _, section := range sections {
		if body, ok := section.Body.(TestimonialSection); ok {
			return body.Items
		}
	}
	return nil
}
