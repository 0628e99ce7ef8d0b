package content

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const samplePage = `{
  "slug": "ielts-course",
  "title": "IELTS Course",
  "media": [{"thumbnail_url": "https://cdn/a.jpg"}, {"resource_value": "https://cdn/b.jpg"}, {"name": "video"}],
  "cta_text": {"name": "Enroll", "value": "enroll"},
  "sections": [
    {"type": "offers", "order_idx": 3, "values": [{"id": 7, "text": "50% off"}]},
    {"type": "mystery", "name": "Hidden", "values": [{"text": "x"}]},
    {"type": "instructors", "name": "Instructors", "order_idx": 1, "values": [{"name": "Munzereen Shahid"}, {"id": "abc", "name": ""}]},
    {"type": "testimonials", "values": [{"name": "Rahim", "testimonial": "Great"}]}
  ]
}`

func decodeSample(t *testing.T) (Page, []Section) {
	t.Helper()
	var page Page
	if err := json.Unmarshal([]byte(samplePage), &page); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	return page, DecodeSections(context.Background(), page.Sections)
}

func TestDecodeSectionsKeepsBackendOrder(t *testing.T) {
	t.Parallel()

	_, sections := decodeSample(t)
	want := []Kind{KindOffers, KindUnknown, KindInstructors, KindTestimonial}
	if len(sections) != len(want) {
		t.Fatalf("sections = %d", len(sections))
	}
	for i, kind := range want {
		if sections[i].Kind != kind || KindOf(sections[i].Body) != kind {
			t.Fatalf("section %d kind = %q body %q, want %q", i, sections[i].Kind, KindOf(sections[i].Body), kind)
		}
	}
	if sections[0].OrderIdx != 3 || sections[2].OrderIdx != 1 {
		t.Fatalf("order_idx not carried: %+v", sections)
	}
}

func TestDecodeSectionsUnknownKeepsRawType(t *testing.T) {
	t.Parallel()

	_, sections := decodeSample(t)
	body, ok := sections[1].Body.(UnknownSection)
	if !ok || body.Type != "mystery" {
		t.Fatalf("body = %#v", sections[1].Body)
	}
}

func TestDecodeSectionsValueKeys(t *testing.T) {
	t.Parallel()

	_, sections := decodeSample(t)
	offers := sections[0].Body.(OfferSection).Items
	if offers[0].Key != "7" || offers[0].ID != "7" {
		t.Fatalf("numeric id key = %q id = %q", offers[0].Key, offers[0].ID)
	}
	instructors := sections[2].Body.(InstructorSection).Items
	if instructors[0].Key != "instructors-2-0" {
		t.Fatalf("positional key = %q", instructors[0].Key)
	}
	if instructors[1].Key != "abc" {
		t.Fatalf("string id key = %q", instructors[1].Key)
	}
}

func TestDecodeSectionsDropsMalformedValue(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx := logger.WithContext(context.Background())

	sections := DecodeSections(ctx, []RawSection{
		{Type: "about", Values: []json.RawMessage{json.RawMessage(`{"title": "About"}`)}},
		{Type: "offers", Values: []json.RawMessage{
			json.RawMessage(`{"text": 5}`),
			json.RawMessage(`{"text": "50% off"}`),
		}},
		{Type: "pointers", Values: []json.RawMessage{json.RawMessage(`{"text": "Speaking"}`)}},
	})
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	offers := sections[1].Body.(OfferSection).Items
	if len(offers) != 1 || offers[0].Text != "50% off" || offers[0].Key != "offers-1-1" {
		t.Fatalf("offers = %+v", offers)
	}
	if len(sections[0].Body.(AboutSection).Items) != 1 || len(sections[2].Body.(PointerSection).Items) != 1 {
		t.Fatalf("neighbouring sections lost values: %+v", sections)
	}
	if !strings.Contains(logs.String(), "dropping malformed section value") || !strings.Contains(logs.String(), `"section":"offers-1"`) {
		t.Fatalf("logs = %s", logs.String())
	}
}

func TestIDAcceptsNull(t *testing.T) {
	t.Parallel()

	var v Offer
	if err := json.Unmarshal([]byte(`{"id": null, "text": "x"}`), &v); err != nil || v.ID != "" {
		t.Fatalf("id = %q err = %v", v.ID, err)
	}
}

func TestPageImagesPreferThumbnail(t *testing.T) {
	t.Parallel()

	page, _ := decodeSample(t)
	images := page.Images()
	if len(images) != 2 || images[0] != "https://cdn/a.jpg" || images[1] != "https://cdn/b.jpg" {
		t.Fatalf("images = %v", images)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if Initial("", DefaultInstructorInitial) != "I" || Initial("মুনজেরিন", "I") != "ম" {
		t.Fatal("initial mismatch")
	}
	if (Feature{}).Text() != DefaultFeatureText {
		t.Fatal("feature default")
	}
	if (Feature{Description: "d"}).Text() != "d" || (Feature{Subtitle: "s", Description: "d"}).Text() != "s" {
		t.Fatal("feature fallback chain")
	}
	if (GroupJoin{}).CTAText() != "Join Now" {
		t.Fatal("group join default")
	}
}

func TestTestimonialsFindsFirstSection(t *testing.T) {
	t.Parallel()

	_, sections := decodeSample(t)
	items := Testimonials(sections)
	if len(items) != 1 || items[0].Name != "Rahim" {
		t.Fatalf("testimonials = %+v", items)
	}
}
