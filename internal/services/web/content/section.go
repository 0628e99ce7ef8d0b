package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind names one known section variant.
type Kind string

const (
	KindOffers      Kind = "offers"
	KindInstructors Kind = "instructors"
	KindFeatures    Kind = "features"
	KindPointers    Kind = "pointers"
	KindGroupJoin   Kind = "group_join_engagement"
	KindTestimonial Kind = "testimonials"
	KindAbout       Kind = "about"
	KindUnknown     Kind = ""
)

// ParseKind maps a raw section type onto a known kind.
func ParseKind(raw string) Kind {
	switch kind := Kind(strings.TrimSpace(raw)); kind {
	case KindOffers, KindInstructors, KindFeatures, KindPointers, KindGroupJoin, KindTestimonial, KindAbout:
		return kind
	}
	return KindUnknown
}

// ID is an optional value identifier sent as a JSON string or number.
type ID string

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// RawSection is a section as the CMS sends it.
type RawSection struct {
	Type        string            `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	BgColor     string            `json:"bg_color"`
	OrderIdx    int               `json:"order_idx"`
	Values      []json.RawMessage `json:"values"`
}

// Section is one decoded page section.
type Section struct {
	Kind        Kind
	Type        string
	Key         string
	Name        string
	Description string
	BgColor     string
	OrderIdx    int
	Body        Body
}

// Body is the typed payload of a section. The concrete types below are the
// complete set.
type Body interface {
	kind() Kind
}

type (
	OfferSection       struct{ Items []Offer }
	InstructorSection  struct{ Items []Instructor }
	FeatureSection     struct{ Items []Feature }
	PointerSection     struct{ Items []Pointer }
	GroupJoinSection   struct{ Items []GroupJoin }
	TestimonialSection struct{ Items []Testimonial }
	AboutSection       struct{ Items []About }
	// UnknownSection keeps the raw type of an unrecognized section.
	UnknownSection struct{ Type string }
)

func (OfferSection) kind() Kind       { return KindOffers }
func (InstructorSection) kind() Kind  { return KindInstructors }
func (FeatureSection) kind() Kind     { return KindFeatures }
func (PointerSection) kind() Kind     { return KindPointers }
func (GroupJoinSection) kind() Kind   { return KindGroupJoin }
func (TestimonialSection) kind() Kind { return KindTestimonial }
func (AboutSection) kind() Kind       { return KindAbout }
func (UnknownSection) kind() Kind     { return KindUnknown }

// KindOf returns the kind carried by body.
func KindOf(body Body) Kind {
	if body == nil {
		return KindUnknown
	}
	return body.kind()
}
