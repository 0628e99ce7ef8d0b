package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// DecodeSections turns raw sections into typed sections in input order.
// Values that do not match their section's shape are dropped and logged to
// the context logger; the rest of the page still decodes.
func DecodeSections(ctx context.Context, raw []RawSection) []Section {
	logger := zerolog.Ctx(ctx)
	out := make([]Section, 0, len(raw))
	for idx, rs := range raw {
		out = append(out, decodeSection(logger, idx, rs))
	}
	return out
}

func decodeSection(logger *zerolog.Logger, idx int, rs RawSection) Section {
	rawType := strings.TrimSpace(rs.Type)
	section := Section{
		Kind:        ParseKind(rawType),
		Type:        rawType,
		Key:         SectionKey(rawType, idx),
		Name:        rs.Name,
		Description: rs.Description,
		BgColor:     rs.BgColor,
		OrderIdx:    rs.OrderIdx,
	}

	skip := func(valueIdx int, err error) {
		logger.Warn().Err(err).Str("section", section.Key).Int("value", valueIdx).Msg("dropping malformed section value")
	}
	switch section.Kind {
	case KindOffers:
		items := decodeValues(section.Key, rs.Values, skip, func(v *Offer, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = OfferSection{Items: items}
	case KindInstructors:
		items := decodeValues(section.Key, rs.Values, skip, func(v *Instructor, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = InstructorSection{Items: items}
	case KindFeatures:
		items := decodeValues(section.Key, rs.Values, skip, func(v *Feature, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = FeatureSection{Items: items}
	case KindPointers:
		items := decodeValues(section.Key, rs.Values, skip, func(v *Pointer, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = PointerSection{Items: items}
	case KindGroupJoin:
		items := decodeValues(section.Key, rs.Values, skip, func(v *GroupJoin, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = GroupJoinSection{Items: items}
	case KindTestimonial:
		items := decodeValues(section.Key, rs.Values, skip, func(v *Testimonial, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = TestimonialSection{Items: items}
	case KindAbout:
		items := decodeValues(section.Key, rs.Values, skip, func(v *About, key string) { v.Key = keyOr(v.ID, key) })
		section.Body = AboutSection{Items: items}
	default:
		section.Body = UnknownSection{Type: rawType}
	}
	return section
}

// SectionKey returns the positional key for the section at idx.
func SectionKey(sectionType string, idx int) string {
	sectionType = strings.TrimSpace(sectionType)
	if sectionType == "" {
		sectionType = "section"
	}
	return fmt.Sprintf("%s-%d", sectionType, idx)
}

// ValueKey returns id, or the positional key when id is absent.
func ValueKey(id ID, sectionKey string, idx int) string {
	return keyOr(id, fmt.Sprintf("%s-%d", sectionKey, idx))
}

func keyOr(id ID, fallback string) string {
	if value := strings.TrimSpace(string(id)); value != "" {
		return value
	}
	return fallback
}

// decodeValues keeps positional keys tied to the raw index so dropping a
// value does not shift its siblings' keys.
func decodeValues[T any](sectionKey string, raw []json.RawMessage, skip func(int, error), setKey func(*T, string)) []T {
	items := make([]T, 0, len(raw))
	for idx, msg := range raw {
		var item T
		if err := json.Unmarshal(msg, &item); err != nil {
			skip(idx, err)
			continue
		}
		setKey(&item, fmt.Sprintf("%s-%d", sectionKey, idx))
		items = append(items, item)
	}
	return items
}
