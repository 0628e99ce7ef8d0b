package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Localizer provides translated strings for web components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// TOr returns the translation of key, or fallback when the catalog has none.
func TOr(loc Localizer, key string, fallback string) string {
	if loc == nil {
		return fallback
	}
	value := strings.TrimSpace(loc.Sprintf(key))
	if value == "" || value == key {
		return fallback
	}
	return value
}
