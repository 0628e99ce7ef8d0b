// Package i18n resolves the request language and exposes localized printers
// backed by the embedded message catalogs.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/coursefront/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "lang"
)

var (
	// Bangla is the default site language.
	Bangla = language.Bengali
	// English is the alternate site language.
	English = language.English

	supported = []language.Tag{Bangla, English}
	matcher   = language.NewMatcher(supported)
)

// Localizer formats catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

func init() {
	// Registers catalog messages with x/text before any printer is created.
	_ = catalog.Default()
}

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return Bangla
}

// Parse maps a raw value onto a supported tag.
func Parse(value string) (language.Tag, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "bn", "bn-bd":
		return Bangla, true
	case "en", "en-us", "en-gb":
		return English, true
	}
	return language.Und, false
}

// Normalize coerces unknown values to the default language.
func Normalize(value string) language.Tag {
	if tag, ok := Parse(value); ok {
		return tag
	}
	return Default()
}

// Code returns the short code sent to the content API and stored in cookies.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Toggle returns the other supported language.
func Toggle(tag language.Tag) language.Tag {
	if Code(tag) == Code(English) {
		return Bangla
	}
	return English
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the tag came from the query parameter and
// should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
			if tag, ok := Parse(raw); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language for one year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    Code(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Normalize(Code(tag)))
}

// Text localizes key, returning fallback when the catalog has no entry.
func Text(loc Localizer, key string, fallback string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return fallback
}
