// Package flash collects user notices for the current response and carries
// them across redirects in a one-time cookie.
package flash

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding notices for the next page render.
const CookieName = "cf_flash"

// maxCookieNotices bounds the cookie payload.
const maxCookieNotices = 8

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is one toast message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notices is a request-scoped notice collector. It is safe for concurrent use.
type Notices struct {
	mu    sync.Mutex
	items []Notice
}

// Add appends a notice. Blank messages and unknown kinds are dropped.
func (n *Notices) Add(kind Kind, message string) {
	if n == nil {
		return
	}
	notice, ok := normalize(Notice{Kind: kind, Message: message})
	if !ok {
		return
	}
	n.mu.Lock()
	n.items = append(n.items, notice)
	n.mu.Unlock()
}

// NotifySuccess records a success notice.
func (n *Notices) NotifySuccess(message string) { n.Add(KindSuccess, message) }

// NotifyError records an error notice.
func (n *Notices) NotifyError(message string) { n.Add(KindError, message) }

// Info records an informational notice.
func (n *Notices) Info(message string) { n.Add(KindInfo, message) }

// List returns a copy of the collected notices.
func (n *Notices) List() []Notice {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.items...)
}

// Drain returns the collected notices and empties the collector.
func (n *Notices) Drain() []Notice {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.items
	n.items = nil
	return out
}

type noticesKey struct{}

// WithNotices attaches a fresh collector to ctx.
func WithNotices(ctx context.Context) (context.Context, *Notices) {
	notices := &Notices{}
	return context.WithValue(ctx, noticesKey{}, notices), notices
}

// FromContext returns the collector attached to ctx. It returns a detached
// collector when none is present so callers never need a nil check.
func FromContext(ctx context.Context) *Notices {
	if ctx != nil {
		if notices, ok := ctx.Value(noticesKey{}).(*Notices); ok {
			return notices
		}
	}
	return &Notices{}
}

// Write stores notices in the flash cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notices []Notice) {
	WriteWithPolicy(w, r, notices, requestmeta.SchemePolicy{})
}

// WriteWithPolicy stores notices in the flash cookie.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, notices []Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	normalized := make([]Notice, 0, len(notices))
	for _, notice := range notices {
		if n, ok := normalize(notice); ok {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return
	}
	if len(normalized) > maxCookieNotices {
		normalized = normalized[len(normalized)-maxCookieNotices:]
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the notices stored in the flash cookie and expires it.
func ReadAndClear(w http.ResponseWriter, r *http.Request) []Notice {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	Clear(w, r)
	return decode(cookie.Value)
}

// Clear expires the flash cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decode(raw string) []Notice {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(decoded, &notices); err != nil {
		return nil
	}
	out := notices[:0]
	for _, notice := range notices {
		if n, ok := normalize(notice); ok {
			out = append(out, n)
		}
	}
	return out
}

func normalize(notice Notice) (Notice, bool) {
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
