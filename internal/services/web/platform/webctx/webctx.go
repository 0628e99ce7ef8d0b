// Package webctx carries per-request web state: the resolved language, the
// signed-in session and the notice collector.
package webctx

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	webi18n "github.com/louisbranch/coursefront/internal/services/web/platform/i18n"
	"github.com/louisbranch/coursefront/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/coursefront/internal/services/web/storage"
)

// State is the request-scoped view of the visitor.
type State struct {
	Language language.Tag
	Session  storage.Session
	SignedIn bool
}

type stateKey struct{}

// WithState attaches state to ctx.
func WithState(ctx context.Context, state State) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stateKey{}, state)
}

// FromContext returns the request state, defaulting the language when absent.
func FromContext(ctx context.Context) State {
	if ctx != nil {
		if state, ok := ctx.Value(stateKey{}).(State); ok {
			return state
		}
	}
	return State{Language: webi18n.Default()}
}

// Language returns the resolved request language.
func Language(ctx context.Context) language.Tag {
	return FromContext(ctx).Language
}

// LanguageCode returns the short language code (bn or en).
func LanguageCode(ctx context.Context) string {
	return webi18n.Code(Language(ctx))
}

// Token returns the bearer token of the signed-in session, if any.
func Token(ctx context.Context) string {
	state := FromContext(ctx)
	if !state.SignedIn {
		return ""
	}
	return state.Session.AccessToken
}

// Localizer returns a printer for the request language.
func Localizer(ctx context.Context) webi18n.Localizer {
	return webi18n.Printer(Language(ctx))
}

// Middleware resolves request state once per request. A `lang` query
// parameter is persisted to the language cookie.
func Middleware(sessions storage.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, persist := webi18n.ResolveTag(r)
			if persist {
				webi18n.SetLanguageCookie(w, tag)
			}
			state := State{Language: tag}

			ctx := r.Context()
			if sessionID, ok := sessioncookie.Read(r); ok && sessions != nil {
				session, found, err := sessions.LoadSession(ctx, sessionID)
				switch {
				case err != nil:
					zerolog.Ctx(ctx).Warn().Err(err).Msg("load session")
				case found:
					state.Session = session
					state.SignedIn = true
				}
			}

			ctx, _ = flash.WithNotices(WithState(ctx, state))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
