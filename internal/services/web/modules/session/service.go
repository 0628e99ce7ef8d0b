package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	apperrors "github.com/louisbranch/coursefront/internal/services/web/platform/errors"
	"github.com/louisbranch/coursefront/internal/services/web/storage"
)

// DefaultTTL bounds sessions whose token carries no expiry.
const DefaultTTL = 24 * time.Hour

var errNoStore = apperrors.E(apperrors.KindUnavailable, "session store is not configured")

type service struct {
	sessions storage.SessionStore
	now      func() time.Time
}

func newService(sessions storage.SessionStore, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{sessions: sessions, now: now}
}

// signIn validates token and stores a new session for it. Tokens that parse
// as JWTs lend their exp and name claims; the signature is verified by the
// backend on every call, not here.
func (s service) signIn(ctx context.Context, token string) (storage.Session, error) {
	token = strings.TrimSpace(token)
	if err := gateway.Validate(map[string]any{"token": token}, []gateway.RequiredField{
		{Key: "token", Value: "access token", Label: gateway.LabelText},
	}); err != nil {
		return storage.Session{}, err
	}
	if s.sessions == nil {
		return storage.Session{}, errNoStore
	}

	now := s.now().UTC()
	session := storage.Session{
		ID:          uuid.NewString(),
		AccessToken: token,
		CreatedAt:   now,
		ExpiresAt:   now.Add(DefaultTTL),
	}
	if claims, ok := parseClaims(token); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if !exp.After(now) {
				return storage.Session{}, &gateway.ValidationError{Messages: []string{"The access token has expired."}}
			}
			session.ExpiresAt = exp.UTC()
		}
		if name, ok := claims["name"].(string); ok {
			session.DisplayName = strings.TrimSpace(name)
		}
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return storage.Session{}, apperrors.Wrap(apperrors.KindUnavailable, "save session", err)
	}
	return session, nil
}

func (s service) signOut(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || s.sessions == nil {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "delete session", err)
	}
	return nil
}

func parseClaims(token string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// validationMessages returns the user-facing messages of a sign-in
// validation failure.
func validationMessages(err error) ([]string, bool) {
	var validation *gateway.ValidationError
	if !errors.As(err, &validation) {
		return nil, false
	}
	return validation.Messages, true
}
