package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/coursefront/internal/services/web/platform/errors"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSignInUsesJWTExpiryAndName(t *testing.T) {
	t.Parallel()

	store := newFakeSessionStore()
	svc := newService(store, func() time.Time { return fixedNow })
	exp := fixedNow.Add(2 * time.Hour)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix(), "name": " Asha "})

	session, err := svc.signIn(context.Background(), token)
	if err != nil {
		t.Fatalf("signIn() error = %v", err)
	}
	if !session.ExpiresAt.Equal(exp) {
		t.Fatalf("ExpiresAt = %v, want %v", session.ExpiresAt, exp)
	}
	if session.DisplayName != "Asha" || session.AccessToken != token || session.ID == "" {
		t.Fatalf("session = %+v", session)
	}
	if stored, ok := store.only(); !ok || stored.ID != session.ID {
		t.Fatalf("stored = %+v ok = %v", stored, ok)
	}
}

func TestSignInOpaqueTokenGetsDefaultTTL(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeSessionStore(), func() time.Time { return fixedNow })
	session, err := svc.signIn(context.Background(), "  opaque-token  ")
	if err != nil {
		t.Fatalf("signIn() error = %v", err)
	}
	if session.AccessToken != "opaque-token" {
		t.Fatalf("AccessToken = %q", session.AccessToken)
	}
	if !session.ExpiresAt.Equal(fixedNow.Add(DefaultTTL)) {
		t.Fatalf("ExpiresAt = %v", session.ExpiresAt)
	}
}

func TestSignInRejectsBlankAndExpiredTokens(t *testing.T) {
	t.Parallel()

	store := newFakeSessionStore()
	svc := newService(store, func() time.Time { return fixedNow })

	_, err := svc.signIn(context.Background(), " ")
	messages, ok := validationMessages(err)
	if !ok || len(messages) != 1 || messages[0] != "Please enter access token." {
		t.Fatalf("blank token err = %v", err)
	}

	expired := signedToken(t, jwt.MapClaims{"exp": fixedNow.Add(-time.Minute).Unix()})
	_, err = svc.signIn(context.Background(), expired)
	if _, ok := validationMessages(err); !ok {
		t.Fatalf("expired token err = %v", err)
	}
	if _, ok := store.only(); ok {
		t.Fatal("rejected token was stored")
	}
}

func TestSignInStoreFailures(t *testing.T) {
	t.Parallel()

	if _, err := newService(nil, nil).signIn(context.Background(), "tok"); apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("nil store err = %v", err)
	}
	store := newFakeSessionStore()
	store.saveErr = errors.New("locked")
	_, err := newService(store, nil).signIn(context.Background(), "tok")
	if apperrors.KindOf(err) != apperrors.KindUnavailable || !errors.Is(err, store.saveErr) {
		t.Fatalf("save err = %v", err)
	}
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	store := newFakeSessionStore()
	svc := newService(store, nil)
	if err := svc.signOut(context.Background(), ""); err != nil {
		t.Fatalf("blank signOut() error = %v", err)
	}
	if err := svc.signOut(context.Background(), "s1"); err != nil {
		t.Fatalf("signOut() error = %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "s1" {
		t.Fatalf("deleted = %v", store.deleted)
	}
	if err := svc.signOut(context.Background(), "broken"); err == nil {
		t.Fatal("expected delete error")
	}
}
