package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolveTagPrefersQueryThenCookieThenHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "bn"})
	tag, persist := ResolveTag(req)
	if Code(tag) != "en" || !persist {
		t.Fatalf("query: tag=%s persist=%v", tag, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	req.Header.Set("Accept-Language", "bn")
	tag, persist = ResolveTag(req)
	if Code(tag) != "en" || persist {
		t.Fatalf("cookie: tag=%s persist=%v", tag, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	tag, _ = ResolveTag(req)
	if Code(tag) != "en" {
		t.Fatalf("header: tag=%s", tag)
	}
}

func TestResolveTagDefaultsToBangla(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(httptest.NewRequest(http.MethodGet, "/?lang=xx", nil))
	if Code(tag) != "bn" || persist {
		t.Fatalf("tag=%s persist=%v", tag, persist)
	}
	if tag, _ := ResolveTag(nil); Code(tag) != "bn" {
		t.Fatalf("nil request tag = %s", tag)
	}
}

func TestSetLanguageCookieLastsOneYear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, English)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "lang" || c.Value != "en" || c.Path != "/" {
		t.Fatalf("cookie = %+v", c)
	}
	if c.MaxAge != int((365 * 24 * time.Hour).Seconds()) {
		t.Fatalf("max age = %d", c.MaxAge)
	}
}

func TestToggleSwitchesLanguage(t *testing.T) {
	t.Parallel()

	if Code(Toggle(Bangla)) != "en" || Code(Toggle(English)) != "bn" {
		t.Fatal("toggle mismatch")
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	if got := Text(Printer(English), "nav.menu.admission", "x"); got != "Admission" {
		t.Fatalf("en admission = %q", got)
	}
	if got := Text(Printer(Bangla), "nav.menu.admission", "x"); got != "ভর্তি পরীক্ষা" {
		t.Fatalf("bn admission = %q", got)
	}
	if got := Text(Printer(English), "missing.key", "fallback"); got != "fallback" {
		t.Fatalf("missing = %q", got)
	}
}
