// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/coursefront/internal/services/web/platform/i18n"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests receive the fragment
// and an out-of-band toast refresh; other requests receive the full layout
// with pending flash notices and the notices collected during the request.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if httpx.IsHTMXRequest(r) {
		return WriteFragment(w, r, statusCode, fragment)
	}

	ctx := httpx.RequestContext(r)
	state := webctx.FromContext(ctx)
	toasts := Toasts(append(flash.ReadAndClear(w, r), flash.FromContext(ctx).Drain()...))
	path, query := "", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}

	layout := webtemplates.Layout(webtemplates.LayoutOptions{
		Title:        page.Title,
		Lang:         webi18n.Code(state.Language),
		Loc:          webctx.Localizer(ctx),
		CurrentPath:  path,
		CurrentQuery: query,
		SignedIn:     state.SignedIn,
		Toasts:       toasts,
	})
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return write(w, statusCode, buf.Bytes())
}

// WriteFragment writes a partial response followed by any notices collected
// during the request as an out-of-band toast swap.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if err := fragment.Render(ctx, &buf); err != nil {
		return err
	}
	if toasts := Toasts(flash.FromContext(ctx).Drain()); len(toasts) > 0 {
		if err := webtemplates.ToastsOOB(toasts).Render(ctx, &buf); err != nil {
			return err
		}
	}
	return write(w, statusCode, buf.Bytes())
}

// Toasts converts notices into template toasts.
func Toasts(notices []flash.Notice) []webtemplates.Toast {
	out := make([]webtemplates.Toast, 0, len(notices))
	for _, notice := range notices {
		out = append(out, webtemplates.Toast{Kind: string(notice.Kind), Message: notice.Message})
	}
	return out
}

func write(w http.ResponseWriter, statusCode int, body []byte) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(body)
	return err
}
