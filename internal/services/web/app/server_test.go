package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
)

func TestBuildRootHandlerUsesSessionState(t *testing.T) {
	t.Parallel()

	h, err := BuildRootHandler(Config{
		ProtectedModules: []module.Module{
			stubModule{id: "reviews", mount: module.Mount{Prefix: "/reviews", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("BuildRootHandler() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("signed-out status = %d, want %d", rr.Code, http.StatusSeeOther)
	}

	req = httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req = req.WithContext(webctx.WithState(req.Context(), webctx.State{SignedIn: true}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("signed-in status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}
