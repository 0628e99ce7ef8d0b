package observability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buffer *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buffer.String(), err)
	}
	return line
}

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/product/ielts-course", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	line := decodeLine(t, &buffer)
	if line["method"] != "GET" || line["path"] != "/product/ielts-course" || line["request_id"] != "req-123" {
		t.Fatalf("unexpected line %v", line)
	}
	if line["status"] != float64(http.StatusNoContent) {
		t.Fatalf("status field = %v", line["status"])
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	line := decodeLine(t, &buffer)
	if line["status"] != float64(http.StatusOK) || line["bytes"] != float64(2) {
		t.Fatalf("unexpected line %v", line)
	}
	if _, ok := line["latency"]; !ok {
		t.Fatalf("latency missing: %v", line)
	}
}

func TestRequestLoggerInstallsContextLogger(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !bytes.Contains(buffer.Bytes(), []byte(`"message":"inside"`)) {
		t.Fatalf("handler log missing: %q", buffer.String())
	}
}
