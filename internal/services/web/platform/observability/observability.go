// Package observability provides request logging middleware.
package observability

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"
)

// RequestLogger installs logger in the request context and logs one line per
// request with method, path, status, bytes, latency and request id.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
			reqLogger := logger.With().Str("request_id", requestID).Logger()
			r = r.WithContext(reqLogger.WithContext(r.Context()))

			metrics := httpsnoop.CaptureMetrics(next, w, r)

			event := reqLogger.Info()
			if metrics.Code >= http.StatusInternalServerError {
				event = reqLogger.Error()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", metrics.Code).
				Int64("bytes", metrics.Written).
				Dur("latency", metrics.Duration).
				Msg("http request")
		})
	}
}
