package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/coursefront/internal/platform/endpoints"
	"github.com/louisbranch/coursefront/internal/platform/timeouts"
	webapp "github.com/louisbranch/coursefront/internal/services/web/app"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	module "github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/modules"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/platform/observability"
	"github.com/louisbranch/coursefront/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
	webstatic "github.com/louisbranch/coursefront/internal/services/web/static"
	"github.com/louisbranch/coursefront/internal/services/web/storage"
	"github.com/louisbranch/coursefront/internal/services/web/storage/sqlite"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	DBPath   string
	// EndpointsFile overrides the embedded endpoint registry when set.
	EndpointsFile string
	// APIBaseURL overrides the registry base URL when set.
	APIBaseURL          string
	APITimeout          time.Duration
	StaleTime           time.Duration
	HTTPCache           bool
	HTMLPolicy          trustedhtml.Policy
	TrustForwardedProto bool
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
	logger     zerolog.Logger
}

// HandlerConfig carries the collaborators NewHandler composes.
type HandlerConfig struct {
	Dependencies module.Dependencies
	Logger       zerolog.Logger
}

// NewHandler builds the root handler from the default module groups.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	deps := cfg.Dependencies
	public := modules.DefaultPublicModules(deps)
	protected := modules.DefaultProtectedModules(deps)
	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:    public,
		ProtectedModules: protected,
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Health, healthHandler(append(public, protected...)))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		httpx.RecoverPanic(),
		httpx.RequireSameOrigin(deps.SchemePolicy),
		webctx.Middleware(deps.Sessions),
	), nil
}

// healthHandler answers 200 while every reporting module is healthy and 503
// otherwise.
func healthHandler(mods []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var down []string
		for _, m := range mods {
			if reporter, ok := m.(module.HealthReporter); ok && !reporter.Healthy() {
				down = append(down, m.ID())
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(down) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, "DEGRADED %s", strings.Join(down, ","))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// NewServer validates config, opens the store and composes the handler.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = timeouts.APIRequest
	}
	logger := zerolog.Ctx(ctx).With().Logger()

	registry, err := endpoints.Load(cfg.EndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("load endpoints: %w", err)
	}
	registry, err = registry.WithBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}

	store, err := openStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	now := time.Now
	deps := module.Dependencies{
		Endpoints:    registry,
		Clients:      module.NewClientFactory(gateway.NewHTTPClient(cfg.APITimeout, cfg.HTTPCache), gateway.NewQueryCache(store), now),
		Sessions:     store,
		HTMLPolicy:   cfg.HTMLPolicy,
		StaleTime:    cfg.StaleTime,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Now:          now,
	}
	handler, err := NewHandler(HandlerConfig{Dependencies: deps, Logger: logger})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           otelhttp.NewHandler(handler, "web"),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:  store,
		logger: logger,
	}, nil
}

func openStore(path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open web store: %w", err)
	}
	return store, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", s.httpAddr).Msg("web listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close releases the HTTP listener and the store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("close web store")
		}
	}
}
