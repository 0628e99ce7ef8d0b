// Package web parses web command configuration and starts the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	entrypoint "github.com/louisbranch/coursefront/internal/platform/cmd"
	"github.com/louisbranch/coursefront/internal/platform/logging"
	"github.com/louisbranch/coursefront/internal/platform/otel"
	"github.com/louisbranch/coursefront/internal/platform/timeouts"
	"github.com/louisbranch/coursefront/internal/services/web"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"COURSEFRONT_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"COURSEFRONT_WEB_DB_PATH" envDefault:"data/web-cache.db"`
	EndpointsFile       string        `env:"COURSEFRONT_ENDPOINTS_FILE"`
	APIBaseURL          string        `env:"COURSEFRONT_API_BASE_URL"`
	APITimeout          time.Duration `env:"COURSEFRONT_API_TIMEOUT" envDefault:"10s"`
	StaleTime           time.Duration `env:"COURSEFRONT_CONTENT_STALE_TIME" envDefault:"30s"`
	HTTPCache           bool          `env:"COURSEFRONT_HTTP_CACHE" envDefault:"false"`
	HTMLPolicy          string        `env:"COURSEFRONT_CMS_HTML_POLICY" envDefault:"sanitized"`
	TrustForwardedProto bool          `env:"COURSEFRONT_TRUST_FORWARDED_PROTO" envDefault:"false"`

	Logging   logging.Config
	Telemetry otel.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for the query cache and sessions")
	fs.StringVar(&cfg.EndpointsFile, "endpoints-file", cfg.EndpointsFile, "YAML endpoint registry overriding the embedded one")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Content API base URL overriding the registry")
	fs.BoolVar(&cfg.HTTPCache, "http-cache", cfg.HTTPCache, "Reuse backend responses that carry cache headers")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := trustedhtml.ParsePolicy(cfg.HTMLPolicy); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceWeb, cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	policy, err := trustedhtml.ParsePolicy(cfg.HTMLPolicy)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{
		Telemetry:       cfg.Telemetry,
		Logger:          &logger,
		ShutdownTimeout: timeouts.TelemetryShutdown,
	}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			DBPath:              cfg.DBPath,
			EndpointsFile:       cfg.EndpointsFile,
			APIBaseURL:          cfg.APIBaseURL,
			APITimeout:          cfg.APITimeout,
			StaleTime:           cfg.StaleTime,
			HTTPCache:           cfg.HTTPCache,
			HTMLPolicy:          policy,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
