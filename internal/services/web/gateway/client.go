package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 8 << 20

// Notifier receives user-facing notices produced by gateway calls.
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
}

// Config wires one gateway client. Token is resolved by the caller, usually
// once per incoming request.
type Config struct {
	HTTPClient *http.Client
	Token      string
	Notifier   Notifier
	Cache      *QueryCache
	Logger     *zerolog.Logger
	Now        func() time.Time
}

// Client issues backend calls for one caller identity.
type Client struct {
	httpClient *http.Client
	token      string
	notifier   Notifier
	cache      *QueryCache
	logger     zerolog.Logger
	now        func() time.Time
}

// New builds a client from cfg, filling defaults for nil collaborators.
func New(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		token:      strings.TrimSpace(cfg.Token),
		notifier:   cfg.Notifier,
		cache:      cfg.Cache,
		logger:     zerolog.Nop(),
		now:        cfg.Now,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.notifier == nil {
		c.notifier = discardNotifier{}
	}
	if cfg.Logger != nil {
		c.logger = cfg.Logger.With().Str("component", "gateway").Logger()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// NewHTTPClient returns the traced HTTP client used for backend calls. When
// httpCache is set, responses carrying cache headers are reused in memory.
func NewHTTPClient(timeout time.Duration, httpCache bool) *http.Client {
	var base http.RoundTripper = http.DefaultTransport
	if httpCache {
		base = httpcache.NewMemoryCacheTransport()
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(base),
	}
}

// Token reports the bearer token this client forwards.
func (c *Client) Token() string {
	return c.token
}

// Response is a raw 2xx backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get issues a GET.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodGet, url, nil, "")
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, url, nil, "")
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, url string, body map[string]any) (*Response, error) {
	return c.sendJSON(ctx, http.MethodPost, url, body)
}

// Patch sends body as JSON.
func (c *Client) Patch(ctx context.Context, url string, body map[string]any) (*Response, error) {
	return c.sendJSON(ctx, http.MethodPatch, url, body)
}

// PostForm sends body as multipart/form-data.
func (c *Client) PostForm(ctx context.Context, url string, body map[string]any) (*Response, error) {
	return c.sendForm(ctx, http.MethodPost, url, body)
}

// PatchForm sends body as multipart/form-data.
func (c *Client) PatchForm(ctx context.Context, url string, body map[string]any) (*Response, error) {
	return c.sendForm(ctx, http.MethodPatch, url, body)
}

func (c *Client) sendJSON(ctx context.Context, method, url string, body map[string]any) (*Response, error) {
	if body == nil {
		body = map[string]any{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("encode body: %w", err)}
	}
	return c.do(ctx, method, url, bytes.NewReader(payload), "application/json")
}

func (c *Client) sendForm(ctx context.Context, method, url string, body map[string]any) (*Response, error) {
	payload, contentType, err := EncodeMultipart(body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	return c.do(ctx, method, url, payload, contentType)
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("url", url).Msg("backend request failed")
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(started)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: payload}
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: payload}, nil
}

// notifyError emits one error notice per message extracted from err.
func (c *Client) notifyError(err error) {
	for _, message := range ErrorMessages(err) {
		c.notifier.NotifyError(message)
	}
}

// logError writes err to the log sink instead of the notice channel.
func (c *Client) logError(err error) {
	c.logger.Error().Strs("messages", ErrorMessages(err)).Err(err).Msg("backend query failed")
}

type discardNotifier struct{}

func (discardNotifier) NotifySuccess(string) {}
func (discardNotifier) NotifyError(string)   {}
