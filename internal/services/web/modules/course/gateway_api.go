package course

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/coursefront/internal/platform/endpoints"
	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
)

// GatewayFactory builds the page gateway for one request.
type GatewayFactory func(*http.Request) PageGateway

// NewAPIGatewayFactory returns a factory reading pages from the content API
// through per-request gateway clients. A nil registry yields unavailable
// gateways.
func NewAPIGatewayFactory(registry *endpoints.Registry, staleTime time.Duration, clients func(*http.Request) *gateway.Client) GatewayFactory {
	return func(r *http.Request) PageGateway {
		if registry == nil || clients == nil {
			return unavailableGateway{}
		}
		return apiGateway{client: clients(r), endpoints: registry, staleTime: staleTime}
	}
}

type apiGateway struct {
	client    *gateway.Client
	endpoints *endpoints.Registry
	staleTime time.Duration
}

func (g apiGateway) HomePage(ctx context.Context, lang string) (content.Page, bool) {
	url, ok := g.url(ctx, endpoints.HomePage, map[string]string{"lang": lang})
	if !ok {
		return content.Page{}, false
	}
	return gateway.FetchData[content.Page](ctx, g.client, url)
}

func (g apiGateway) CoursePage(ctx context.Context, slug, lang string) (content.Page, bool) {
	url, ok := g.url(ctx, endpoints.CoursePage, map[string]string{"slug": slug, "lang": lang})
	if !ok {
		return content.Page{}, false
	}
	return gateway.FetchData[content.Page](ctx, g.client, url)
}

// CachedCoursePage logs failures instead of raising notices so a polling
// fragment does not repeat the same toast every tick.
func (g apiGateway) CachedCoursePage(ctx context.Context, slug, lang string) (content.Page, bool) {
	url, ok := g.url(ctx, endpoints.CoursePage, map[string]string{"slug": slug, "lang": lang})
	if !ok {
		return content.Page{}, false
	}
	result := gateway.Query[content.Page](ctx, g.client, gateway.QueryOptions{
		Key:            []string{"course", slug, lang},
		URL:            url,
		Public:         true,
		RefetchOnMount: true,
		StaleTime:      g.staleTime,
		Silent:         true,
	})
	return result.Data, result.OK
}

func (g apiGateway) url(ctx context.Context, name string, params map[string]string) (string, bool) {
	url, err := g.endpoints.URL(name, params)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("endpoint", name).Msg("resolve endpoint")
		return "", false
	}
	return url, true
}

type unavailableGateway struct{}

func (unavailableGateway) HomePage(context.Context, string) (content.Page, bool) {
	return content.Page{}, false
}

func (unavailableGateway) CoursePage(context.Context, string, string) (content.Page, bool) {
	return content.Page{}, false
}

func (unavailableGateway) CachedCoursePage(context.Context, string, string) (content.Page, bool) {
	return content.Page{}, false
}
