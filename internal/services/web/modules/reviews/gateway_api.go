package reviews

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/coursefront/internal/platform/endpoints"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	apperrors "github.com/louisbranch/coursefront/internal/services/web/platform/errors"
)

// GatewayFactory builds the review gateway for one request.
type GatewayFactory func(*http.Request) ReviewGateway

// NewAPIGatewayFactory returns a factory using per-request gateway clients.
// A nil registry yields unavailable gateways.
func NewAPIGatewayFactory(registry *endpoints.Registry, staleTime time.Duration, clients func(*http.Request) *gateway.Client) GatewayFactory {
	return func(r *http.Request) ReviewGateway {
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

func (g apiGateway) ListReviews(ctx context.Context, page int) gateway.PageResult[Review] {
	url, err := g.endpoints.URL(endpoints.Reviews, map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(PageSize),
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("endpoint", endpoints.Reviews).Msg("resolve endpoint")
		return gateway.PageResult[Review]{Data: []Review{}, PageCount: 1, Err: err}
	}
	return gateway.PaginatedQuery[Review](ctx, g.client, gateway.QueryOptions{
		Key:            []string{CacheScope, strconv.Itoa(page)},
		URL:            url,
		RefetchOnMount: true,
		StaleTime:      g.staleTime,
	})
}

func (g apiGateway) CreateReview(ctx context.Context, input ReviewInput) gateway.MutationResult[Review] {
	url, err := g.endpoints.URL(endpoints.ReviewCreate, nil)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("endpoint", endpoints.ReviewCreate).Msg("resolve endpoint")
		return gateway.MutationResult[Review]{Err: err}
	}
	return gateway.HandleMutation[Review](ctx, g.client, gateway.MutationRequest{
		Method:         gateway.MethodPostForm,
		URL:            url,
		Body:           input.Body(),
		RequiredFields: RequiredFields,
		InvalidateKeys: []string{CacheScope},
	})
}

func (g apiGateway) DeleteReview(ctx context.Context, reviewID string) gateway.MutationResult[Review] {
	url, err := g.endpoints.URL(endpoints.Review, map[string]string{"id": reviewID})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("endpoint", endpoints.Review).Msg("resolve endpoint")
		return gateway.MutationResult[Review]{Err: err}
	}
	return gateway.HandleDelete[Review](ctx, g.client, gateway.DeleteRequest{
		URL:            url,
		InvalidateKeys: []string{CacheScope},
	})
}

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "reviews service is not configured")
}

func (unavailableGateway) ListReviews(context.Context, int) gateway.PageResult[Review] {
	return gateway.PageResult[Review]{Data: []Review{}, PageCount: 1, Skipped: true, Err: errUnavailable()}
}

func (unavailableGateway) CreateReview(context.Context, ReviewInput) gateway.MutationResult[Review] {
	return gateway.MutationResult[Review]{Err: errUnavailable()}
}

func (unavailableGateway) DeleteReview(context.Context, string) gateway.MutationResult[Review] {
	return gateway.MutationResult[Review]{Err: errUnavailable()}
}
