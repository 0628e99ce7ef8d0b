package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/platform/webctx"
)

// fakeGateway implements ReviewGateway with canned results and records
// every call.
type fakeGateway struct {
	reviews    []Review
	pageCount  int
	failCreate bool
	failDelete bool

	pages   []int
	created []ReviewInput
	deleted []string
}

var _ ReviewGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListReviews(_ context.Context, page int) gateway.PageResult[Review] {
	f.pages = append(f.pages, page)
	return gateway.PageResult[Review]{Data: f.reviews, TotalItems: len(f.reviews), PageCount: f.pageCount, Page: page}
}

func (f *fakeGateway) CreateReview(ctx context.Context, input ReviewInput) gateway.MutationResult[Review] {
	f.created = append(f.created, input)
	if f.failCreate {
		flash.FromContext(ctx).NotifyError("Please enter name.")
		return gateway.MutationResult[Review]{}
	}
	flash.FromContext(ctx).NotifySuccess("Review created")
	return gateway.MutationResult[Review]{Success: true}
}

func (f *fakeGateway) DeleteReview(ctx context.Context, reviewID string) gateway.MutationResult[Review] {
	f.deleted = append(f.deleted, reviewID)
	if f.failDelete {
		flash.FromContext(ctx).NotifyError("Review not found")
		return gateway.MutationResult[Review]{}
	}
	flash.FromContext(ctx).NotifySuccess("Review deleted")
	return gateway.MutationResult[Review]{Success: true}
}

func factoryFor(gw ReviewGateway) GatewayFactory {
	return func(*http.Request) ReviewGateway { return gw }
}

func sampleReviews() []Review {
	return []Review{
		{ID: "r1", Name: "Rahim", Testimonial: "Great course", Tags: []string{"ielts"}},
		{ID: "r2", Name: "Karim", Testimonial: "Very helpful"},
	}
}

// newRequest returns a signed-in request carrying a notice collector.
func newRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return withVisitor(req)
}

func withVisitor(req *http.Request) *http.Request {
	ctx, _ := flash.WithNotices(req.Context())
	state := webctx.FromContext(ctx)
	state.SignedIn = true
	return req.WithContext(webctx.WithState(ctx, state))
}

func serve(t *testing.T, gw ReviewGateway, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(service{}, factoryFor(gw), modulehandler.NewTestBase()))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
