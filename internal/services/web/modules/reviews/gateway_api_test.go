package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/coursefront/internal/platform/endpoints"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/storage/sqlite"
)

const listBody = `{"statusCode":200,"data":{"data":[{"id":"r1","name":"Rahim","testimonial":"Great","tags":["ielts"]}],"total":11,"page":2,"limit":10,"pageCount":2}}`

// reviewBackend records the requests of a fake reviews API.
type reviewBackend struct {
	mu       sync.Mutex
	requests []string
	auth     []string
	forms    []map[string][]string
	files    []string
}

func (b *reviewBackend) log(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.RequestURI())
	b.auth = append(b.auth, r.Header.Get("Authorization"))
	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			b.forms = append(b.forms, r.MultipartForm.Value)
			for _, fh := range r.MultipartForm.File["profile_image"] {
				b.files = append(b.files, fh.Filename)
			}
		}
	}
}

func newGatewayWithBackend(t *testing.T, token string, cache *gateway.QueryCache) (ReviewGateway, *reviewBackend) {
	t.Helper()
	backend := &reviewBackend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.log(r)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(listBody))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"statusCode":201,"message":"Review created","data":{"id":"r2"}}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"statusCode":200,"message":"Review deleted"}`))
		}
	}))
	t.Cleanup(srv.Close)

	registry, err := endpoints.Load("")
	if err != nil {
		t.Fatalf("load endpoints: %v", err)
	}
	registry, err = registry.WithBaseURL(srv.URL)
	if err != nil {
		t.Fatalf("base url: %v", err)
	}
	factory := NewAPIGatewayFactory(registry, time.Minute, func(r *http.Request) *gateway.Client {
		return gateway.New(gateway.Config{
			HTTPClient: srv.Client(),
			Token:      token,
			Cache:      cache,
			Notifier:   flash.FromContext(r.Context()),
		})
	})
	return factory(httptest.NewRequest(http.MethodGet, "/reviews", nil)), backend
}

func TestAPIGatewayListsReviewPage(t *testing.T) {
	t.Parallel()

	gw, backend := newGatewayWithBackend(t, "tok", nil)
	result := gw.ListReviews(context.Background(), 2)
	if result.Err != nil || len(result.Data) != 1 || result.Data[0].ID != "r1" {
		t.Fatalf("result = %+v", result)
	}
	if result.TotalItems != 11 || result.PageCount != 2 || result.Page != 2 {
		t.Fatalf("paging = %+v", result)
	}
	if len(backend.requests) != 1 || backend.requests[0] != "GET /discovery-service/api/v1/reviews?page=2&limit=10" {
		t.Fatalf("requests = %v", backend.requests)
	}
	if backend.auth[0] != "Bearer tok" {
		t.Fatalf("Authorization = %q", backend.auth[0])
	}
}

func TestAPIGatewaySkipsListWithoutToken(t *testing.T) {
	t.Parallel()

	gw, backend := newGatewayWithBackend(t, "", nil)
	result := gw.ListReviews(context.Background(), 1)
	if !result.Skipped || len(result.Data) != 0 || result.PageCount != 1 {
		t.Fatalf("result = %+v", result)
	}
	if len(backend.requests) != 0 {
		t.Fatalf("requests = %v", backend.requests)
	}
}

func TestAPIGatewayCreateSendsMultipartAndInvalidatesLists(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web-cache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	gw, backend := newGatewayWithBackend(t, "tok", gateway.NewQueryCache(store))
	ctx, notices := flash.WithNotices(context.Background())

	gw.ListReviews(ctx, 1)
	gw.ListReviews(ctx, 1)
	result := gw.CreateReview(ctx, ReviewInput{
		Name:         "Karim",
		Testimonial:  "Helpful",
		Tags:         []string{"a", "b"},
		ProfileImage: &gateway.File{Filename: "k.png", ContentType: "image/png", Data: []byte("img")},
	})
	if !result.Success {
		t.Fatalf("create result = %+v", result)
	}
	gw.ListReviews(ctx, 1)

	want := []string{
		"GET /discovery-service/api/v1/reviews?page=1&limit=10",
		"POST /discovery-service/api/v1/reviews",
		"GET /discovery-service/api/v1/reviews?page=1&limit=10",
	}
	if len(backend.requests) != len(want) {
		t.Fatalf("requests = %v, want %v", backend.requests, want)
	}
	for i := range want {
		if backend.requests[i] != want[i] {
			t.Fatalf("requests[%d] = %q, want %q", i, backend.requests[i], want[i])
		}
	}
	form := backend.forms[0]
	if form["name"][0] != "Karim" || len(form["tags"]) != 2 {
		t.Fatalf("form = %v", form)
	}
	if len(backend.files) != 1 || backend.files[0] != "k.png" {
		t.Fatalf("files = %v", backend.files)
	}
	got := notices.List()
	if len(got) != 1 || got[0].Kind != flash.KindSuccess || got[0].Message != "Review created" {
		t.Fatalf("notices = %+v", got)
	}
}

func TestAPIGatewayCreateValidatesBeforeSending(t *testing.T) {
	t.Parallel()

	gw, backend := newGatewayWithBackend(t, "tok", nil)
	ctx, notices := flash.WithNotices(context.Background())
	if gw.CreateReview(ctx, ReviewInput{}).Success {
		t.Fatal("empty review accepted")
	}
	if len(backend.requests) != 0 {
		t.Fatalf("requests = %v", backend.requests)
	}
	if got := notices.List(); len(got) != 2 {
		t.Fatalf("notices = %+v, want one per missing field", got)
	}
}

func TestAPIGatewayDeletesByID(t *testing.T) {
	t.Parallel()

	gw, backend := newGatewayWithBackend(t, "tok", nil)
	ctx, notices := flash.WithNotices(context.Background())
	if !gw.DeleteReview(ctx, "r1").Success {
		t.Fatal("delete failed")
	}
	if len(backend.requests) != 1 || backend.requests[0] != "DELETE /discovery-service/api/v1/reviews/r1" {
		t.Fatalf("requests = %v", backend.requests)
	}
	if got := notices.List(); len(got) != 1 || got[0].Message != "Review deleted" {
		t.Fatalf("notices = %+v", got)
	}
}

func TestAPIGatewayFactoryWithoutRegistryIsUnavailable(t *testing.T) {
	t.Parallel()

	gw := NewAPIGatewayFactory(nil, 0, nil)(httptest.NewRequest(http.MethodGet, "/reviews", nil))
	if result := gw.ListReviews(context.Background(), 1); result.Err == nil || len(result.Data) != 0 {
		t.Fatalf("result = %+v", result)
	}
	if gw.CreateReview(context.Background(), ReviewInput{Name: "a", Testimonial: "b"}).Success {
		t.Fatal("unavailable gateway created a review")
	}
	if gw.DeleteReview(context.Background(), "r1").Success {
		t.Fatal("unavailable gateway deleted a review")
	}
}
