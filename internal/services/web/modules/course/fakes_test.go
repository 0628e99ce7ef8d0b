package course

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
)

const samplePage = `{
  "slug": "ielts-course",
  "title": "IELTS Course by Munzereen Shahid",
  "description": "<p class=\"tenms__paragraph\">Prepare well</p><script>alert(1)</script>",
  "media": [{"thumbnail_url": "https://cdn.example/a.jpg"}, {"resource_value": "https://cdn.example/b.jpg"}],
  "checklist": [{"id": 1, "text": "Lifetime access"}],
  "cta_text": {"name": "Enroll", "value": "enroll"},
  "sections": [
    {"type": "pointers", "name": "What you will learn", "values": [{"text": "Reading"}]},
    {"type": "testimonials", "name": "Students", "values": [
      {"id": "t1", "name": "Rahim", "testimonial": "Great"},
      {"id": "t2", "name": "Karim", "testimonial": "Helpful"}
    ]}
  ]
}`

func samplePageContent(t *testing.T) content.Page {
	t.Helper()
	var page content.Page
	if err := json.Unmarshal([]byte(samplePage), &page); err != nil {
		t.Fatalf("unmarshal sample page: %v", err)
	}
	return page
}

// fakeGateway implements PageGateway with fixed pages and records calls.
type fakeGateway struct {
	page    content.Page
	missing bool
	notice  string
	calls   *[]string
}

var _ PageGateway = fakeGateway{}

func (f fakeGateway) record(ctx context.Context, call string) (content.Page, bool) {
	if f.calls != nil {
		*f.calls = append(*f.calls, call)
	}
	if f.missing {
		if f.notice != "" {
			flash.FromContext(ctx).NotifyError(f.notice)
		}
		return content.Page{}, false
	}
	return f.page, true
}

func (f fakeGateway) HomePage(ctx context.Context, lang string) (content.Page, bool) {
	return f.record(ctx, "home:"+lang)
}

func (f fakeGateway) CoursePage(ctx context.Context, slug, lang string) (content.Page, bool) {
	return f.record(ctx, "course:"+slug+":"+lang)
}

func (f fakeGateway) CachedCoursePage(ctx context.Context, slug, lang string) (content.Page, bool) {
	return f.record(ctx, "cached:"+slug+":"+lang)
}

func factoryFor(gw PageGateway) GatewayFactory {
	return func(*http.Request) PageGateway { return gw }
}

func newRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx, _ := flash.WithNotices(req.Context())
	return req.WithContext(ctx)
}
