package reviews

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

func TestListRendersReviewsPage(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{reviews: sampleReviews(), pageCount: 3}
	rr := serve(t, gw, newRequest(http.MethodGet, "/reviews?page=2"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"<title>", "Rahim", "Very helpful", `id="reviews-list"`, `class="review-form"`, `hx-delete="/reviews/r1"`, "/reviews?page=3"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if len(gw.pages) != 1 || gw.pages[0] != 2 {
		t.Fatalf("pages = %v, want [2]", gw.pages)
	}
}

func TestListTargetingListReturnsFragment(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/reviews")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", webtemplates.ReviewsListID)
	rr := serve(t, &fakeGateway{reviews: sampleReviews()}, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, "review-form") {
		t.Fatalf("fragment rendered full page: %s", body)
	}
	if !strings.Contains(body, "Rahim") {
		t.Fatalf("fragment missing reviews: %s", body)
	}
}

func TestListBadPageFallsBackToFirst(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	rr := serve(t, gw, newRequest(http.MethodGet, "/reviews?page=zero"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if len(gw.pages) != 1 || gw.pages[0] != 1 {
		t.Fatalf("pages = %v, want [1]", gw.pages)
	}
	if !strings.Contains(rr.Body.String(), "reviews-empty") {
		t.Fatal("empty list placeholder missing")
	}
}

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("profile_image", "me.png")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/reviews", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return withVisitor(req)
}

func TestCreateSendsMultipartFieldsAndRedirects(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	req := multipartRequest(t, map[string]string{"name": "Rahim", "testimonial": "Great", "tags": "ielts, speaking,ielts"}, []byte("png"))
	rr := serve(t, gw, req)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/reviews" {
		t.Fatalf("status/location = %d/%q", rr.Code, rr.Header().Get("Location"))
	}
	if len(gw.created) != 1 {
		t.Fatalf("created = %+v", gw.created)
	}
	input := gw.created[0]
	if input.Name != "Rahim" || input.Testimonial != "Great" {
		t.Fatalf("input = %+v", input)
	}
	if strings.Join(input.Tags, "|") != "ielts|speaking" {
		t.Fatalf("tags = %v", input.Tags)
	}
	if input.ProfileImage == nil || input.ProfileImage.Filename != "me.png" || string(input.ProfileImage.Data) != "png" {
		t.Fatalf("profile image = %+v", input.ProfileImage)
	}
	var flashed bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName && c.Value != "" {
			flashed = true
		}
	}
	if !flashed {
		t.Fatal("success notice was not carried to the redirect")
	}
}

func TestCreateWithoutImageLeavesItOut(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	rr := serve(t, gw, multipartRequest(t, map[string]string{"name": "Rahim", "testimonial": "Great"}, nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rr.Code)
	}
	if len(gw.created) != 1 || gw.created[0].ProfileImage != nil {
		t.Fatalf("created = %+v", gw.created)
	}
	if _, ok := gw.created[0].Body()["profile_image"]; ok {
		t.Fatal("body carries an empty profile image")
	}
}

func TestCreateFailureRerendersWithNotices(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{failCreate: true, reviews: sampleReviews()}
	rr := serve(t, gw, multipartRequest(t, map[string]string{"testimonial": "Great"}, nil))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Please enter name.") || !strings.Contains(body, "review-form") {
		t.Fatalf("body missing notice or form: %s", body)
	}
}

func TestCreateFailureOverHTMXKeepsSwappableStatus(t *testing.T) {
	t.Parallel()

	req := multipartRequest(t, map[string]string{"testimonial": "Great"}, nil)
	req.Header.Set("HX-Request", "true")
	rr := serve(t, &fakeGateway{failCreate: true}, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestCreateRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{}
	req := multipartRequest(t, map[string]string{"name": "A", "testimonial": "B"}, bytes.Repeat([]byte("x"), maxUploadBytes+1))
	rr := serve(t, gw, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if len(gw.created) != 0 {
		t.Fatalf("oversized upload reached the gateway: %d", len(gw.created))
	}
}

func TestDeleteOverHTMXReturnsRefreshedList(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{reviews: sampleReviews()[1:]}
	req := newRequest(http.MethodDelete, "/reviews/r1")
	req.Header.Set("HX-Request", "true")
	rr := serve(t, gw, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "r1" {
		t.Fatalf("deleted = %v", gw.deleted)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="reviews-list"`) || strings.Contains(body, "Rahim") {
		t.Fatalf("list not refreshed: %s", body)
	}
	if !strings.Contains(body, "Review deleted") || !strings.Contains(body, `hx-swap-oob="true"`) {
		t.Fatalf("delete notice not swapped out of band: %s", body)
	}
}

func TestDeleteFormRedirectsEvenOnFailure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{failDelete: true}
	rr := serve(t, gw, newRequest(http.MethodPost, "/reviews/r9/delete"))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/reviews" {
		t.Fatalf("status/location = %d/%q", rr.Code, rr.Header().Get("Location"))
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "r9" {
		t.Fatalf("deleted = %v", gw.deleted)
	}
}
