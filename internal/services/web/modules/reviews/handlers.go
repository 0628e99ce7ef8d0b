package reviews

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

// maxUploadBytes bounds the multipart body of a review submission.
const maxUploadBytes = 5 << 20

type handlers struct {
	modulehandler.Base
	service  service
	gateways GatewayFactory
}

func newHandlers(s service, gateways GatewayFactory, base modulehandler.Base) handlers {
	if gateways == nil {
		gateways = func(*http.Request) ReviewGateway { return unavailableGateway{} }
	}
	return handlers{Base: base, service: s, gateways: gateways}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	page := h.service.listReviews(r.Context(), h.gateways(r), pageParam(r))
	h.writeList(w, r, page, http.StatusOK)
}

func (h handlers) writeList(w http.ResponseWriter, r *http.Request, page reviewsPage, status int) {
	loc := h.Localizer(r)
	view := webtemplates.ReviewsView{
		Items:     page.Items,
		Page:      page.Page,
		PageCount: page.PageCount,
		Total:     page.Total,
		SignedIn:  h.SignedIn(r),
		Loc:       loc,
	}
	if httpx.IsHTMXRequest(r) && r.Header.Get("HX-Target") == webtemplates.ReviewsListID {
		h.WriteFragment(w, r, webtemplates.ReviewsList(view))
		return
	}
	h.WritePage(w, r, webtemplates.TOr(loc, "reviews.title", "Student reviews"), status, webtemplates.ReviewsPage(view))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	input, err := parseReviewInput(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	gw := h.gateways(r)
	if h.service.createReview(r.Context(), gw, input) {
		h.Redirect(w, r, routepath.Reviews)
		return
	}
	page := h.service.listReviews(r.Context(), gw, 1)
	h.writeList(w, r, page, modulehandler.InvalidFormStatus(r))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	gw := h.gateways(r)
	if _, err := h.service.deleteReview(r.Context(), gw, r.PathValue("reviewID")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if httpx.IsHTMXRequest(r) {
		page := h.service.listReviews(r.Context(), gw, pageParam(r))
		h.WriteFragment(w, r, webtemplates.ReviewsList(webtemplates.ReviewsView{
			Items:     page.Items,
			Page:      page.Page,
			PageCount: page.PageCount,
			Total:     page.Total,
			SignedIn:  h.SignedIn(r),
			Loc:       h.Localizer(r),
		}))
		return
	}
	h.Redirect(w, r, routepath.Reviews)
}

// parseReviewInput reads the multipart or urlencoded submission. The
// profile image is optional.
func parseReviewInput(w http.ResponseWriter, r *http.Request) (ReviewInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return ReviewInput{}, err
		}
	} else if err := r.ParseForm(); err != nil {
		return ReviewInput{}, err
	}
	input := ReviewInput{
		Name:        r.PostFormValue("name"),
		Testimonial: r.PostFormValue("testimonial"),
		Tags:        splitTags(r.PostForm["tags"]),
	}
	file, header, err := r.FormFile("profile_image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return input, nil
	case err != nil:
		return ReviewInput{}, err
	}
	defer file.Close()
	image, err := readUpload(file, header)
	if err != nil {
		return ReviewInput{}, err
	}
	input.ProfileImage = image
	return input, nil
}

func readUpload(file multipart.File, header *multipart.FileHeader) (*gateway.File, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &gateway.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// pageParam reads the 1-based page query parameter.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
