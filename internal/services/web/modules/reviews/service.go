package reviews

import (
	"context"
	"strings"

	"github.com/louisbranch/coursefront/internal/services/web/content"
	"github.com/louisbranch/coursefront/internal/services/web/gateway"
	apperrors "github.com/louisbranch/coursefront/internal/services/web/platform/errors"
	webtemplates "github.com/louisbranch/coursefront/internal/services/web/templates"
)

// PageSize is the number of reviews per page.
const PageSize = 10

// CacheScope is the query cache scope of review lists.
const CacheScope = "reviews"

// Review is one student review as served by the content API.
type Review struct {
	ID           content.ID `json:"id"`
	Name         string     `json:"name"`
	Testimonial  string     `json:"testimonial"`
	ProfileImage string     `json:"profile_image"`
	Tags         []string   `json:"tags"`
}

// ReviewInput is a review submission.
type ReviewInput struct {
	Name         string
	Testimonial  string
	ProfileImage *gateway.File
	Tags         []string
}

// Body returns the multipart body of the submission. Absent optional
// fields are left out.
func (in ReviewInput) Body() map[string]any {
	body := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"testimonial": strings.TrimSpace(in.Testimonial),
	}
	if in.ProfileImage != nil && len(in.ProfileImage.Data) > 0 {
		body["profile_image"] = *in.ProfileImage
	}
	if len(in.Tags) > 0 {
		body["tags"] = in.Tags
	}
	return body
}

// RequiredFields lists the fields a submission cannot omit.
var RequiredFields = []gateway.RequiredField{
	{Key: "name", Value: "name", Label: gateway.LabelText},
	{Key: "testimonial", Value: "testimonial", Label: gateway.LabelText},
}

// ReviewGateway reads and writes reviews. Implementations report failures
// to the request's notice collector.
type ReviewGateway interface {
	ListReviews(ctx context.Context, page int) gateway.PageResult[Review]
	CreateReview(ctx context.Context, input ReviewInput) gateway.MutationResult[Review]
	DeleteReview(ctx context.Context, reviewID string) gateway.MutationResult[Review]
}

// reviewsPage is one rendered page of reviews.
type reviewsPage struct {
	Items     []webtemplates.ReviewItem
	Page      int
	PageCount int
	Total     int
}

type service struct{}

func (service) listReviews(ctx context.Context, gw ReviewGateway, page int) reviewsPage {
	page = max(page, 1)
	result := gw.ListReviews(ctx, page)
	out := reviewsPage{
		Items:     make([]webtemplates.ReviewItem, 0, len(result.Data)),
		Page:      page,
		PageCount: max(result.PageCount, 1),
		Total:     result.TotalItems,
	}
	if result.Page > 0 {
		out.Page = result.Page
	}
	for _, review := range result.Data {
		out.Items = append(out.Items, webtemplates.ReviewItem{
			ID:           string(review.ID),
			Name:         review.Name,
			Testimonial:  review.Testimonial,
			ProfileImage: review.ProfileImage,
			Tags:         review.Tags,
		})
	}
	return out
}

func (service) createReview(ctx context.Context, gw ReviewGateway, input ReviewInput) bool {
	return gw.CreateReview(ctx, input).Success
}

func (service) deleteReview(ctx context.Context, gw ReviewGateway, reviewID string) (bool, error) {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return false, apperrors.E(apperrors.KindNotFound, "review not found")
	}
	return gw.DeleteReview(ctx, reviewID).Success, nil
}

// splitTags flattens comma-separated tag fields into distinct trimmed tags.
func splitTags(values []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, value := range values {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
