package course

import (
	"context"
	"strings"

	"github.com/louisbranch/coursefront/internal/services/web/content"
	apperrors "github.com/louisbranch/coursefront/internal/services/web/platform/errors"
	"github.com/louisbranch/coursefront/internal/services/web/platform/trustedhtml"
)

// DefaultSlug is the course shown on the home page.
const DefaultSlug = "ielts-course"

// PageGateway loads course page payloads. Failures are reported to the
// request's notice collector by the implementation; callers only see absence.
type PageGateway interface {
	HomePage(ctx context.Context, lang string) (content.Page, bool)
	CoursePage(ctx context.Context, slug, lang string) (content.Page, bool)
	// CachedCoursePage reads through the query cache and is used by polled
	// fragments.
	CachedCoursePage(ctx context.Context, slug, lang string) (content.Page, bool)
}

// pageContent is a fetched page with its sections decoded.
type pageContent struct {
	Page     content.Page
	Sections []content.Section
	// Slug addresses the fragment endpoints of this page.
	Slug string
}

type service struct {
	policy trustedhtml.Policy
}

func newService(policy trustedhtml.Policy) service {
	return service{policy: policy}
}

func (s service) homePage(ctx context.Context, gateway PageGateway, lang string) (pageContent, error) {
	page, ok := gateway.HomePage(ctx, lang)
	if !ok {
		return pageContent{}, errUnavailable()
	}
	return decodePage(ctx, page, strings.TrimSpace(page.Slug), DefaultSlug), nil
}

func (s service) coursePage(ctx context.Context, gateway PageGateway, slug, lang string) (pageContent, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return pageContent{}, apperrors.E(apperrors.KindNotFound, "course not found")
	}
	page, ok := gateway.CoursePage(ctx, slug, lang)
	if !ok {
		return pageContent{}, errUnavailable()
	}
	return decodePage(ctx, page, slug, DefaultSlug), nil
}

func (s service) fragmentPage(ctx context.Context, gateway PageGateway, slug, lang string) (pageContent, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return pageContent{}, apperrors.E(apperrors.KindNotFound, "course not found")
	}
	page, ok := gateway.CachedCoursePage(ctx, slug, lang)
	if !ok {
		return pageContent{}, errUnavailable()
	}
	return decodePage(ctx, page, slug, DefaultSlug), nil
}

func decodePage(ctx context.Context, page content.Page, slug, fallbackSlug string) pageContent {
	if slug == "" {
		slug = fallbackSlug
	}
	return pageContent{Page: page, Sections: content.DecodeSections(ctx, page.Sections), Slug: slug}
}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "course content is unavailable")
}
