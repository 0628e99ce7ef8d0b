// Package trustedhtml turns CMS-authored markup into HTML that templates may
// render unescaped. HTML values can only be built through FromCMS.
package trustedhtml

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Policy decides how CMS markup is treated.
type Policy string

const (
	// PolicySanitized keeps only allowlisted elements and attributes.
	PolicySanitized Policy = "sanitized"
	// PolicyTrusted renders CMS markup unchanged.
	PolicyTrusted Policy = "trusted"
)

// ParsePolicy validates a configured policy name. Blank selects sanitized.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PolicySanitized:
		return PolicySanitized, nil
	case PolicyTrusted:
		return PolicyTrusted, nil
	}
	return "", fmt.Errorf("unknown cms html policy %q", raw)
}

// bannerParagraphSelector matches CMS paragraphs whose class is dropped in
// banner descriptions.
const bannerParagraphSelector = "p.tenms__paragraph"

// cmsClass limits class attributes to plain class names.
var cmsClass = regexp.MustCompile(`^[\w\s-]+$`)

// sanitizer allowlists user-generated-content elements and attributes.
// Anything it does not name, including SVG and MathML, is dropped.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(cmsClass).Globally()
	return p
}()

// HTML is markup approved for unescaped rendering.
type HTML struct {
	value string
}

// FromCMS approves raw CMS markup under policy.
func FromCMS(raw string, policy Policy) HTML {
	if strings.TrimSpace(raw) == "" {
		return HTML{}
	}
	if policy == PolicyTrusted {
		return HTML{value: raw}
	}
	return HTML{value: sanitizer.Sanitize(raw)}
}

// WithoutBannerParagraphClass drops the class attribute of CMS banner
// paragraphs.
func (h HTML) WithoutBannerParagraphClass() HTML {
	if h.value == "" {
		return h
	}
	doc, err := parse(h.value)
	if err != nil {
		return h
	}
	if doc.Find(bannerParagraphSelector).RemoveAttr("class").Length() == 0 {
		return h
	}
	return HTML{value: bodyHTML(doc, h.value)}
}

// String returns the approved markup.
func (h HTML) String() string {
	return h.value
}

// Empty reports whether there is nothing to render.
func (h HTML) Empty() bool {
	return strings.TrimSpace(h.value) == ""
}

// Component renders the markup unescaped.
func (h HTML) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, h.value)
		return err
	})
}

// Or returns h, or fallback approved as plain escaped text when h is empty.
func (h HTML) Or(fallback string) HTML {
	if !h.Empty() {
		return h
	}
	return HTML{value: html.EscapeString(fallback)}
}

func parse(raw string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(raw))
}

func bodyHTML(doc *goquery.Document, fallback string) string {
	out, err := doc.Find("body").Html()
	if err != nil {
		return html.EscapeString(fallback)
	}
	return out
}
