package templates

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// component adapts a node builder into a templ component.
func component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		node := build(ctx)
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// embed renders a templ component inside a node tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return nil
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// children renders the children attached with templ.WithChildren.
func children(ctx context.Context) g.Node {
	return embed(ctx, templ.GetChildren(ctx))
}

// safeURL drops URLs with script schemes.
func safeURL(raw string) string {
	return string(templ.URL(raw))
}

// cssColor matches hex colors, named colors and rgb/hsl functions.
var cssColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%/ ]+\))$`)

// styleColor returns raw when it is a plain CSS color value.
func styleColor(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !cssColor.MatchString(raw) {
		return "", false
	}
	return raw, true
}

var cssURLEscaper = strings.NewReplacer(
	"'", "%27",
	`"`, "%22",
	"(", "%28",
	")", "%29",
	`\`, "%5C",
	" ", "%20",
	"\n", "%0A",
	"\r", "%0D",
	"\t", "%09",
)

// styleURL returns raw for use inside url('...') in an inline style.
func styleURL(raw string) string {
	return cssURLEscaper.Replace(safeURL(strings.TrimSpace(raw)))
}

func hxGet(url string) g.Node     { return g.Attr("hx-get", url) }
func hxPost(url string) g.Node    { return g.Attr("hx-post", url) }
func hxDelete(url string) g.Node  { return g.Attr("hx-delete", url) }
func hxTarget(sel string) g.Node  { return g.Attr("hx-target", sel) }
func hxSwap(mode string) g.Node   { return g.Attr("hx-swap", mode) }
func hxConfirm(msg string) g.Node { return g.Attr("hx-confirm", msg) }

// hxEvery polls url every interval, replacing the element itself.
func hxEvery(url string, interval time.Duration) g.Node {
	return g.Group{
		hxGet(url),
		g.Attr("hx-trigger", "every "+strconv.Itoa(int(interval/time.Second))+"s"),
		hxTarget("this"),
		hxSwap("outerHTML"),
	}
}
