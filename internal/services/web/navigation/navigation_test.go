package navigation

import (
	"testing"

	"github.com/louisbranch/coursefront/internal/platform/i18n/catalog"
)

func walk(items []Item, fn func(Item)) {
	for _, item := range items {
		fn(item)
		walk(item.Children, fn)
	}
}

func TestMenuLabelsExistInEveryLocale(t *testing.T) {
	t.Parallel()

	bundle := catalog.Default()
	walk(Menu(), func(item Item) {
		for _, locale := range []string{"en", "bn"} {
			if _, ok := bundle.Message(locale, item.LabelKey); !ok {
				t.Fatalf("missing %s label for %q", locale, item.LabelKey)
			}
		}
	})
}

func TestMenuLinksAreUniqueLocalPaths(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	walk(Menu(), func(item Item) {
		if item.HasChildren() {
			if item.Href != "" {
				t.Fatalf("group %q should not link", item.LabelKey)
			}
			return
		}
		if len(item.Href) < 2 || item.Href[0] != '/' {
			t.Fatalf("bad href %q", item.Href)
		}
		if seen[item.Href] {
			t.Fatalf("duplicate href %q", item.Href)
		}
		seen[item.Href] = true
	})
	if len(seen) != 13 {
		t.Fatalf("links = %d, want 13", len(seen))
	}
}

func TestActiveMatchesChildren(t *testing.T) {
	t.Parallel()

	menu := Menu()
	if !menu[0].Active("/class-7") {
		t.Fatal("expected class group active")
	}
	if menu[0].Active("/admission") || !menu[2].Active("/admission") {
		t.Fatal("unexpected active state")
	}
}
