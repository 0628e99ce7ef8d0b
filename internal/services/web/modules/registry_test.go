package modules

import (
	"testing"

	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	public := DefaultPublicModules(Dependencies{})
	protected := DefaultProtectedModules(Dependencies{})
	wantPublic := []string{"course", "cta", "language", "session"}
	if len(public) != len(wantPublic) {
		t.Fatalf("public module count = %d, want %d", len(public), len(wantPublic))
	}
	for i, want := range wantPublic {
		if got := public[i].ID(); got != want {
			t.Fatalf("public module[%d] id = %q, want %q", i, got, want)
		}
	}
	if len(protected) != 1 || protected[0].ID() != "reviews" {
		t.Fatalf("protected modules = %v", protected)
	}
}

func TestDefaultModulesHaveUniqueMounts(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(Dependencies{}), DefaultProtectedModules(Dependencies{})...)
	seen := map[string]string{}
	for _, m := range all {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount = %+v", m.ID(), mount)
		}
		for _, prefix := range append([]string{mount.Prefix}, mount.Aliases...) {
			if owner, ok := seen[prefix]; ok {
				t.Fatalf("prefix %q mounted by %q and %q", prefix, owner, m.ID())
			}
			seen[prefix] = m.ID()
		}
	}
	if seen[routepath.Root] != "course" {
		t.Fatalf("root owner = %q, want course", seen[routepath.Root])
	}
}
