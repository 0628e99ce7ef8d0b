package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/coursefront/internal/services/web/module"
	"github.com/louisbranch/coursefront/internal/services/web/platform/httpx"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Authenticated reports whether a request carries a signed-in session.
	Authenticated    func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Compose builds a root HTTP handler from module groups. Protected modules
// redirect signed-out visitors to the login page.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	if input.Authenticated == nil {
		input.Authenticated = func(*http.Request) bool { return false }
	}
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountModule(root, feature, seen, nil); err != nil {
			return nil, err
		}
	}

	protect := requireAuth(input.Authenticated)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountModule(root, feature, seen, protect); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	for _, path := range append([]string{mount.Prefix}, mount.Aliases...) {
		path = strings.TrimSpace(path)
		if previous, ok := seen[path]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), path, previous)
		}
		seen[path] = feature.ID()
		root.Handle(path, handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	for _, path := range append([]string{mount.Prefix}, mount.Aliases...) {
		if err := validatePrefix(path); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), path, err)
		}
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if strings.ContainsAny(prefix, " {}") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				httpx.WriteRedirect(w, r, routepath.LoginWithNext(r.URL.RequestURI()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
