// Package endpoints resolves named backend URLs from a YAML registry.
package endpoints

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Registered endpoint names.
const (
	HomePage     = "home_page"
	CoursePage   = "course_page"
	Reviews      = "reviews"
	ReviewCreate = "review_create"
	Review       = "review"
)

//go:embed endpoints.yaml
var defaultRegistry []byte

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

type registryFile struct {
	BaseURL   string            `yaml:"base_url"`
	Endpoints map[string]string `yaml:"endpoints"`
}

// Registry maps endpoint names to URL templates. Templates may carry
// {placeholder} segments filled at resolve time.
type Registry struct {
	baseURL   *url.URL
	templates map[string]string
}

// Load reads the registry at path, or the embedded defaults when path is empty.
func Load(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Parse(defaultRegistry)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoint registry: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML registry document.
func Parse(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parse endpoint registry: %w", err)
	}
	if len(file.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoint registry has no endpoints")
	}
	registry := &Registry{templates: make(map[string]string, len(file.Endpoints))}
	if err := registry.setBase(file.BaseURL); err != nil {
		return nil, err
	}
	for name, template := range file.Endpoints {
		name = strings.TrimSpace(name)
		template = strings.TrimSpace(template)
		if name == "" || template == "" {
			return nil, fmt.Errorf("endpoint registry: blank name or url for %q", name)
		}
		registry.templates[name] = template
	}
	return registry, nil
}

// WithBaseURL returns a copy of r resolving relative templates against base.
func (r *Registry) WithBaseURL(base string) (*Registry, error) {
	out := &Registry{templates: r.templates, baseURL: r.baseURL}
	if strings.TrimSpace(base) == "" {
		return out, nil
	}
	if err := out.setBase(base); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Registry) setBase(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		r.baseURL = nil
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("endpoint registry: invalid base url %q", raw)
	}
	r.baseURL = parsed
	return nil
}

// Names returns registered endpoint names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.templates))
	for name := range r.templates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// URL resolves name with params. Every placeholder in the template must be
// supplied; values are escaped for their position.
func (r *Registry) URL(name string, params map[string]string) (string, error) {
	template, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", name)
	}
	path, query, hasQuery := strings.Cut(template, "?")

	var missing []string
	fill := func(segment string, escape func(string) string) string {
		return placeholderPattern.ReplaceAllStringFunc(segment, func(token string) string {
			key := token[1 : len(token)-1]
			value, ok := params[key]
			if !ok {
				missing = append(missing, key)
				return token
			}
			return escape(value)
		})
	}
	resolved := fill(path, url.PathEscape)
	if hasQuery {
		resolved += "?" + fill(query, url.QueryEscape)
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("endpoint %q: missing params %s", name, strings.Join(missing, ", "))
	}

	if r.baseURL == nil {
		return resolved, nil
	}
	ref, err := url.Parse(resolved)
	if err != nil {
		return "", fmt.Errorf("endpoint %q: %w", name, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base := *r.baseURL
	base.Path = strings.TrimSuffix(base.Path, "/") + ref.Path
	base.RawPath = ""
	if ref.RawPath != "" {
		base.RawPath = strings.TrimSuffix(r.baseURL.EscapedPath(), "/") + ref.RawPath
	}
	base.RawQuery = ref.RawQuery
	return base.String(), nil
}
