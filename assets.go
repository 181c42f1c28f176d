package themeforge

import (
	"strings"

	"github.com/eringen/themeforge/views"
)

// BaseResolver resolves theme-relative paths against a fixed base URL by
// plain concatenation: base "https://example.com/theme" plus path
// "/images/logo.png" yields "https://example.com/theme/images/logo.png".
// No validation happens here; unresolvable assets surface as broken links,
// which is the host's policy to handle.
type BaseResolver struct {
	base string
}

var _ views.AssetResolver = BaseResolver{}

// NewBaseResolver creates a resolver for the given asset base URL. A
// trailing slash on the base is dropped so resolved URLs never contain "//".
func NewBaseResolver(base string) BaseResolver {
	return BaseResolver{base: strings.TrimSuffix(base, "/")}
}

// Resolve returns the base URL concatenated with the theme-relative path.
func (r BaseResolver) Resolve(rel string) string {
	if rel == "" {
		return r.base
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return r.base + rel
}
