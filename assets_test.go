package themeforge

import "testing"

func TestBaseResolver(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"plain concatenation", "https://example.com/theme", "/images/logo.png", "https://example.com/theme/images/logo.png"},
		{"trailing slash on base", "https://example.com/theme/", "/images/logo.png", "https://example.com/theme/images/logo.png"},
		{"missing leading slash", "https://example.com/theme", "js/main.js", "https://example.com/theme/js/main.js"},
		{"empty rel", "https://example.com/theme", "", "https://example.com/theme"},
		{"root base", "http://localhost:3000", "/css/style.css", "http://localhost:3000/css/style.css"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBaseResolver(tt.base).Resolve(tt.rel)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}
