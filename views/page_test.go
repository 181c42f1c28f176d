package views

import (
	"context"
	"html"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

// prefixResolver resolves by plain concatenation, matching the host contract.
type prefixResolver struct {
	base string
}

func (r prefixResolver) Resolve(rel string) string {
	return r.base + rel
}

// listMenus renders registered items as a plain list, recording each call.
type listMenus struct {
	items map[string][]MenuItem
	calls []NavConfig
}

func (m *listMenus) RenderMenu(cfg NavConfig) templ.Component {
	m.calls = append(m.calls, cfg)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		items, ok := m.items[cfg.Location]
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, `<ul class="`+cfg.MenuClass+`">`); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := io.WriteString(w, `<li><a href="`+item.URL+`">`+item.Label+`</a></li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// bareFrame is a minimal valid frame for body-focused assertions.
type bareFrame struct{}

func (bareFrame) Head(site SiteConfig, page PageContext, assets AssetResolver) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><title>`+html.EscapeString(site.Name)+`</title></head><body>`)
		return err
	})
}

func (bareFrame) Foot() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func renderPage(t *testing.T, site SiteConfig, page PageContext, assets AssetResolver, menus MenuRenderer) string {
	t.Helper()
	var b strings.Builder
	if err := Page(site, page, assets, menus, bareFrame{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func testSite() SiteConfig {
	return SiteConfig{Name: "Acme", URL: "https://example.com", ThemeName: "acme"}
}

func TestPageCardinality(t *testing.T) {
	menus := &listMenus{items: map[string][]MenuItem{
		"primary": {{Label: "Home", URL: "/"}},
		"footer":  {{Label: "Privacy", URL: "/privacy/"}},
	}}
	out := renderPage(t, testSite(), DefaultPageContext(), prefixResolver{base: "https://example.com/theme"}, menus)

	if got := strings.Count(out, `class="service-card"`); got != 3 {
		t.Errorf("expected 3 service cards, got %d", got)
	}
	if got := strings.Count(out, `class="team-member"`); got != 3 {
		t.Errorf("expected 3 team members, got %d", got)
	}
	sidebar := out[strings.Index(out, `class="recent-posts"`):]
	sidebar = sidebar[:strings.Index(sidebar, "</ul>")]
	if got := strings.Count(sidebar, "<li>"); got != 3 {
		t.Errorf("expected 3 recent posts, got %d", got)
	}
	if got := strings.Count(out, "<script "); got != 3 {
		t.Errorf("expected 3 script tags, got %d", got)
	}
}

func TestPageCardinalityIgnoresMenuInput(t *testing.T) {
	// The fixed sections keep their cardinality no matter what the menu
	// renderer produces.
	for _, menus := range []*listMenus{
		{items: nil},
		{items: map[string][]MenuItem{"primary": make([]MenuItem, 10)}},
	} {
		out := renderPage(t, testSite(), DefaultPageContext(), prefixResolver{base: "https://example.com/theme"}, menus)
		if got := strings.Count(out, `class="service-card"`); got != 3 {
			t.Errorf("expected 3 service cards, got %d", got)
		}
		if got := strings.Count(out, `class="team-member"`); got != 3 {
			t.Errorf("expected 3 team members, got %d", got)
		}
	}
}

func TestPageAssetConcatenation(t *testing.T) {
	menus := &listMenus{}
	out := renderPage(t, testSite(), DefaultPageContext(), prefixResolver{base: "https://example.com/theme"}, menus)

	wants := []string{
		`src="https://example.com/theme/images/logo.png"`,
		`url(https://example.com/theme/images/hero-bg.jpg)`,
		`src="https://example.com/theme/js/jquery.min.js"`,
		`src="https://example.com/theme/js/plugins.js"`,
		`src="https://example.com/theme/js/main.js"`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestPageMenuConfigs(t *testing.T) {
	menus := &listMenus{}
	renderPage(t, testSite(), DefaultPageContext(), prefixResolver{base: "x"}, menus)

	if len(menus.calls) != 2 {
		t.Fatalf("expected 2 menu renders, got %d", len(menus.calls))
	}
	primary := menus.calls[0]
	if primary.Location != "primary" || primary.MenuClass != "primary-menu" || primary.Container || primary.Fallback {
		t.Errorf("unexpected primary nav config: %+v", primary)
	}
	footer := menus.calls[1]
	if footer.Location != "footer" || footer.MenuClass != "footer-menu" || !footer.Container || footer.Fallback {
		t.Errorf("unexpected footer nav config: %+v", footer)
	}
}

func TestPageEmptyNavKeepsNavElement(t *testing.T) {
	menus := &listMenus{items: nil}
	out := renderPage(t, testSite(), DefaultPageContext(), prefixResolver{base: "x"}, menus)

	if !strings.Contains(out, `<nav class="main-navigation" aria-label="Primary"></nav>`) {
		t.Errorf("expected empty primary nav element to remain in markup")
	}
}

func TestPageIdempotent(t *testing.T) {
	menus := &listMenus{items: map[string][]MenuItem{
		"primary": {{Label: "Home", URL: "/", Active: true}, {Label: "About", URL: "/about/"}},
	}}
	page := DefaultPageContext()
	first := renderPage(t, testSite(), page, prefixResolver{base: "https://example.com/theme"}, menus)
	second := renderPage(t, testSite(), page, prefixResolver{base: "https://example.com/theme"}, menus)

	if first != second {
		t.Errorf("expected byte-identical output across renders")
	}
}

func TestPageCopyright(t *testing.T) {
	page := DefaultPageContext()
	page.Year = 2024
	out := renderPage(t, testSite(), page, prefixResolver{base: "x"}, &listMenus{})

	if !strings.Contains(out, "&copy; 2024 Acme. All rights reserved.") {
		t.Errorf("copyright line missing or malformed")
	}
}

func TestPageEscapesContent(t *testing.T) {
	site := testSite()
	site.Name = `Acme <"&>`
	out := renderPage(t, site, DefaultPageContext(), prefixResolver{base: "x"}, &listMenus{})

	if strings.Contains(out, `Acme <"&>`) {
		t.Errorf("site name was not escaped")
	}
	if !strings.Contains(out, "Acme &lt;&#34;&amp;&gt;") {
		t.Errorf("expected escaped site name in output")
	}
}

func TestNotFoundPage(t *testing.T) {
	var b strings.Builder
	if err := NotFound(testSite()).Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "<h1>404</h1>") {
		t.Errorf("expected 404 heading, got %q", out)
	}
	if !strings.Contains(out, "Back to Acme") {
		t.Errorf("expected back link with site name")
	}
}
