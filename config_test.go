package themeforge

import (
	"os"
	"path/filepath"
	"testing"
)

const testThemeYAML = `
site:
  name: Acme Studio
  url: https://example.com/
  description: A small design studio
  author: Alex Morgan
theme:
  name: acme
  asset_base: https://example.com/themes/acme/
menus:
  locations:
    - id: primary
      name: Primary Menu
    - id: footer
      name: Footer Menu
  menus:
    - slug: main
      name: Main
      items:
        - label: Home
          url: /
        - label: About
          url: /about/
  assignments:
    primary: main
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	cfg, err := LoadTheme(writeTheme(t, testThemeYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	site := cfg.SiteConfig()
	if site.Name != "Acme Studio" {
		t.Errorf("site name = %q", site.Name)
	}
	if site.URL != "https://example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", site.URL)
	}
	if site.ThemeName != "acme" {
		t.Errorf("theme name = %q", site.ThemeName)
	}

	page := cfg.PageContext()
	if page.AssetBase != "https://example.com/themes/acme" {
		t.Errorf("asset base = %q", page.AssetBase)
	}
	if len(page.Services) != 3 || len(page.Team) != 3 || len(page.RecentPosts) != 3 {
		t.Errorf("expected stock 3/3/3 content, got %d/%d/%d",
			len(page.Services), len(page.Team), len(page.RecentPosts))
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadThemeInvalidYAML(t *testing.T) {
	if _, err := LoadTheme(writeTheme(t, "site: [broken")); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestSiteConfigDefaults(t *testing.T) {
	cfg, err := LoadTheme(writeTheme(t, "site: {}\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	site := cfg.SiteConfig()
	if site.Name != "Site" || site.URL != "http://localhost:3000" || site.ThemeName != "mytheme" {
		t.Errorf("unexpected defaults: %+v", site)
	}

	page := cfg.PageContext()
	if page.AssetBase != "http://localhost:3000/themes/mytheme" {
		t.Errorf("default asset base = %q", page.AssetBase)
	}
}

func TestRegistry(t *testing.T) {
	cfg, err := LoadTheme(writeTheme(t, testThemeYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}

	locs := reg.Locations()
	if len(locs) != 2 || locs[0].ID != "primary" || locs[1].ID != "footer" {
		t.Errorf("unexpected locations: %+v", locs)
	}
	menu, ok := reg.Assigned("primary")
	if !ok || menu.Slug != "main" || len(menu.Items) != 2 {
		t.Errorf("unexpected assignment: %+v ok=%v", menu, ok)
	}
	if _, ok := reg.Assigned("footer"); ok {
		t.Errorf("footer should be unassigned")
	}
}

func TestRegistryBadAssignment(t *testing.T) {
	cfg, err := LoadTheme(writeTheme(t, `
menus:
  locations:
    - id: primary
      name: Primary
  assignments:
    primary: missing
`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := cfg.Registry(); err == nil {
		t.Errorf("expected error for assignment to unknown menu")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("THEMEFORGE_TEST_KEY", "set")
	if got := EnvOr("THEMEFORGE_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("EnvOr = %q", got)
	}
	if got := EnvOr("THEMEFORGE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("EnvOr fallback = %q", got)
	}
}
