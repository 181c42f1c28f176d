package themeforge

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eringen/themeforge/views"
)

// ThemeConfig is the on-disk theme description loaded from theme.yaml. It
// covers site identity, the asset base, and the menu structures the host
// injects into the page at render time.
type ThemeConfig struct {
	Site struct {
		Name        string `yaml:"name"`
		URL         string `yaml:"url"`
		Description string `yaml:"description"`
		Author      string `yaml:"author"`
	} `yaml:"site"`

	Theme struct {
		Name      string `yaml:"name"`
		AssetBase string `yaml:"asset_base"`
	} `yaml:"theme"`

	Menus struct {
		Locations []struct {
			ID   string `yaml:"id"`
			Name string `yaml:"name"`
		} `yaml:"locations"`
		Menus []struct {
			Slug  string `yaml:"slug"`
			Name  string `yaml:"name"`
			Items []struct {
				Label string `yaml:"label"`
				URL   string `yaml:"url"`
			} `yaml:"items"`
		} `yaml:"menus"`
		Assignments map[string]string `yaml:"assignments"`
	} `yaml:"menus"`
}

// LoadTheme reads and parses a theme.yaml file.
func LoadTheme(path string) (*ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themeforge: read theme config: %w", err)
	}
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("themeforge: parse theme config: %w", err)
	}
	return &cfg, nil
}

// SiteConfig converts the theme file's site section into a views.SiteConfig,
// filling defaults where the file is silent.
func (c *ThemeConfig) SiteConfig() views.SiteConfig {
	site := views.SiteConfig{
		Name:        c.Site.Name,
		URL:         strings.TrimSuffix(c.Site.URL, "/"),
		Description: c.Site.Description,
		Author:      c.Site.Author,
		ThemeName:   c.Theme.Name,
	}
	if site.Name == "" {
		site.Name = "Site"
	}
	if site.URL == "" {
		site.URL = "http://localhost:3000"
	}
	if site.ThemeName == "" {
		site.ThemeName = "mytheme"
	}
	return site
}

// Registry builds a MenuRegistry from the theme file's menu section.
// Assignment entries referencing unknown locations or menus are reported as
// an error rather than silently dropped.
func (c *ThemeConfig) Registry() (*MenuRegistry, error) {
	reg := NewMenuRegistry()
	for _, loc := range c.Menus.Locations {
		reg.RegisterLocation(loc.ID, loc.Name)
	}
	for _, m := range c.Menus.Menus {
		menu := Menu{Slug: m.Slug, Name: m.Name}
		for _, item := range m.Items {
			menu.Items = append(menu.Items, views.MenuItem{Label: item.Label, URL: item.URL})
		}
		reg.RegisterMenu(menu)
	}
	for loc, slug := range c.Menus.Assignments {
		if err := reg.Assign(loc, slug); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// PageContext returns the default page content bound to this theme's asset
// base, with the copyright year set to the current year.
func (c *ThemeConfig) PageContext() views.PageContext {
	page := views.DefaultPageContext()
	page.AssetBase = strings.TrimSuffix(c.Theme.AssetBase, "/")
	if page.AssetBase == "" {
		page.AssetBase = c.SiteConfig().URL + "/themes/" + c.SiteConfig().ThemeName
	}
	page.Year = time.Now().Year()
	return page
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("themeforge: required environment variable %s is not set", key)
	}
	return v
}
