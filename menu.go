package themeforge

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"sync"

	"github.com/a-h/templ"

	"github.com/eringen/themeforge/views"
)

// EmptyMarkup selects what an unassigned menu location renders when its
// fallback is disabled. The surrounding <nav> element always stays in the
// page markup; this only controls the fragment inside it.
type EmptyMarkup int

const (
	// EmptyOmit renders nothing for an unassigned location.
	EmptyOmit EmptyMarkup = iota
	// EmptyList renders an empty <ul> carrying the configured menu class.
	EmptyList
)

// Menu is a named, ordered navigation structure that can be assigned to a
// location.
type Menu struct {
	Slug  string
	Name  string
	Items []views.MenuItem
}

// MenuLocation is a named slot a menu can be assigned to.
type MenuLocation struct {
	ID   string
	Name string
}

// MenuRegistry holds registered menu locations, menus, and the assignment
// of menus to locations. It implements views.MenuRenderer. Safe for
// concurrent use: renders take a read lock, registration a write lock.
type MenuRegistry struct {
	mu          sync.RWMutex
	locations   []MenuLocation
	menus       map[string]Menu
	assigned    map[string]string // location ID -> menu slug
	fallback    *Menu
	emptyMarkup EmptyMarkup
}

var _ views.MenuRenderer = (*MenuRegistry)(nil)

// NewMenuRegistry creates an empty registry with the EmptyOmit policy.
func NewMenuRegistry() *MenuRegistry {
	return &MenuRegistry{
		menus:    make(map[string]Menu),
		assigned: make(map[string]string),
	}
}

// SetEmptyMarkup changes the unassigned-location policy.
func (m *MenuRegistry) SetEmptyMarkup(policy EmptyMarkup) {
	m.mu.Lock()
	m.emptyMarkup = policy
	m.mu.Unlock()
}

// SetFallbackMenu sets the menu rendered for unassigned locations when a
// NavConfig enables fallback.
func (m *MenuRegistry) SetFallbackMenu(menu Menu) {
	m.mu.Lock()
	m.fallback = &menu
	m.mu.Unlock()
}

// RegisterLocation registers a menu location. Registering the same ID twice
// updates the display name.
func (m *MenuRegistry) RegisterLocation(id, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, loc := range m.locations {
		if loc.ID == id {
			m.locations[i].Name = name
			return
		}
	}
	m.locations = append(m.locations, MenuLocation{ID: id, Name: name})
}

// RegisterMenu adds or replaces a menu by slug.
func (m *MenuRegistry) RegisterMenu(menu Menu) {
	m.mu.Lock()
	m.menus[menu.Slug] = menu
	m.mu.Unlock()
}

// Assign binds a registered menu to a registered location.
func (m *MenuRegistry) Assign(locationID, menuSlug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasLocation(locationID) {
		return fmt.Errorf("themeforge: unknown menu location %q", locationID)
	}
	if _, ok := m.menus[menuSlug]; !ok {
		return fmt.Errorf("themeforge: unknown menu %q", menuSlug)
	}
	m.assigned[locationID] = menuSlug
	return nil
}

func (m *MenuRegistry) hasLocation(id string) bool {
	for _, loc := range m.locations {
		if loc.ID == id {
			return true
		}
	}
	return false
}

// Locations returns the registered locations in registration order.
func (m *MenuRegistry) Locations() []MenuLocation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MenuLocation, len(m.locations))
	copy(out, m.locations)
	return out
}

// Menus returns the registered menus, keyed by slug.
func (m *MenuRegistry) Menus() map[string]Menu {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Menu, len(m.menus))
	for k, v := range m.menus {
		out[k] = v
	}
	return out
}

// Assigned returns the menu assigned to a location, if any.
func (m *MenuRegistry) Assigned(locationID string) (Menu, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slug, ok := m.assigned[locationID]
	if !ok {
		return Menu{}, false
	}
	menu, ok := m.menus[slug]
	return menu, ok
}

// RenderMenu renders the menu assigned to cfg.Location as an HTML fragment.
func (m *MenuRegistry) RenderMenu(cfg views.NavConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m.mu.RLock()
		menu, ok := m.lookupLocked(cfg)
		policy := m.emptyMarkup
		m.mu.RUnlock()

		var buf bytes.Buffer
		switch {
		case ok:
			writeMenuList(&buf, cfg, menu.Items)
		case policy == EmptyList:
			writeMenuList(&buf, cfg, nil)
		default:
			// EmptyOmit: the fragment is empty, the caller's <nav> remains.
			return nil
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func (m *MenuRegistry) lookupLocked(cfg views.NavConfig) (Menu, bool) {
	if slug, ok := m.assigned[cfg.Location]; ok {
		if menu, ok := m.menus[slug]; ok {
			return menu, true
		}
	}
	if cfg.Fallback && m.fallback != nil {
		return *m.fallback, true
	}
	return Menu{}, false
}

func writeMenuList(buf *bytes.Buffer, cfg views.NavConfig, items []views.MenuItem) {
	if cfg.Container {
		buf.WriteString(`<div class="menu-container">`)
	}
	buf.WriteString(`<ul class="`)
	buf.WriteString(html.EscapeString(cfg.MenuClass))
	buf.WriteString(`">`)
	for _, item := range items {
		if item.Active {
			buf.WriteString(`<li class="menu-item active">`)
		} else {
			buf.WriteString(`<li class="menu-item">`)
		}
		buf.WriteString(`<a href="`)
		buf.WriteString(html.EscapeString(item.URL))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(item.Label))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ul>`)
	if cfg.Container {
		buf.WriteString(`</div>`)
	}
}

// menuOverrides is a MenuRenderer view over a registry with per-request
// location reassignments, used by the preview server so one visitor's
// customization never affects another's.
type menuOverrides struct {
	registry  *MenuRegistry
	overrides map[string]string // location ID -> menu slug
}

// WithOverrides returns a MenuRenderer that resolves the given locations to
// different menu slugs, falling back to the registry's own assignments.
func (m *MenuRegistry) WithOverrides(overrides map[string]string) views.MenuRenderer {
	if len(overrides) == 0 {
		return m
	}
	return menuOverrides{registry: m, overrides: overrides}
}

func (o menuOverrides) RenderMenu(cfg views.NavConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o.registry.mu.RLock()
		var menu Menu
		ok := false
		if slug, has := o.overrides[cfg.Location]; has {
			menu, ok = o.registry.menus[slug]
		}
		if !ok {
			menu, ok = o.registry.lookupLocked(cfg)
		}
		policy := o.registry.emptyMarkup
		o.registry.mu.RUnlock()

		var buf bytes.Buffer
		switch {
		case ok:
			writeMenuList(&buf, cfg, menu.Items)
		case policy == EmptyList:
			writeMenuList(&buf, cfg, nil)
		default:
			return nil
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}
