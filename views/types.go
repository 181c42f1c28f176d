package views

import "github.com/a-h/templ"

// SiteConfig holds site-wide settings populated from theme.yaml or
// environment variables. Every component receives this so nothing about the
// site identity is hardcoded in markup.
type SiteConfig struct {
	Name        string // site name, used for the title and copyright line
	URL         string // canonical URL
	Description string // meta description
	Author      string // author name for JSON-LD
	ThemeName   string // theme identifier, used in generated artifacts
}

// MenuItem is a single navigation entry. Items render in registration order.
type MenuItem struct {
	Label  string
	URL    string
	Active bool
}

// Service is one of the fixed service cards on the page.
type Service struct {
	Title       string
	Description string
	Image       string // theme-relative image path
}

// TeamMember is one of the fixed team entries on the page.
type TeamMember struct {
	Name  string
	Role  string
	Image string // theme-relative image path
}

// PostLink is a sidebar recent-post entry.
type PostLink struct {
	Title string
	URL   string
}

// PageContext carries everything a single render needs. It is constructed
// per request and discarded after the document is written; rendering never
// mutates it.
type PageContext struct {
	AssetBase string // base URL every theme-relative path resolves against

	PrimaryLocation string // menu location for the header navigation
	FooterLocation  string // menu location for the footer navigation

	HeroHeading string
	HeroText    string
	HeroImage   string // theme-relative background image path
	CTALabel    string
	CTAURL      string

	Services    []Service
	Team        []TeamMember
	RecentPosts []PostLink

	Scripts []string // theme-relative script paths, emitted before </body>

	Year int // copyright year; kept in the context so rendering stays pure
}

// DefaultPageContext returns the stock page content: exactly three service
// cards, three team members, and three recent-post links, plus the standard
// script set. Callers may override individual fields before rendering.
func DefaultPageContext() PageContext {
	return PageContext{
		PrimaryLocation: "primary",
		FooterLocation:  "footer",
		HeroHeading:     "Build Something Great",
		HeroText:        "We design and ship digital products that your customers will love.",
		HeroImage:       "/images/hero-bg.jpg",
		CTALabel:        "Get Started",
		CTAURL:          "#services",
		Services: []Service{
			{Title: "Web Design", Description: "Clean, responsive layouts built for every screen size.", Image: "/images/service-design.png"},
			{Title: "Development", Description: "Robust applications engineered for performance and reliability.", Image: "/images/service-development.png"},
			{Title: "Consulting", Description: "Honest technical guidance from strategy through launch.", Image: "/images/service-consulting.png"},
		},
		Team: []TeamMember{
			{Name: "Alex Morgan", Role: "Creative Director", Image: "/images/team-alex.jpg"},
			{Name: "Jamie Chen", Role: "Lead Engineer", Image: "/images/team-jamie.jpg"},
			{Name: "Sam Okafor", Role: "Project Manager", Image: "/images/team-sam.jpg"},
		},
		RecentPosts: []PostLink{
			{Title: "Redesigning our onboarding flow", URL: "/blog/redesigning-onboarding/"},
			{Title: "What we learned shipping v2", URL: "/blog/shipping-v2/"},
			{Title: "Choosing boring technology", URL: "/blog/boring-technology/"},
		},
		Scripts: []string{
			"/js/jquery.min.js",
			"/js/plugins.js",
			"/js/main.js",
		},
		Year: 2026,
	}
}

// AssetResolver maps a theme-relative path (e.g. "/images/logo.png") to the
// URL emitted in the document. The host owns resolution policy; components
// call Resolve for every image and script reference.
type AssetResolver interface {
	Resolve(rel string) string
}

// NavConfig configures a single menu-location render.
type NavConfig struct {
	Location  string // host-registered location identifier
	MenuClass string // CSS class for the rendered <ul>
	Container bool   // wrap the list in a container <div>
	Fallback  bool   // render the fallback menu when the location is unassigned
}

// MenuRenderer produces the navigation fragment for a menu location. When
// the location has no assigned menu and fallback is disabled, the fragment
// is empty; the surrounding <nav> element stays in the page markup.
type MenuRenderer interface {
	RenderMenu(cfg NavConfig) templ.Component
}

// PageFrameProvider supplies the document chrome around the page body: the
// head/open fragment and the foot/close fragment. Implementations must emit
// consistent, valid surrounding HTML.
type PageFrameProvider interface {
	Head(site SiteConfig, page PageContext, assets AssetResolver) templ.Component
	Foot() templ.Component
}
