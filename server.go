package themeforge

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/themeforge/views"
)

// App is the theme preview server. It renders the page once per request
// through the explicit collaborator set; nothing is shared across requests
// except the immutable configuration and the menu registry.
type App struct {
	Site   views.SiteConfig
	Echo   *echo.Echo
	Menus  *MenuRegistry
	Assets views.AssetResolver
	Frame  views.PageFrameProvider
	Page   views.PageContext

	sessionSecret string
	cookieSecure  bool
	staticDir     string
	addr          string
	placeholders  *renderLimiter
}

// Option configures additional App behavior.
type Option func(*App)

// WithAddr sets the listen address (default ":3000").
func WithAddr(addr string) Option {
	return func(a *App) { a.addr = addr }
}

// WithStaticDir sets the directory for theme static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) { a.staticDir = dir }
}

// WithCookieSecure marks session and CSRF cookies secure, for HTTPS deployments.
func WithCookieSecure(secure bool) Option {
	return func(a *App) { a.cookieSecure = secure }
}

// WithFrame replaces the default page frame provider.
func WithFrame(frame views.PageFrameProvider) Option {
	return func(a *App) { a.Frame = frame }
}

// WithAssetResolver replaces the default base-URL asset resolver.
func WithAssetResolver(resolver views.AssetResolver) Option {
	return func(a *App) { a.Assets = resolver }
}

// NewApp builds a preview server for the given theme. The returned App has
// its routes and middleware fully installed; Start only opens the listener.
func NewApp(theme *ThemeConfig, sessionSecret string, opts ...Option) (*App, error) {
	if sessionSecret == "" {
		return nil, fmt.Errorf("themeforge: session secret is required")
	}
	registry, err := theme.Registry()
	if err != nil {
		return nil, err
	}
	page := theme.PageContext()

	a := &App{
		Site:          theme.SiteConfig(),
		Echo:          echo.New(),
		Menus:         registry,
		Assets:        NewBaseResolver(page.AssetBase),
		Frame:         DefaultFrame{},
		Page:          page,
		sessionSecret: sessionSecret,
		staticDir:     "public",
		addr:          ":3000",
		placeholders:  newRenderLimiter(30, time.Minute),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Echo.HideBanner = true
	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// Start runs the server until it fails or is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/", a.handleHome)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Theme assets, with generated placeholders for images that don't exist
	// yet so an unfinished theme still previews sensibly.
	e.GET("/public/images/*", a.handleImage)
	e.Static("/public", a.staticDir)

	e.POST("/preview/menu/", a.handlePreviewMenu)
	e.POST("/preview/reset/", a.handlePreviewReset)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = renderStatus(c, http.StatusNotFound, views.NotFound(a.Site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = renderStatus(c, code, views.ServerError(a.Site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// handleHome renders the page through the collaborator set. Session menu
// overrides apply to this visitor only.
func (a *App) handleHome(c echo.Context) error {
	menus := a.Menus.WithOverrides(previewOverrides(c))

	// Expose the CSRF token so preview tooling can POST /preview/ endpoints.
	c.Response().Header().Set("X-CSRF-Token", CsrfToken(c))
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return Render(c.Request().Context(), c.Response(), a.Site, a.Page, a.Assets, menus, a.Frame)
}

// handleImage serves a theme image from the static dir, or a generated
// placeholder when the file does not exist. Placeholder size comes from the
// w/h query parameters.
func (a *App) handleImage(c echo.Context) error {
	rel := filepath.Clean("/" + c.Param("*"))
	path := filepath.Join(a.staticDir, "images", rel)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return c.File(path)
	}

	if !a.placeholders.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many placeholder requests. Try again later.")
	}
	width := queryInt(c, "w", placeholderDefaultSize)
	height := queryInt(c, "h", placeholderDefaultSize*2/3)
	img, err := Placeholder(width, height)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", img)
}

func queryInt(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// handleRobots generates robots.txt using the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /preview/\n\nSitemap: %s/sitemap.xml\n", a.Site.URL)
	return c.String(http.StatusOK, body)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (a *App) handleSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: views.BuildURL(a.Site.URL)}},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// handlePreviewMenu assigns a registered menu to a location for this
// visitor's session only.
func (a *App) handlePreviewMenu(c echo.Context) error {
	location := c.FormValue("location")
	menuSlug := c.FormValue("menu")

	found := false
	for _, loc := range a.Menus.Locations() {
		if loc.ID == location {
			found = true
			break
		}
	}
	if !found {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown menu location %q", location))
	}
	if _, ok := a.Menus.Menus()[menuSlug]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown menu %q", menuSlug))
	}
	if err := setPreviewOverride(c, location, menuSlug); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handlePreviewReset(c echo.Context) error {
	if err := clearPreviewOverrides(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderStatus writes a templ component with a specific HTTP status code.
func renderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
