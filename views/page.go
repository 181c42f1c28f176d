package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Page renders the full page document: frame head, site header with the
// primary navigation, hero, the three service cards, the three team members,
// the recent-posts sidebar, footer with the secondary navigation and
// copyright line, the script tags, and the frame foot. Rendering is a single
// stateless pass; identical inputs produce byte-identical output.
func Page(site SiteConfig, page PageContext, assets AssetResolver, menus MenuRenderer, frame PageFrameProvider) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := frame.Head(site, page, assets).Render(ctx, w); err != nil {
			return err
		}

		var buf bytes.Buffer
		buf.WriteString(`<header class="site-header"><div class="site-branding"><a href="/"><img class="site-logo" src="`)
		buf.WriteString(esc(assets.Resolve("/images/logo.png")))
		buf.WriteString(`" alt="`)
		buf.WriteString(esc(site.Name))
		buf.WriteString(`"></a></div><nav class="main-navigation" aria-label="Primary">`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}

		primary := menus.RenderMenu(NavConfig{
			Location:  page.PrimaryLocation,
			MenuClass: "primary-menu",
			Container: false,
			Fallback:  false,
		})
		if err := primary.Render(ctx, w); err != nil {
			return err
		}

		buf.Reset()
		buf.WriteString(`</nav></header>`)
		writeHero(&buf, page, assets)
		writeServices(&buf, page, assets)
		writeTeam(&buf, page, assets)
		writeSidebar(&buf, page)
		buf.WriteString(`<footer class="site-footer"><nav class="footer-navigation" aria-label="Footer">`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}

		secondary := menus.RenderMenu(NavConfig{
			Location:  page.FooterLocation,
			MenuClass: "footer-menu",
			Container: true,
			Fallback:  false,
		})
		if err := secondary.Render(ctx, w); err != nil {
			return err
		}

		buf.Reset()
		buf.WriteString(`</nav><p class="copyright">&copy; `)
		buf.WriteString(strconv.Itoa(page.Year))
		buf.WriteString(` `)
		buf.WriteString(esc(site.Name))
		buf.WriteString(`. All rights reserved.</p></footer>`)
		for _, script := range page.Scripts {
			buf.WriteString(`<script src="`)
			buf.WriteString(esc(assets.Resolve(script)))
			buf.WriteString(`"></script>`)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}

		return frame.Foot().Render(ctx, w)
	})
}

func writeHero(buf *bytes.Buffer, page PageContext, assets AssetResolver) {
	buf.WriteString(`<section class="hero" style="background-image:url(`)
	buf.WriteString(esc(assets.Resolve(page.HeroImage)))
	buf.WriteString(`)"><div class="hero-inner"><h1>`)
	buf.WriteString(esc(page.HeroHeading))
	buf.WriteString(`</h1><p>`)
	buf.WriteString(esc(page.HeroText))
	buf.WriteString(`</p><a class="cta-button" href="`)
	buf.WriteString(esc(page.CTAURL))
	buf.WriteString(`">`)
	buf.WriteString(esc(page.CTALabel))
	buf.WriteString(`</a></div></section>`)
}

func writeServices(buf *bytes.Buffer, page PageContext, assets AssetResolver) {
	buf.WriteString(`<section id="services" class="services"><h2 class="section-title">Our Services</h2><div class="service-grid">`)
	for _, s := range page.Services {
		buf.WriteString(`<div class="service-card"><img src="`)
		buf.WriteString(esc(assets.Resolve(s.Image)))
		buf.WriteString(`" alt="`)
		buf.WriteString(esc(s.Title))
		buf.WriteString(`"><h3>`)
		buf.WriteString(esc(s.Title))
		buf.WriteString(`</h3><p>`)
		buf.WriteString(esc(s.Description))
		buf.WriteString(`</p></div>`)
	}
	buf.WriteString(`</div></section>`)
}

func writeTeam(buf *bytes.Buffer, page PageContext, assets AssetResolver) {
	buf.WriteString(`<section class="team"><h2 class="section-title">Meet the Team</h2><div class="team-grid">`)
	for _, m := range page.Team {
		buf.WriteString(`<div class="team-member"><img class="team-photo" src="`)
		buf.WriteString(esc(assets.Resolve(m.Image)))
		buf.WriteString(`" alt="`)
		buf.WriteString(esc(m.Name))
		buf.WriteString(`"><h3>`)
		buf.WriteString(esc(m.Name))
		buf.WriteString(`</h3><p class="team-role">`)
		buf.WriteString(esc(m.Role))
		buf.WriteString(`</p></div>`)
	}
	buf.WriteString(`</div></section>`)
}

func writeSidebar(buf *bytes.Buffer, page PageContext) {
	buf.WriteString(`<aside class="sidebar"><h2 class="widget-title">Recent Posts</h2><ul class="recent-posts">`)
	for _, p := range page.RecentPosts {
		buf.WriteString(`<li><a href="`)
		buf.WriteString(esc(p.URL))
		buf.WriteString(`">`)
		buf.WriteString(esc(p.Title))
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ul></aside>`)
}

// NotFound renders a minimal standalone 404 page.
func NotFound(site SiteConfig) templ.Component {
	return statusPage(site, "404", "Page not found")
}

// ServerError renders a minimal standalone 500 page.
func ServerError(site SiteConfig) templ.Component {
	return statusPage(site, "500", "Something went wrong")
}

func statusPage(site SiteConfig, code, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		buf.WriteString(esc(code + " - " + site.Name))
		buf.WriteString(`</title></head><body class="status-page"><main><h1>`)
		buf.WriteString(esc(code))
		buf.WriteString(`</h1><p>`)
		buf.WriteString(esc(message))
		buf.WriteString(`</p><p><a href="/">Back to `)
		buf.WriteString(esc(site.Name))
		buf.WriteString(`</a></p></main></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
