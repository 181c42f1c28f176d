package themeforge

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/themeforge/views"
)

// DefaultFrame is the stock PageFrameProvider: doctype, head metadata, the
// theme stylesheet link, and the matching closing tags.
type DefaultFrame struct {
	Lang       string // html lang attribute, default "en"
	Stylesheet string // theme-relative stylesheet path, default "/css/style.css"
}

var _ views.PageFrameProvider = DefaultFrame{}

func (f DefaultFrame) lang() string {
	if f.Lang == "" {
		return "en"
	}
	return f.Lang
}

func (f DefaultFrame) stylesheet() string {
	if f.Stylesheet == "" {
		return "/css/style.css"
	}
	return f.Stylesheet
}

// Head emits everything up to and including the opening <body> tag.
func (f DefaultFrame) Head(site views.SiteConfig, page views.PageContext, assets views.AssetResolver) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="`)
		buf.WriteString(html.EscapeString(f.lang()))
		buf.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		buf.WriteString(html.EscapeString(site.Name))
		buf.WriteString(`</title>`)
		if site.Description != "" {
			buf.WriteString(`<meta name="description" content="`)
			buf.WriteString(html.EscapeString(site.Description))
			buf.WriteString(`">`)
		}
		buf.WriteString(`<link rel="stylesheet" href="`)
		buf.WriteString(html.EscapeString(assets.Resolve(f.stylesheet())))
		buf.WriteString(`">`)
		buf.WriteString(`<script type="application/ld+json">`)
		buf.WriteString(views.WebsiteJsonLD(site))
		buf.WriteString(`</script>`)
		buf.WriteString(`</head><body>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Foot closes the document.
func (f DefaultFrame) Foot() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
