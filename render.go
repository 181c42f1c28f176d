package themeforge

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/eringen/themeforge/views"
)

var tracer = otel.Tracer("github.com/eringen/themeforge")

// Render writes the page document to w. It is a pure, single-pass function
// of its inputs: no state survives the call and identical inputs yield
// byte-identical output. Failures are writer errors only; menu and asset
// resolution never fail locally.
func Render(ctx context.Context, w io.Writer, site views.SiteConfig, page views.PageContext, assets views.AssetResolver, menus views.MenuRenderer, frame views.PageFrameProvider) error {
	ctx, span := tracer.Start(ctx, "themeforge.Render",
		trace.WithAttributes(
			attribute.String("themeforge.site", site.Name),
			attribute.String("themeforge.asset_base", page.AssetBase),
			attribute.String("themeforge.menu.primary", page.PrimaryLocation),
			attribute.String("themeforge.menu.footer", page.FooterLocation),
		))
	defer span.End()

	err := views.Page(site, page, assets, menus, frame).Render(ctx, w)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// RenderString renders the page document to a string.
func RenderString(ctx context.Context, site views.SiteConfig, page views.PageContext, assets views.AssetResolver, menus views.MenuRenderer, frame views.PageFrameProvider) (string, error) {
	var b strings.Builder
	if err := Render(ctx, &b, site, page, assets, menus, frame); err != nil {
		return "", err
	}
	return b.String(), nil
}
