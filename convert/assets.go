package convert

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// assetPatterns classify relative paths into theme asset directories. Order
// matters: the first matching pattern wins.
var assetPatterns = []struct {
	typ string
	re  *regexp.Regexp
}{
	{"images", regexp.MustCompile(`(?i)^(?:\.\.?/)*(?:assets?/)?(?:img|images?)/(.+)$`)},
	{"css", regexp.MustCompile(`(?i)^(?:\.\.?/)*(?:assets?/)?(?:css|styles?)/(.+)$`)},
	{"js", regexp.MustCompile(`(?i)^(?:\.\.?/)*(?:assets?/)?(?:js|scripts?|javascript)/(.+)$`)},
	{"fonts", regexp.MustCompile(`(?i)^(?:\.\.?/)*(?:assets?/)?fonts?/(.+)$`)},
}

var leadingDots = regexp.MustCompile(`^(?:\.\.?/)+`)

// skipPrefixes are URL forms that are never rewritten.
func isExternal(p string) bool {
	return p == "" ||
		strings.HasPrefix(p, "http://") ||
		strings.HasPrefix(p, "https://") ||
		strings.HasPrefix(p, "//") ||
		strings.HasPrefix(p, "data:")
}

// classifyAsset maps a relative path to its theme-relative subpath, e.g.
// "../images/logo.png" -> "images/logo.png" and "../app.css" -> "css/app.css".
func classifyAsset(p string) string {
	clean := strings.TrimSpace(p)
	for _, pat := range assetPatterns {
		if m := pat.re.FindStringSubmatch(clean); m != nil {
			return pat.typ + "/" + m[1]
		}
	}
	clean = leadingDots.ReplaceAllString(clean, "")
	switch strings.ToLower(path.Ext(clean)) {
	case ".css", ".scss", ".sass", ".less":
		return "css/" + clean
	case ".js", ".mjs", ".ts":
		return "js/" + clean
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".avif":
		return "images/" + clean
	case ".woff", ".woff2", ".ttf", ".otf", ".eot":
		return "fonts/" + clean
	default:
		return clean
	}
}

// assetExpr emits the target template expression for a theme subpath.
func (c *Converter) assetExpr(subpath string) string {
	if c.Target == WordPress {
		return "<?php echo esc_url(get_template_directory_uri() . '/" + subpath + "'); ?>"
	}
	return "{{ asset('" + subpath + "') }}"
}

// rewriteAsset converts a single path value, returning the tokenized
// replacement and whether a conversion happened.
func (c *Converter) rewriteAsset(val string) (string, bool) {
	if isExternal(val) || c.tokens.isToken(val) {
		return val, false
	}
	return c.tokens.add(c.assetExpr(classifyAsset(val))), true
}

func (c *Converter) convertImages(doc *html.Node) {
	for _, img := range findAll(doc, "img") {
		if src := attr(img, "src"); src != "" {
			if converted, ok := c.rewriteAsset(src); ok {
				c.report.addAsset(src, c.tokens.expand(converted), "img")
				setAttr(img, "src", converted)
			}
		}
		if srcset := attr(img, "srcset"); srcset != "" && !c.tokens.isToken(srcset) {
			if converted := c.rewriteSrcset(srcset); converted != srcset {
				setAttr(img, "srcset", converted)
			}
		}
	}
}

func (c *Converter) convertStylesheets(doc *html.Node) {
	for _, link := range findAll(doc, "link") {
		if !strings.EqualFold(attr(link, "rel"), "stylesheet") {
			continue
		}
		if href := attr(link, "href"); href != "" {
			if converted, ok := c.rewriteAsset(href); ok {
				c.report.addAsset(href, c.tokens.expand(converted), "css")
				setAttr(link, "href", converted)
			}
		}
	}
	// <style> blocks with @import url(...)
	for _, style := range findAll(doc, "style") {
		if style.FirstChild != nil && style.FirstChild.Type == html.TextNode {
			style.FirstChild.Data = c.rewriteCSSImports(style.FirstChild.Data)
		}
	}
}

func (c *Converter) convertScripts(doc *html.Node) {
	for _, script := range findAll(doc, "script") {
		src := attr(script, "src")
		if src == "" {
			continue
		}
		if converted, ok := c.rewriteAsset(src); ok {
			c.report.addAsset(src, c.tokens.expand(converted), "js")
			setAttr(script, "src", converted)
		}
	}
}

func (c *Converter) convertOtherAssets(doc *html.Node) {
	// Favicons and other icon links.
	for _, link := range findAll(doc, "link") {
		rel := strings.ToLower(attr(link, "rel"))
		if !strings.Contains(rel, "icon") {
			continue
		}
		if href := attr(link, "href"); href != "" {
			if converted, ok := c.rewriteAsset(href); ok {
				c.report.addAsset(href, c.tokens.expand(converted), "favicon")
				setAttr(link, "href", converted)
			}
		}
	}

	// Background images in inline styles.
	var styled []*html.Node
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && hasAttr(n, "style") {
			styled = append(styled, n)
		}
	})
	for _, n := range styled {
		style := attr(n, "style")
		if converted := c.rewriteStyleURLs(style); converted != style {
			setAttr(n, "style", converted)
		}
	}

	// <source> elements for picture, video, audio.
	for _, source := range findAll(doc, "source") {
		if src := attr(source, "src"); src != "" {
			if converted, ok := c.rewriteAsset(src); ok {
				c.report.addAsset(src, c.tokens.expand(converted), "source")
				setAttr(source, "src", converted)
			}
		}
		if srcset := attr(source, "srcset"); srcset != "" && !c.tokens.isToken(srcset) {
			if converted := c.rewriteSrcset(srcset); converted != srcset {
				setAttr(source, "srcset", converted)
			}
		}
	}

	// Video poster attributes.
	for _, video := range findAll(doc, "video") {
		if poster := attr(video, "poster"); poster != "" {
			if converted, ok := c.rewriteAsset(poster); ok {
				c.report.addAsset(poster, c.tokens.expand(converted), "video-poster")
				setAttr(video, "poster", converted)
			}
		}
	}
}

// rewriteSrcset converts each URL in a srcset value, preserving descriptors.
func (c *Converter) rewriteSrcset(srcset string) string {
	parts := strings.Split(srcset, ",")
	var out []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens := strings.Fields(part)
		url := tokens[0]
		converted, _ := c.rewriteAsset(url)
		if len(tokens) > 1 {
			out = append(out, converted+" "+strings.Join(tokens[1:], " "))
		} else {
			out = append(out, converted)
		}
	}
	return strings.Join(out, ", ")
}

var cssURLPattern = regexp.MustCompile(`(?i)url\(["']?([^"')\s]+)["']?\)`)
var cssImportPattern = regexp.MustCompile(`(?i)@import\s+url\(["']?([^"')\s]+)["']?\)`)

// rewriteStyleURLs converts url(...) references in inline style attributes.
// The whole expression is tokenized so the serializer never escapes the
// quotes around the asset call.
func (c *Converter) rewriteStyleURLs(style string) string {
	return cssURLPattern.ReplaceAllStringFunc(style, func(m string) string {
		url := cssURLPattern.FindStringSubmatch(m)[1]
		if isExternal(url) || c.tokens.isToken(url) {
			return m
		}
		return c.tokens.add("url('" + c.assetExpr(classifyAsset(url)) + "')")
	})
}

// rewriteCSSImports converts @import url(...) references inside <style> text.
func (c *Converter) rewriteCSSImports(css string) string {
	return cssImportPattern.ReplaceAllStringFunc(css, func(m string) string {
		url := cssImportPattern.FindStringSubmatch(m)[1]
		if isExternal(url) || c.tokens.isToken(url) {
			return m
		}
		return "@import url('" + c.tokens.add(c.assetExpr(classifyAsset(url))) + "')"
	})
}
