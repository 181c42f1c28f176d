package convert

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// templatePartPatterns map structural regions to get_template_part names.
var templatePartPatterns = []struct {
	name      string
	selectors []string
	reason    string
}{
	{"template-parts/content", []string{"main", ".content", "#content", ".main-content"}, "main content region detected"},
	{"template-parts/sidebar", []string{"aside", ".sidebar", "#sidebar"}, "sidebar region detected"},
}

func (c *Converter) detectTemplateParts(doc *html.Node) {
	for _, pat := range templatePartPatterns {
		for _, sel := range pat.selectors {
			if len(selectAll(doc, sel)) > 0 {
				c.report.addTemplatePart(pat.name, pat.reason)
				break
			}
		}
	}
}

// convertNavWordPress replaces a menu structure with a wp_nav_menu() call.
func (c *Converter) convertNavWordPress(nav *html.Node) {
	items := menuWorthy(nav)
	if items == nil {
		return
	}
	menuName := detectMenuName(nav)
	location := strings.ToLower(menuName)

	menuClass := "menu"
	if nav.Data == "ul" {
		if cls := attr(nav, "class"); cls != "" {
			menuClass = strings.Fields(cls)[0]
		}
	} else if ul := findFirst(nav, "ul"); ul != nil {
		if cls := attr(ul, "class"); cls != "" {
			menuClass = strings.Fields(cls)[0]
		}
	}

	call := fmt.Sprintf(`<?php
wp_nav_menu(array(
    'theme_location' => '%s',
    'menu_class'     => '%s',
    'container'      => false,
    'fallback_cb'    => false,
));
?>`, location, menuClass)

	if nav.Data == "ul" && nav.Parent != nil {
		// Replace the list itself; wp_nav_menu emits its own <ul>.
		nav.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: c.tokens.add(call)}, nav)
		nav.Parent.RemoveChild(nav)
	} else {
		removeChildren(nav)
		nav.AppendChild(&html.Node{Type: html.TextNode, Data: c.tokens.add(call)})
	}

	c.report.addWPLoop("Navigation menu: "+location, "wp_nav_menu()")
	c.report.addSuggestion(fmt.Sprintf(
		"Register the '%s' menu location with register_nav_menus() in functions.php", location))
}

// detectLoopElements flags markup that should become the WordPress Loop.
func (c *Converter) detectLoopElements(doc *html.Node) {
	articles := findAll(doc, "article")
	if len(articles) > 0 {
		c.report.addWPLoop(fmt.Sprintf("%d <article> element(s)", len(articles)), "The Loop (WP_Query)")
		c.report.addSuggestion(
			"Wrap repeated post markup in the Loop: if (have_posts()) : while (have_posts()) : the_post();")
		return
	}
	var postLike int
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, cls := range classes(n) {
			if strings.Contains(strings.ToLower(cls), "post") {
				postLike++
				return
			}
		}
	})
	if postLike > 0 {
		c.report.addSuggestion(fmt.Sprintf(
			"%d element(s) with post-like classes found; consider converting them to the Loop", postLike))
	}
}

func (c *Converter) renderWordPress(doc *html.Node) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<?php
/**
 * Template Name: Custom Page Template
 *
 * @package %s
 */

get_header();
?>
`, c.ThemeName)

	body := findFirst(doc, "body")
	if body != nil {
		for _, child := range elementChildren(body) {
			switch child.Data {
			case "header":
				c.report.addSuggestion("Move site header markup into header.php (emitted by get_header())")
				continue
			case "footer":
				c.report.addSuggestion("Move site footer markup into footer.php (emitted by get_footer())")
				continue
			case "aside":
				c.report.addSuggestion("Move sidebar markup into sidebar.php (emitted by get_sidebar())")
				continue
			}
			s, err := renderNode(child)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	b.WriteString(`
<?php
get_sidebar();
get_footer();
`)
	return tidy(c.tokens.expand(b.String())), nil
}
