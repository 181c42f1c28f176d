package convert

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockPatterns map structural regions to suggested Twig block names.
var blockPatterns = []struct {
	name      string
	selectors []string
	reason    string
}{
	{"header", []string{"header", ".header", "#header"}, "page header detected"},
	{"navigation", []string{"nav", ".navbar", ".navigation"}, "navigation region detected"},
	{"content", []string{"main", ".content", "#content", ".main-content"}, "main content region detected"},
	{"sidebar", []string{"aside", ".sidebar", "#sidebar"}, "sidebar region detected"},
	{"footer", []string{"footer", ".footer", "#footer"}, "page footer detected"},
}

func (c *Converter) detectBlocks(doc *html.Node) {
	for _, pat := range blockPatterns {
		for _, sel := range pat.selectors {
			if len(selectAll(doc, sel)) > 0 {
				c.report.addBlock(pat.name, pat.reason)
				break
			}
		}
	}
}

// convertNavTwig rewrites a menu list into a {% for %} loop over menu items.
// The first list item becomes the loop body; the rest are removed.
func (c *Converter) convertNavTwig(nav *html.Node) {
	items := menuWorthy(nav)
	if items == nil {
		return
	}
	menuName := detectMenuName(nav)
	itemsVar := menuName + "_items"

	first := items[0]
	if a := findFirst(first, "a"); a != nil {
		setAttr(a, "href", c.tokens.add("{{ item.url }}"))
		removeChildren(a)
		a.AppendChild(&html.Node{Type: html.TextNode, Data: c.tokens.add("{{ item.label }}")})
	}
	active := c.tokens.add("{{ item.active ? 'active' : '' }}")
	if cls := attr(first, "class"); cls != "" {
		setAttr(first, "class", cls+" "+active)
	} else {
		setAttr(first, "class", active)
	}

	parent := first.Parent
	open := &html.Node{Type: html.TextNode, Data: c.tokens.add("{% for item in " + itemsVar + " %}\n")}
	parent.InsertBefore(open, first)
	closing := &html.Node{Type: html.TextNode, Data: c.tokens.add("\n{% endfor %}")}
	if next := first.NextSibling; next != nil {
		parent.InsertBefore(closing, next)
	} else {
		parent.AppendChild(closing)
	}
	for _, item := range items[1:] {
		if item.Parent != nil {
			item.Parent.RemoveChild(item)
		}
	}

	c.report.addLoop("<"+nav.Data+"> menu", itemsVar, "item")
	c.report.addSuggestion(fmt.Sprintf(
		"Provide '%s' in the template context as a list of {label, url, active} items", itemsVar))
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)
var contentClassPattern = regexp.MustCompile(`(?i)\b(content|main)\b`)

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *Converter) renderTwig(doc *html.Node) (string, error) {
	if c.Layout == "" {
		out, err := renderNode(doc)
		if err != nil {
			return "", err
		}
		return tidy(c.tokens.expand(out)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "{%% extends '%s.html.twig' %%}\n\n", c.Layout)

	if title := findFirst(doc, "title"); title != nil {
		fmt.Fprintf(&b, "{%% block title %%}%s{%% endblock %%}\n\n", textContent(title))
	}

	if head := findFirst(doc, "head"); head != nil {
		var sheets []string
		for _, link := range findAll(head, "link") {
			if !strings.EqualFold(attr(link, "rel"), "stylesheet") {
				continue
			}
			s, err := renderNode(link)
			if err != nil {
				return "", err
			}
			sheets = append(sheets, s)
		}
		for _, style := range findAll(head, "style") {
			s, err := renderNode(style)
			if err != nil {
				return "", err
			}
			sheets = append(sheets, s)
		}
		if len(sheets) > 0 {
			b.WriteString("{% block stylesheets %}\n{{ parent() }}\n")
			b.WriteString(strings.Join(sheets, "\n"))
			b.WriteString("\n{% endblock %}\n\n")
		}
	}

	body := findFirst(doc, "body")
	b.WriteString("{% block body %}\n")
	for _, n := range mainContent(body) {
		s, err := renderNode(n)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("{% endblock %}\n")

	if body != nil {
		var scripts []string
		for _, script := range findAll(body, "script") {
			s, err := renderNode(script)
			if err != nil {
				return "", err
			}
			scripts = append(scripts, s)
		}
		if len(scripts) > 0 {
			b.WriteString("\n{% block javascripts %}\n{{ parent() }}\n")
			b.WriteString(strings.Join(scripts, "\n"))
			b.WriteString("\n{% endblock %}\n")
		}
	}

	return tidy(c.tokens.expand(b.String())), nil
}

// mainContent picks the region that becomes the body block: <main>, then
// <article>, then the first element with a content/main class, then all body
// children except scripts.
func mainContent(body *html.Node) []*html.Node {
	if body == nil {
		return nil
	}
	if main := findFirst(body, "main"); main != nil {
		return []*html.Node{main}
	}
	if article := findFirst(body, "article"); article != nil {
		return []*html.Node{article}
	}
	var byClass *html.Node
	walk(body, func(n *html.Node) {
		if byClass == nil && n != body && n.Type == html.ElementNode &&
			contentClassPattern.MatchString(attr(n, "class")) {
			byClass = n
		}
	})
	if byClass != nil {
		return []*html.Node{byClass}
	}
	var out []*html.Node
	for _, child := range elementChildren(body) {
		if child.Data != "script" {
			out = append(out, child)
		}
	}
	return out
}

func tidy(s string) string {
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s) + "\n"
}
