package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// walk visits n and every descendant in document order. The visit function
// must not detach the node it is handed; collect first, mutate after.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findAll returns every element under root (inclusive) with the given tag.
func findAll(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// findFirst returns the first element under root (inclusive) with the given tag.
func findFirst(root *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == tag {
			found = n
		}
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func classes(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// elementChildren returns the direct element children of n.
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// textContent concatenates the text descendants of n, trimmed.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return strings.TrimSpace(b.String())
}

// removeChildren detaches every child of n.
func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// selector is a parsed subset of CSS: an optional tag plus at most one
// qualifier (.class, #id, or [attr='value']). This covers every pattern the
// converter needs for nav, block, and template-part detection.
type selector struct {
	tag      string
	class    string
	id       string
	attrKey  string
	attrVal  string
}

func parseSelector(s string) selector {
	var sel selector
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "["); i >= 0 {
		inner := strings.TrimSuffix(s[i+1:], "]")
		if eq := strings.Index(inner, "="); eq >= 0 {
			sel.attrKey = inner[:eq]
			sel.attrVal = strings.Trim(inner[eq+1:], "'\"")
		} else {
			sel.attrKey = inner
		}
		s = s[:i]
	}
	if i := strings.Index(s, "#"); i >= 0 {
		sel.id = s[i+1:]
		s = s[:i]
	}
	if i := strings.Index(s, "."); i >= 0 {
		sel.class = s[i+1:]
		s = s[:i]
	}
	sel.tag = s
	return sel
}

func (sel selector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if sel.tag != "" && n.Data != sel.tag {
		return false
	}
	if sel.class != "" && !hasClass(n, sel.class) {
		return false
	}
	if sel.id != "" && attr(n, "id") != sel.id {
		return false
	}
	if sel.attrKey != "" {
		if sel.attrVal != "" {
			if attr(n, sel.attrKey) != sel.attrVal {
				return false
			}
		} else if !hasAttr(n, sel.attrKey) {
			return false
		}
	}
	return true
}

// selectAll returns every element under root matching the CSS selector subset.
func selectAll(root *html.Node, s string) []*html.Node {
	sel := parseSelector(s)
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if sel.matches(n) {
			out = append(out, n)
		}
	})
	return out
}

// elementsSimilar reports whether two elements share a tag and have the same
// direct child element tag sequence. It is the structural heuristic behind
// menu and repeated-card detection.
func elementsSimilar(a, b *html.Node) bool {
	if a.Data != b.Data {
		return false
	}
	ac := elementChildren(a)
	bc := elementChildren(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i].Data != bc[i].Data {
			return false
		}
	}
	return true
}
