package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Target selects the template dialect a conversion emits.
type Target int

const (
	// Twig emits Symfony-style Twig templates.
	Twig Target = iota
	// WordPress emits WordPress PHP templates.
	WordPress
)

// String returns the target name as stored in the conversion history.
func (t Target) String() string {
	if t == WordPress {
		return "wordpress"
	}
	return "twig"
}

// navSelectors are the element patterns checked for navigation menus.
var navSelectors = []string{"nav", "ul.nav", "ul.menu", "ul.navbar-nav", ".navigation", ".main-menu"}

// Converter rewrites one HTML document at a time. A Converter is not safe
// for concurrent use; create one per conversion.
type Converter struct {
	Target    Target
	Layout    string // Twig: base layout to extend, empty for none
	ThemeName string // WordPress: theme identifier

	report *Report
	tokens *tokenTable
}

// NewTwig creates a converter targeting Twig, optionally extending a layout
// (e.g. "base" for base.html.twig).
func NewTwig(layout string) *Converter {
	return &Converter{Target: Twig, Layout: layout}
}

// NewWordPress creates a converter targeting WordPress PHP templates.
func NewWordPress(themeName string) *Converter {
	if themeName == "" {
		themeName = "mytheme"
	}
	return &Converter{Target: WordPress, ThemeName: themeName}
}

// Report returns the report from the last Convert call, or nil before any.
func (c *Converter) Report() *Report {
	return c.report
}

// Convert rewrites the HTML content into the target template dialect.
func (c *Converter) Convert(content string) (string, error) {
	if c.report == nil {
		c.report = &Report{Target: c.Target, Layout: c.Layout, ThemeName: c.ThemeName}
	}
	c.tokens = newTokenTable()

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("convert: parse html: %w", err)
	}

	c.convertImages(doc)
	c.convertStylesheets(doc)
	c.convertScripts(doc)
	c.convertOtherAssets(doc)
	c.convertNavigation(doc)

	var out string
	if c.Target == WordPress {
		c.detectTemplateParts(doc)
		c.detectLoopElements(doc)
		out, err = c.renderWordPress(doc)
	} else {
		c.detectBlocks(doc)
		c.detectRepetitiveElements(doc)
		out, err = c.renderTwig(doc)
	}
	if err != nil {
		return "", err
	}
	return c.tokens.expand(out), nil
}

// ConvertFile converts inputPath and writes the result to outputPath,
// creating parent directories as needed. When writeReport is true the text
// report lands next to the output as <name>_report.txt.
func (c *Converter) ConvertFile(inputPath, outputPath string, writeReport bool) (string, *Report, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("convert: read %s: %w", inputPath, err)
	}

	c.report = &Report{
		Input:     inputPath,
		Output:    outputPath,
		Target:    c.Target,
		Layout:    c.Layout,
		ThemeName: c.ThemeName,
	}

	out, err := c.Convert(string(content))
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", nil, err
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return "", nil, fmt.Errorf("convert: write %s: %w", outputPath, err)
	}

	if writeReport {
		reportPath := reportPathFor(outputPath)
		if err := os.WriteFile(reportPath, []byte(c.report.Text()), 0o644); err != nil {
			return "", nil, fmt.Errorf("convert: write report %s: %w", reportPath, err)
		}
	}
	return out, c.report, nil
}

// ReportPathFor returns where ConvertFile writes the report for an output path.
func ReportPathFor(outputPath string) string {
	return reportPathFor(outputPath)
}

func reportPathFor(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_report.txt"
}

// convertNavigation finds menu structures and rewrites them for the target.
func (c *Converter) convertNavigation(doc *html.Node) {
	seen := make(map[*html.Node]bool)
	for _, sel := range navSelectors {
		for _, nav := range selectAll(doc, sel) {
			if seen[nav] {
				continue
			}
			seen[nav] = true
			if c.Target == WordPress {
				c.convertNavWordPress(nav)
			} else {
				c.convertNavTwig(nav)
			}
		}
	}
}

// menuWorthy returns the list items of a nav-like element when they look
// like a menu: at least two items, the majority structurally similar.
func menuWorthy(nav *html.Node) []*html.Node {
	items := findAll(nav, "li")
	if len(items) < 2 {
		return nil
	}
	similar := 0
	for _, item := range items[1:] {
		if elementsSimilar(items[0], item) {
			similar++
		}
	}
	if similar < len(items)/2 {
		return nil
	}
	return items
}

// detectMenuName derives a loop variable prefix from the nav's id, class, or
// aria-label.
func detectMenuName(nav *html.Node) string {
	if id := attr(nav, "id"); id != "" {
		return strings.ReplaceAll(id, "-", "_")
	}
	for _, cls := range classes(nav) {
		lower := strings.ToLower(cls)
		if strings.Contains(lower, "nav") || strings.Contains(lower, "menu") {
			return strings.ReplaceAll(cls, "-", "_")
		}
	}
	if label := attr(nav, "aria-label"); label != "" {
		label = strings.ToLower(label)
		label = strings.ReplaceAll(label, " ", "_")
		return strings.ReplaceAll(label, "-", "_")
	}
	return "menu"
}

// detectRepetitiveElements flags containers with three or more structurally
// similar children as loop candidates.
func (c *Converter) detectRepetitiveElements(doc *html.Node) {
	for _, tag := range []string{"div", "section", "article"} {
		for _, container := range findAll(doc, tag) {
			children := elementChildren(container)
			if len(children) < 3 {
				continue
			}
			similar := 0
			for _, child := range children[1:] {
				if elementsSimilar(children[0], child) {
					similar++
				}
			}
			if similar >= 2 {
				c.report.addSuggestion(fmt.Sprintf(
					"Consider using a for loop for repeated elements in '%s' (%d similar children found)",
					containerLabel(container), similar+1))
			}
		}
	}
}

func containerLabel(n *html.Node) string {
	if id := attr(n, "id"); id != "" {
		return id
	}
	if cls := classes(n); len(cls) > 0 {
		return cls[0]
	}
	return "container"
}
