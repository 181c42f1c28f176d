package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustConvert(t *testing.T, c *Converter, input string) string {
	t.Helper()
	out, err := c.Convert(input)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	return out
}

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"images/logo.png", "images/logo.png"},
		{"img/photo.jpg", "images/photo.jpg"},
		{"./assets/img/photo.jpg", "images/photo.jpg"},
		{"../../assets/img/photo.jpg", "images/photo.jpg"},
		{"css/style.css", "css/style.css"},
		{"styles/main.css", "css/main.css"},
		{"js/app.js", "js/app.js"},
		{"scripts/app.js", "js/app.js"},
		{"fonts/icons.woff2", "fonts/icons.woff2"},
		{"../app.css", "css/app.css"},
		{"bundle.js", "js/bundle.js"},
		{"photo.webp", "images/photo.webp"},
		{"download/file.pdf", "download/file.pdf"},
	}
	for _, tt := range tests {
		if got := classifyAsset(tt.in); got != tt.want {
			t.Errorf("classifyAsset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertImagesToTwig(t *testing.T) {
	out := mustConvert(t, NewTwig(""),
		`<html><body><img src="images/logo.png" alt="Logo"></body></html>`)

	if !strings.Contains(out, `src="{{ asset('images/logo.png') }}"`) {
		t.Errorf("image src not converted: %q", out)
	}
	if strings.Contains(out, "@@tf") {
		t.Errorf("unexpanded token left in output: %q", out)
	}
}

func TestConvertStylesheetsAndScripts(t *testing.T) {
	c := NewTwig("")
	out := mustConvert(t, c, `<html><head>
<link rel="stylesheet" href="css/style.css">
</head><body>
<script src="js/main.js"></script>
</body></html>`)

	if !strings.Contains(out, `href="{{ asset('css/style.css') }}"`) {
		t.Errorf("stylesheet href not converted: %q", out)
	}
	if !strings.Contains(out, `src="{{ asset('js/main.js') }}"`) {
		t.Errorf("script src not converted: %q", out)
	}
	if len(c.Report().Assets) != 2 {
		t.Errorf("expected 2 asset conversions, got %d", len(c.Report().Assets))
	}
}

func TestConvertSkipsExternalURLs(t *testing.T) {
	c := NewTwig("")
	out := mustConvert(t, c, `<html><body>
<img src="https://cdn.example.com/pic.png">
<img src="//cdn.example.com/pic2.png">
<img src="data:image/png;base64,AAAA">
<script src="https://unpkg.com/lib.js"></script>
</body></html>`)

	for _, want := range []string{
		`src="https://cdn.example.com/pic.png"`,
		`src="//cdn.example.com/pic2.png"`,
		`src="data:image/png;base64,AAAA"`,
		`src="https://unpkg.com/lib.js"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("external URL was modified, missing %s", want)
		}
	}
	if len(c.Report().Assets) != 0 {
		t.Errorf("expected no asset conversions, got %d", len(c.Report().Assets))
	}
}

func TestConvertSrcset(t *testing.T) {
	out := mustConvert(t, NewTwig(""),
		`<html><body><img src="images/a.png" srcset="images/a.png 1x, images/a@2x.png 2x"></body></html>`)

	if !strings.Contains(out, `{{ asset('images/a@2x.png') }} 2x`) {
		t.Errorf("srcset descriptor lost: %q", out)
	}
}

func TestConvertInlineBackground(t *testing.T) {
	out := mustConvert(t, NewTwig(""),
		`<html><body><section style="background-image:url('images/hero.jpg')"></section></body></html>`)

	if !strings.Contains(out, `url('{{ asset('images/hero.jpg') }}')`) {
		t.Errorf("inline background not converted: %q", out)
	}
}

func TestConvertNavTwig(t *testing.T) {
	c := NewTwig("")
	out := mustConvert(t, c, `<html><body>
<nav><ul class="nav-menu">
<li class="item"><a href="/">Home</a></li>
<li class="item"><a href="/about/">About</a></li>
<li class="item"><a href="/contact/">Contact</a></li>
</ul></nav>
</body></html>`)

	for _, want := range []string{
		"{% for item in menu_items %}",
		"{% endfor %}",
		`href="{{ item.url }}"`,
		"{{ item.label }}",
		"{{ item.active ? 'active' : '' }}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %q", want, out)
		}
	}
	if strings.Contains(out, "About") || strings.Contains(out, "Contact") {
		t.Errorf("duplicate list items survived conversion: %q", out)
	}
	if len(c.Report().Loops) != 1 {
		t.Fatalf("expected 1 loop conversion, got %d", len(c.Report().Loops))
	}
	if c.Report().Loops[0].ItemsVar != "menu_items" {
		t.Errorf("items var = %q", c.Report().Loops[0].ItemsVar)
	}
}

func TestConvertNavUsesNavID(t *testing.T) {
	out := mustConvert(t, NewTwig(""), `<html><body>
<nav id="main-nav"><ul>
<li><a href="/">Home</a></li>
<li><a href="/about/">About</a></li>
</ul></nav>
</body></html>`)

	if !strings.Contains(out, "{% for item in main_nav_items %}") {
		t.Errorf("expected loop var from nav id: %q", out)
	}
}

func TestConvertNavSkipsSingleItem(t *testing.T) {
	out := mustConvert(t, NewTwig(""),
		`<html><body><nav><ul><li><a href="/">Home</a></li></ul></nav></body></html>`)

	if strings.Contains(out, "{% for") {
		t.Errorf("single-item list should not become a loop: %q", out)
	}
}

func TestDetectBlocks(t *testing.T) {
	c := NewTwig("")
	mustConvert(t, c, `<html><body>
<header>h</header>
<main>m</main>
<aside class="sidebar">s</aside>
<footer>f</footer>
</body></html>`)

	names := map[string]bool{}
	for _, blk := range c.Report().Blocks {
		names[blk.Name] = true
	}
	for _, want := range []string{"header", "content", "sidebar", "footer"} {
		if !names[want] {
			t.Errorf("expected block suggestion %q, got %v", want, c.Report().Blocks)
		}
	}
}

func TestDetectRepetitiveElements(t *testing.T) {
	c := NewTwig("")
	mustConvert(t, c, `<html><body><div class="cards">
<div class="card"><h3>A</h3><p>a</p></div>
<div class="card"><h3>B</h3><p>b</p></div>
<div class="card"><h3>C</h3><p>c</p></div>
</div></body></html>`)

	found := false
	for _, s := range c.Report().Suggestions {
		if strings.Contains(s, "for loop") && strings.Contains(s, "cards") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected repetitive-element suggestion, got %v", c.Report().Suggestions)
	}
}

func TestConvertWithLayout(t *testing.T) {
	out := mustConvert(t, NewTwig("base"), `<html><head>
<title>My Page</title>
<link rel="stylesheet" href="css/style.css">
</head><body>
<main><h1>Hello</h1></main>
<script src="js/main.js"></script>
</body></html>`)

	for _, want := range []string{
		"{% extends 'base.html.twig' %}",
		"{% block title %}My Page{% endblock %}",
		"{% block stylesheets %}",
		"{{ parent() }}",
		"{% block body %}",
		"<h1>Hello</h1>",
		"{% block javascripts %}",
		`{{ asset('js/main.js') }}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("layout output missing %s:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "{% extends") {
		t.Errorf("extends must come first:\n%s", out)
	}
}

func TestConvertWithoutLayoutKeepsDocument(t *testing.T) {
	out := mustConvert(t, NewTwig(""),
		`<html><head><title>T</title></head><body><p>hi</p></body></html>`)

	if strings.Contains(out, "{% extends") {
		t.Errorf("unexpected extends without layout: %q", out)
	}
	if !strings.Contains(out, "<html>") || !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("document structure lost: %q", out)
	}
}

func TestConvertWordPressAssets(t *testing.T) {
	out := mustConvert(t, NewWordPress("acme"),
		`<html><body><div><img src="images/logo.png"></div></body></html>`)

	if !strings.Contains(out, `src="<?php echo esc_url(get_template_directory_uri() . '/images/logo.png'); ?>"`) {
		t.Errorf("image src not converted for WordPress: %q", out)
	}
}

func TestConvertWordPressChrome(t *testing.T) {
	out := mustConvert(t, NewWordPress("acme"),
		`<html><body><main><h1>Hello</h1></main></body></html>`)

	for _, want := range []string{
		"Template Name: Custom Page Template",
		"@package acme",
		"get_header();",
		"<h1>Hello</h1>",
		"get_sidebar();",
		"get_footer();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WordPress output missing %s:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "<?php") {
		t.Errorf("template must open with php header:\n%s", out)
	}
}

func TestConvertWordPressNav(t *testing.T) {
	c := NewWordPress("acme")
	out := mustConvert(t, c, `<html><body>
<nav id="primary"><ul class="top-menu">
<li><a href="/">Home</a></li>
<li><a href="/about/">About</a></li>
</ul></nav>
</body></html>`)

	for _, want := range []string{
		"wp_nav_menu(array(",
		"'theme_location' => 'primary'",
		"'menu_class'     => 'top-menu'",
		"'container'      => false",
		"'fallback_cb'    => false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("nav output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<li>") {
		t.Errorf("original list items survived: %q", out)
	}

	registered := false
	for _, s := range c.Report().Suggestions {
		if strings.Contains(s, "register_nav_menus") {
			registered = true
		}
	}
	if !registered {
		t.Errorf("expected register_nav_menus suggestion, got %v", c.Report().Suggestions)
	}
}

func TestConvertWordPressStripsHeaderFooter(t *testing.T) {
	c := NewWordPress("acme")
	out := mustConvert(t, c, `<html><body>
<header><h1>Site</h1></header>
<main><p>content</p></main>
<footer><p>foot</p></footer>
</body></html>`)

	if strings.Contains(out, "<header>") || strings.Contains(out, "<footer>") {
		t.Errorf("header/footer markup should be replaced by get_header/get_footer:\n%s", out)
	}
	if !strings.Contains(out, "<p>content</p>") {
		t.Errorf("main content lost:\n%s", out)
	}
}

func TestDetectLoopElements(t *testing.T) {
	c := NewWordPress("acme")
	mustConvert(t, c, `<html><body><main>
<article><h2>One</h2></article>
<article><h2>Two</h2></article>
</main></body></html>`)

	found := false
	for _, l := range c.Report().Loops {
		if l.LoopType == "The Loop (WP_Query)" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Loop detection for articles, got %v", c.Report().Loops)
	}
}

func TestReportText(t *testing.T) {
	c := NewTwig("base")
	mustConvert(t, c, `<html><head><link rel="stylesheet" href="css/style.css"></head><body>
<nav><ul><li><a href="/">Home</a></li><li><a href="/a/">A</a></li></ul></nav>
</body></html>`)

	text := c.Report().Text()
	for _, want := range []string{
		"HTML TO TWIG CONVERSION REPORT",
		"ASSET CONVERSIONS",
		"css/style.css",
		"LOOP CONVERSIONS",
		"MANUAL REVIEW SUGGESTIONS",
		"END OF REPORT",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %s:\n%s", want, text)
		}
	}
}

func TestReportTextWordPress(t *testing.T) {
	c := NewWordPress("acme")
	mustConvert(t, c, `<html><body><main><p>x</p></main></body></html>`)

	text := c.Report().Text()
	if !strings.Contains(text, "HTML TO WORDPRESS CONVERSION REPORT") {
		t.Errorf("wrong report title:\n%s", text)
	}
	if !strings.Contains(text, "TEMPLATE PARTS SUGGESTIONS") {
		t.Errorf("missing template parts section:\n%s", text)
	}
	if !strings.Contains(text, "Theme:  acme") {
		t.Errorf("missing theme line:\n%s", text)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	output := filepath.Join(dir, "out", "page.html.twig")
	if err := os.WriteFile(input, []byte(`<html><body><img src="images/x.png"></body></html>`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	c := NewTwig("")
	out, report, err := c.ConvertFile(input, output, true)
	if err != nil {
		t.Fatalf("convert file failed: %v", err)
	}
	if !strings.Contains(out, "{{ asset('images/x.png') }}") {
		t.Errorf("unexpected output: %q", out)
	}
	if report.Input != input || report.Output != output {
		t.Errorf("report paths: %q -> %q", report.Input, report.Output)
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(written) != out {
		t.Errorf("file contents differ from returned output")
	}

	reportFile := filepath.Join(dir, "out", "page_report.txt")
	data, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "END OF REPORT") {
		t.Errorf("report file incomplete")
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	c := NewTwig("")
	if _, _, err := c.ConvertFile(filepath.Join(t.TempDir(), "nope.html"), "out.twig", false); err == nil {
		t.Errorf("expected error for missing input")
	}
}

func TestReportPathFor(t *testing.T) {
	if got := ReportPathFor("dir/page.html.twig"); got != "dir/page.html_report.txt" {
		t.Errorf("ReportPathFor = %q", got)
	}
	if got := ReportPathFor("page.php"); got != "page_report.txt" {
		t.Errorf("ReportPathFor = %q", got)
	}
}
