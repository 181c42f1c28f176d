package convert

import (
	"fmt"
	"strings"
)

// AssetConversion records one rewritten asset reference.
type AssetConversion struct {
	Original  string
	Converted string
	Type      string // img, css, js, favicon, source, video-poster
}

// BlockSuggestion is a Twig block the converter recommends extracting.
type BlockSuggestion struct {
	Name   string
	Reason string
}

// TemplatePart is a WordPress get_template_part() the converter recommends.
type TemplatePart struct {
	Name   string
	Reason string
}

// LoopConversion records a repeated structure converted to (or flagged for)
// a template loop. ItemsVar/ItemVar are set for Twig, LoopType for WordPress.
type LoopConversion struct {
	Element  string
	ItemsVar string
	ItemVar  string
	LoopType string
}

// Report collects everything a conversion did automatically and everything
// left for manual review. Its text form is written next to the output file.
type Report struct {
	Input     string
	Output    string
	Target    Target
	Layout    string // Twig only
	ThemeName string // WordPress only

	Assets        []AssetConversion
	Blocks        []BlockSuggestion
	TemplateParts []TemplatePart
	Loops         []LoopConversion
	Suggestions   []string
	Warnings      []string
}

func (r *Report) addAsset(original, converted, typ string) {
	r.Assets = append(r.Assets, AssetConversion{Original: original, Converted: converted, Type: typ})
}

func (r *Report) addBlock(name, reason string) {
	r.Blocks = append(r.Blocks, BlockSuggestion{Name: name, Reason: reason})
}

func (r *Report) addTemplatePart(name, reason string) {
	r.TemplateParts = append(r.TemplateParts, TemplatePart{Name: name, Reason: reason})
}

func (r *Report) addLoop(element, itemsVar, itemVar string) {
	r.Loops = append(r.Loops, LoopConversion{Element: element, ItemsVar: itemsVar, ItemVar: itemVar})
}

func (r *Report) addWPLoop(element, loopType string) {
	r.Loops = append(r.Loops, LoopConversion{Element: element, LoopType: loopType})
}

func (r *Report) addSuggestion(s string) {
	r.Suggestions = append(r.Suggestions, s)
}

func (r *Report) addWarning(s string) {
	r.Warnings = append(r.Warnings, s)
}

const reportRule = "======================================================================"
const reportDash = "----------------------------------------------------------------------"

// Text renders the human-readable conversion report.
func (r *Report) Text() string {
	var b strings.Builder
	title := "HTML TO TWIG CONVERSION REPORT"
	if r.Target == WordPress {
		title = "HTML TO WORDPRESS CONVERSION REPORT"
	}
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", reportRule, title, reportRule)
	fmt.Fprintf(&b, "Input:  %s\n", r.Input)
	fmt.Fprintf(&b, "Output: %s\n", r.Output)
	if r.Target == WordPress {
		fmt.Fprintf(&b, "Theme:  %s\n", r.ThemeName)
	} else if r.Layout != "" {
		fmt.Fprintf(&b, "Layout: %s\n", r.Layout)
	}
	b.WriteString("\n")

	section(&b, "ASSET CONVERSIONS")
	if len(r.Assets) == 0 {
		b.WriteString("  No asset conversions performed.\n\n")
	}
	for _, a := range r.Assets {
		fmt.Fprintf(&b, "  [%s]\n", strings.ToUpper(a.Type))
		fmt.Fprintf(&b, "    Before: %s\n", a.Original)
		fmt.Fprintf(&b, "    After:  %s\n\n", a.Converted)
	}

	if r.Target == WordPress {
		section(&b, "TEMPLATE PARTS SUGGESTIONS")
		if len(r.TemplateParts) == 0 {
			b.WriteString("  No template part suggestions.\n\n")
		}
		for _, p := range r.TemplateParts {
			fmt.Fprintf(&b, "  get_template_part('%s')\n", p.Name)
			fmt.Fprintf(&b, "    Reason: %s\n\n", p.Reason)
		}
	} else {
		section(&b, "BLOCK SUGGESTIONS")
		if len(r.Blocks) == 0 {
			b.WriteString("  No block suggestions.\n\n")
		}
		for _, blk := range r.Blocks {
			fmt.Fprintf(&b, "  {%% block %s %%}\n", blk.Name)
			fmt.Fprintf(&b, "    Reason: %s\n\n", blk.Reason)
		}
	}

	section(&b, "LOOP CONVERSIONS")
	if len(r.Loops) == 0 {
		b.WriteString("  No loop conversions performed.\n\n")
	}
	for _, l := range r.Loops {
		fmt.Fprintf(&b, "  Element: %s\n", l.Element)
		if r.Target == WordPress {
			fmt.Fprintf(&b, "    Type: %s\n\n", l.LoopType)
		} else {
			fmt.Fprintf(&b, "    {%% for %s in %s %%}\n\n", l.ItemVar, l.ItemsVar)
		}
	}

	section(&b, "MANUAL REVIEW SUGGESTIONS")
	if len(r.Suggestions) == 0 {
		b.WriteString("  No manual review needed.\n\n")
	}
	for i, s := range r.Suggestions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	if len(r.Suggestions) > 0 {
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		section(&b, "WARNINGS")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  ! %s\n", w)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\nEND OF REPORT\n%s", reportRule, reportRule)
	return b.String()
}

func section(b *strings.Builder, name string) {
	fmt.Fprintf(b, "%s\n%s\n%s\n", reportDash, name, reportDash)
}
