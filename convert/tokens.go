package convert

import (
	"strconv"
	"strings"
)

// tokenTable holds raw template fragments keyed by placeholder tokens. The
// HTML serializer escapes quotes and angle brackets, so template code is
// inserted as @@tfN@@ markers and swapped back in after rendering.
type tokenTable struct {
	raw []string
}

func newTokenTable() *tokenTable {
	return &tokenTable{}
}

// add registers a raw fragment and returns its placeholder token.
func (t *tokenTable) add(raw string) string {
	t.raw = append(t.raw, raw)
	return "@@tf" + strconv.Itoa(len(t.raw)-1) + "@@"
}

// isToken reports whether the value contains a placeholder already.
func (t *tokenTable) isToken(v string) bool {
	return strings.Contains(v, "@@tf")
}

// expand replaces every placeholder in s with its raw fragment. Highest
// indices first, so @@tf1@@ never matches inside @@tf10@@.
func (t *tokenTable) expand(s string) string {
	for i := len(t.raw) - 1; i >= 0; i-- {
		s = strings.ReplaceAll(s, "@@tf"+strconv.Itoa(i)+"@@", t.raw[i])
	}
	return s
}
