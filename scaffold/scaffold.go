// Package scaffold generates starter theme trees for the supported targets.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:templates
var templates embed.FS

// Kind selects which starter tree Generate writes.
type Kind int

const (
	KindTwig Kind = iota
	KindWordPress
)

func (k Kind) String() string {
	if k == KindWordPress {
		return "wordpress"
	}
	return "twig"
}

func (k Kind) dir() string {
	if k == KindWordPress {
		return "templates/wordpress"
	}
	return "templates/twig"
}

// Data fills the placeholders in the starter files.
type Data struct {
	ThemeName   string
	Description string
	Author      string
	Year        int
}

// Generate writes the starter tree for kind under dir, creating directories
// as needed, and returns the paths written. Existing files are an error so a
// scaffold never clobbers work in progress.
func Generate(kind Kind, dir string, data Data) ([]string, error) {
	if data.ThemeName == "" {
		data.ThemeName = "mytheme"
	}
	root := kind.dir()

	var written []string
	err := fs.WalkDir(templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root+"/")
		rel = strings.TrimSuffix(rel, ".tmpl")
		dest := filepath.Join(dir, filepath.FromSlash(rel))

		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("scaffold: %s already exists", dest)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}

		raw, err := templates.ReadFile(p)
		if err != nil {
			return err
		}
		// Square-bracket delimiters keep the template engine out of the
		// Twig {{ }} and {% %} syntax inside the starter files.
		tmpl, err := template.New(rel).Delims("[[", "]]").Parse(string(raw))
		if err != nil {
			return fmt.Errorf("scaffold: parse %s: %w", p, err)
		}
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		if err := tmpl.Execute(f, data); err != nil {
			f.Close()
			return fmt.Errorf("scaffold: render %s: %w", p, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, dest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
