package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/eringen/themeforge/scaffold"
)

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	wordpress := fs.Bool("wordpress", false, "scaffold a WordPress theme instead of Twig templates")
	output := fs.String("output", "", "output directory (default: the theme name)")
	description := fs.String("description", "A custom theme", "theme description")
	author := fs.String("author", "", "theme author")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: themeforge init <name> [flags]")
	}
	name := fs.Arg(0)
	dir := *output
	if dir == "" {
		dir = name
	}

	kind := scaffold.KindTwig
	if *wordpress {
		kind = scaffold.KindWordPress
	}
	written, err := scaffold.Generate(kind, dir, scaffold.Data{
		ThemeName:   name,
		Description: *description,
		Author:      *author,
		Year:        time.Now().Year(),
	})
	if err != nil {
		return err
	}
	for _, p := range written {
		fmt.Printf("  created %s\n", p)
	}
	fmt.Printf("Scaffolded %s theme %q in %s\n", kind, name, dir)
	return nil
}
