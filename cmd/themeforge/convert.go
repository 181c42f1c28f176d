package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	themeforge "github.com/eringen/themeforge"
	"github.com/eringen/themeforge/convert"
)

// convertFlags are shared by convert and batch.
type convertFlags struct {
	layout    string
	wordpress bool
	theme     string
	noReport  bool
	noHistory bool
	db        string
}

func (f *convertFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.layout, "layout", "", "Twig layout to extend (e.g. \"base\")")
	fs.BoolVar(&f.wordpress, "wordpress", false, "emit a WordPress PHP template instead of Twig")
	fs.StringVar(&f.theme, "theme", "mytheme", "WordPress theme name")
	fs.BoolVar(&f.noReport, "no-report", false, "skip writing the conversion report")
	fs.BoolVar(&f.noHistory, "no-history", false, "skip recording the run in the history database")
	fs.StringVar(&f.db, "db", themeforge.EnvOr("THEMEFORGE_DB", "themeforge.db"), "history database path")
}

func (f *convertFlags) converter() *convert.Converter {
	if f.wordpress {
		return convert.NewWordPress(f.theme)
	}
	return convert.NewTwig(f.layout)
}

func (f *convertFlags) outputFor(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if f.wordpress {
		return base + ".php"
	}
	return base + ".html.twig"
}

func runConvert(args []string) error {
	flags := flag.NewFlagSet("convert", flag.ExitOnError)
	var cf convertFlags
	cf.register(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return fmt.Errorf("usage: themeforge convert <input.html> [output] [flags]")
	}
	input := flags.Arg(0)
	output := flags.Arg(1)
	if output == "" {
		output = cf.outputFor(input)
	}

	c := cf.converter()
	_, report, err := c.ConvertFile(input, output, !cf.noReport)
	if err != nil {
		return err
	}
	if !cf.noHistory {
		if err := recordRun(cf.db, report); err != nil {
			return err
		}
	}

	fmt.Printf("Converted %s -> %s\n", input, output)
	if !cf.noReport {
		fmt.Printf("Report written to %s\n", convert.ReportPathFor(output))
	}
	summarize(report)
	return nil
}

func runBatch(args []string) error {
	flags := flag.NewFlagSet("batch", flag.ExitOnError)
	var cf convertFlags
	cf.register(flags)
	outDir := flags.String("output", "converted", "output directory")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return fmt.Errorf("usage: themeforge batch <dir> [flags]")
	}
	root := flags.Arg(0)

	var inputs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".html") {
			inputs = append(inputs, p)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .html files found under %s", root)
	}

	for _, input := range inputs {
		rel, err := filepath.Rel(root, input)
		if err != nil {
			return err
		}
		output := filepath.Join(*outDir, cf.outputFor(rel))

		c := cf.converter()
		_, report, err := c.ConvertFile(input, output, !cf.noReport)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  FAILED %s: %v\n", input, err)
			continue
		}
		if !cf.noHistory {
			if err := recordRun(cf.db, report); err != nil {
				return err
			}
		}
		fmt.Printf("  %s -> %s\n", input, output)
	}
	fmt.Printf("Converted %d file(s) into %s\n", len(inputs), *outDir)
	return nil
}

func recordRun(dbPath string, report *convert.Report) error {
	store, err := themeforge.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(themeforge.ConversionRun{
		Input:       report.Input,
		Output:      report.Output,
		Target:      report.Target.String(),
		Assets:      len(report.Assets),
		Loops:       len(report.Loops),
		Suggestions: len(report.Suggestions),
		Warnings:    len(report.Warnings),
	})
	return err
}

func summarize(report *convert.Report) {
	fmt.Printf("  assets: %d  loops: %d  suggestions: %d  warnings: %d\n",
		len(report.Assets), len(report.Loops), len(report.Suggestions), len(report.Warnings))
}
