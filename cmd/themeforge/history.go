package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	themeforge "github.com/eringen/themeforge"
)

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	db := fs.String("db", themeforge.EnvOr("THEMEFORGE_DB", "themeforge.db"), "history database path")
	limit := fs.Int("limit", 20, "number of runs to show (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := themeforge.NewStore(*db)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(*limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tTARGET\tINPUT\tOUTPUT\tASSETS\tLOOPS\tSUGG\tWARN")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			r.ID, r.CreatedAt, r.Target, r.Input, r.Output, r.Assets, r.Loops, r.Suggestions, r.Warnings)
	}
	return w.Flush()
}
