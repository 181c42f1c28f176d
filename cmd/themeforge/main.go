package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "init":
		err = runInit(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "history":
		err = runHistory(os.Args[2:])
	case "version":
		fmt.Printf("themeforge %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`themeforge - convert static HTML into Twig or WordPress theme templates

Usage:
  themeforge <command> [arguments]

Commands:
  convert <input> [output]   Convert one HTML file
  batch <dir>                Convert every HTML file in a directory
  init <name>                Scaffold a starter theme
  serve                      Preview a theme in the browser
  history                    Show recent conversions
  version                    Print the themeforge version
  help                       Show this help message

Examples:
  themeforge convert page.html templates/page.html.twig -layout base
  themeforge convert page.html page.php -wordpress -theme mytheme
  themeforge batch ./site -wordpress
  themeforge init mytheme -wordpress
  themeforge serve -config theme.yaml -addr :3000`)
}
