package main

import (
	"flag"

	themeforge "github.com/eringen/themeforge"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "theme.yaml", "theme configuration file")
	addr := fs.String("addr", themeforge.EnvOr("THEMEFORGE_ADDR", ":3000"), "listen address")
	static := fs.String("static", "public", "theme static asset directory")
	secure := fs.Bool("secure", false, "mark cookies secure (behind HTTPS)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	theme, err := themeforge.LoadTheme(*configPath)
	if err != nil {
		return err
	}

	secret := themeforge.EnvOr("THEMEFORGE_SESSION_SECRET", "themeforge-dev-secret")
	app, err := themeforge.NewApp(theme, secret,
		themeforge.WithAddr(*addr),
		themeforge.WithStaticDir(*static),
		themeforge.WithCookieSecure(*secure),
	)
	if err != nil {
		return err
	}
	return app.Start()
}
