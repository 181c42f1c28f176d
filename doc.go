// Package themeforge turns static HTML pages into CMS theme templates and
// renders the resulting pages through explicit, testable collaborators.
//
// The rendering side is a pure function over a page context and three
// injected services: an AssetResolver that maps theme-relative paths to
// URLs, a MenuRenderer that fills named menu locations with navigation
// markup, and a PageFrameProvider that supplies the surrounding document
// chrome. The conversion side (package convert) rewrites plain HTML into
// Twig or WordPress PHP templates, and package scaffold generates the
// project structure those templates live in.
package themeforge
