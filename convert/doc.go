// Package convert rewrites static HTML pages into CMS theme templates.
//
// Two targets are supported: Twig (asset() calls, {% for %} navigation
// loops, optional layout inheritance) and WordPress PHP
// (get_template_directory_uri() asset URLs, wp_nav_menu() navigation,
// get_header/get_footer chrome). Each conversion produces a Report listing
// what was rewritten automatically and what needs manual review.
package convert
