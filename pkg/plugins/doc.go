// Package plugins discovers and loads optional user plugins.
//
// A plugin is a declarative TOML or YAML file found under a lib/ directory,
// either in the configuration directory or in the working directory. It
// contributes named helpers that the slideshow builder expands in source
// text. Each file loads independently: a broken plugin is reported and
// skipped, and the next one is still loaded.
//
// Example plugin (lib/analytics.toml):
//
//	name = "analytics"
//	description = "Tracking snippet for published talks"
//
//	[helpers]
//	tracker = "<script src=\"/t.js\"></script>"
package plugins
