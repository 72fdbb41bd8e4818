// Package style renders slideshow's terminal output: diagnostics, the
// template list and markdown help. Every renderer has a plain-text form
// used when output is not a colour-capable terminal.
package style
