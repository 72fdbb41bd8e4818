// Package handlers holds the default implementation behind each run mode.
//
// Every handler is built from a Context and exposes one entry point. The
// short-circuit modes (list, generate, quick, fetch) implement Runner; the
// build mode's Gen turns one source file into one HTML slideshow.
//
// Template packs live in directories under the template roots, with their
// manifests named by suffix:
//
//	templates/s6/s6.txt        installed pack manifest (listed)
//	templates/s6/s6.txt.gen    generator templates for -g
//	templates/s6/s6.txt.quick  quick-start sample for -q
//
// A manifest may also sit directly in a template root, in which case its
// pack is the sibling directory of the same name:
//
//	templates/slidy.txt.gen    packs templates/slidy/
//
// Manifest contents are not parsed. Generating copies every file of the
// pack directory except the manifest itself.
package handlers
