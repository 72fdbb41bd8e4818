// Package paths provides centralized path handling for slideshow.
// It follows the XDG Base Directory specification for the user
// configuration and state directories and locates the installation root
// that holds the built-in template packs.
package paths
