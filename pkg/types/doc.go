// Package types defines the filesystem abstraction shared across slideshow
// packages.
package types
