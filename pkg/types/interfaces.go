package types

import (
	"io/fs"
)

// FS is the filesystem interface required by slideshow components.
// Resolution and plugin discovery only ever read through it; template
// copying and slideshow output are the only writers.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Glob expands a pattern that may contain "**" and brace alternatives.
	// Patterns use forward slashes. Results come back in walk order.
	Glob(pattern string) ([]string, error)
}
