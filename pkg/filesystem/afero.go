package filesystem

import (
	"io/fs"
	"path"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

// Glob walks through afero's io/fs adapter. io/fs paths are never rooted,
// so absolute patterns are matched against a view based at "/" and the
// leading slash is put back on the results.
func (a *aferoFS) Glob(pattern string) ([]string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return doublestar.Glob(afero.NewIOFS(a.fs), path.Clean(pattern), doublestar.WithFilesOnly())
	}

	rooted := afero.NewIOFS(afero.NewBasePathFs(a.fs, "/"))
	matches, err := doublestar.Glob(rooted, strings.TrimPrefix(path.Clean(pattern), "/"), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = "/" + m
	}
	return matches, nil
}
