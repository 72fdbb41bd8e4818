package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/slideshow/pkg/filesystem"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles creates every file in files (path -> content), creating
// parent directories as needed. Files are written in sorted path order.
func WriteFiles(t *testing.T, fs types.FS, files map[string]string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, fs.WriteFile(name, []byte(files[name]), 0644))
	}
}

// ReadFile returns the content of name, failing the test if it is missing.
func ReadFile(t *testing.T, fs types.FS, name string) string {
	t.Helper()

	data, err := fs.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

// AssertNotExists fails the test if name exists.
func AssertNotExists(t *testing.T, fs types.FS, name string) {
	t.Helper()

	_, err := fs.Stat(name)
	require.Error(t, err, "expected %s not to exist", name)
}
