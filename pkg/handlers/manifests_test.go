package handlers

import (
	"testing"

	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var packFiles = map[string]string{
	"/install/templates/s6/s6.txt":                 "s6 manifest",
	"/install/templates/s6/s6.txt.gen":             "s6 generator manifest",
	"/install/templates/s6/style.css":              "body {}",
	"/install/templates/s6/js/slides.js":           "// slides",
	"/config/templates/s6/s6.txt.gen":              "user s6 generator manifest",
	"/config/templates/s6/style.css":               "body { color: red }",
	"/work/templates/slidy.txt.gen":                "slidy generator manifest",
	"/install/templates/welcome/welcome.txt.quick": "quick manifest",
	"/install/templates/welcome/welcome.md":        "# Welcome",
}

func TestManifestFinderFind(t *testing.T) {
	ctx, fs, _ := newTestContext(t, options.Options{}, packFiles)
	finder := NewManifestFinder(fs, ctx.Paths.TemplateDirs())

	gen, err := finder.Find(Generator)
	require.NoError(t, err)
	require.Len(t, gen, 2)

	assert.Equal(t, "s6.txt", gen[0].Name)
	assert.Equal(t, "/config/templates/s6/s6.txt.gen", gen[0].Path, "user root wins over the install root")
	assert.Equal(t, "/config/templates/s6", gen[0].Dir())
	assert.Equal(t, "slidy.txt", gen[1].Name)
	assert.Equal(t, "/work/templates/slidy", gen[1].Dir(), "a top-level manifest packs its sibling directory")

	installed, err := finder.Find(Installed)
	require.NoError(t, err)
	require.Len(t, installed, 1)
	assert.Equal(t, "/install/templates/s6/s6.txt", installed[0].Path)
}

func TestManifestFinderLookup(t *testing.T) {
	ctx, fs, _ := newTestContext(t, options.Options{}, packFiles)
	finder := NewManifestFinder(fs, ctx.Paths.TemplateDirs())

	tests := []struct {
		name     string
		kind     ManifestKind
		wantPath string
		wantCode errors.ErrorCode
	}{
		{name: "s6.txt", kind: Generator, wantPath: "/config/templates/s6/s6.txt.gen"},
		{name: "s6", kind: Generator, wantPath: "/config/templates/s6/s6.txt.gen"},
		{name: "welcome.txt", kind: QuickStart, wantPath: "/install/templates/welcome/welcome.txt.quick"},
		{name: "nosuchpack", kind: Generator, wantCode: errors.ErrUnknownManifest},
		{name: "welcome", kind: Generator, wantCode: errors.ErrUnknownManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name+string(tt.kind), func(t *testing.T) {
			m, err := finder.Lookup(tt.name, tt.kind)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, m.Path)
		})
	}
}

func TestManifestFinderLookupDetails(t *testing.T) {
	ctx, fs, _ := newTestContext(t, options.Options{}, packFiles)
	finder := NewManifestFinder(fs, ctx.Paths.TemplateDirs())

	_, err := finder.Lookup("nosuchpack", Generator)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "nosuchpack", details["manifest"])
	assert.Equal(t, []string{"s6.txt", "slidy.txt"}, details["installed"])
	assert.Equal(t, errors.ExitUnknownManifest, errors.ExitCode(err))
}

func TestManifestDir(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantDir  string
		topLevel bool
	}{
		{"inside_pack_dir", Manifest{Name: "s6.txt", Path: "/t/s6/s6.txt.gen", Root: "/t"}, "/t/s6", false},
		{"top_level", Manifest{Name: "s6.txt", Path: "/t/s6.txt.gen", Root: "/t"}, "/t/s6", true},
		{"top_level_unclean_root", Manifest{Name: "s5blank.txt", Path: "/t/s5blank.txt", Root: "/t/"}, "/t/s5blank", true},
		{"no_root", Manifest{Name: "s6.txt", Path: "/t/s6.txt.gen"}, "/t", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDir, tt.manifest.Dir())
			assert.Equal(t, tt.topLevel, tt.manifest.TopLevel())
		})
	}
}
