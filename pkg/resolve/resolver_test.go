package resolve

import (
	"testing"

	"github.com/arthur-debert/slideshow/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExtensionsBrace(t *testing.T) {
	assert.Equal(t, "{.md,.textile,.rst}", Extensions{".md", ".textile", ".rst"}.Brace())
	assert.Equal(t, "{}", Extensions{}.Brace())
}

func TestResolveFirstMatchWins(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, map[string]string{
		"slide.textile": "h1. Hello",
		"slide.rst":     "Hello\n=====",
	})

	r := NewResolver(fs, Extensions{".md", ".textile", ".rst"})

	got, ok := r.Resolve("slide")
	assert.True(t, ok)
	assert.Equal(t, "slide.textile", got)
}

func TestResolveFollowsListOrderNotDirectoryOrder(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, map[string]string{
		"talk.a": "",
		"talk.z": "",
	})

	got, ok := NewResolver(fs, Extensions{".z", ".a"}).Resolve("talk")
	assert.True(t, ok)
	assert.Equal(t, "talk.z", got)

	got, ok = NewResolver(fs, Extensions{".a", ".z"}).Resolve("talk")
	assert.True(t, ok)
	assert.Equal(t, "talk.a", got)
}

func TestResolve(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, map[string]string{
		"/talks/intro.md":        "# Intro",
		"/talks/v1.2.notes.md":   "# Notes",
		"/talks/dir.md/keep.txt": "",
		"microformats.textile":   "h1. Microformats",
		"/talks/.md.md":          "# Dot",
		"/talks/.notes.md":       "# Hidden notes",
	})
	r := NewResolver(fs, Extensions{".md", ".textile"})

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"keeps_directory", "/talks/intro", "/talks/intro.md", true},
		{"replaces_unknown_extension", "/talks/intro.html", "/talks/intro.md", true},
		{"strips_only_last_extension", "/talks/v1.2.notes.txt", "/talks/v1.2.notes.md", true},
		{"no_directory_uses_current", "microformats", "microformats.textile", true},
		{"directory_is_not_a_match", "/talks/dir", "", false},
		{"not_found", "/talks/missing", "", false},
		{"leading_dot_is_not_an_extension", "/talks/.md", "/talks/.md.md", true},
		{"leading_dot_then_extension", "/talks/.notes.html", "/talks/.notes.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEmptyListIsNotFound(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, map[string]string{"slide.md": ""})

	_, ok := NewResolver(fs, nil).Resolve("slide")
	assert.False(t, ok)
}
