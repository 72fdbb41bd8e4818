package options

import (
	"testing"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestModePrecedence(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Mode
	}{
		{"nothing_set_builds", Options{}, ModeBuild},
		{"list", Options{List: true}, ModeList},
		{"generate", Options{Generate: true}, ModeGenerate},
		{"quick", Options{Quick: true}, ModeQuick},
		{"fetch", Options{FetchURI: "s5blank"}, ModeFetch},
		{"list_beats_generate", Options{List: true, Generate: true}, ModeList},
		{"generate_beats_quick", Options{Generate: true, Quick: true}, ModeGenerate},
		{"quick_beats_fetch", Options{Quick: true, FetchURI: "x"}, ModeQuick},
		{"all_set", Options{List: true, Generate: true, Quick: true, FetchURI: "x"}, ModeList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Mode())
		})
	}
}

func TestBuildNeverSelectedWithModeFlag(t *testing.T) {
	for mask := 1; mask < 16; mask++ {
		o := Options{
			List:     mask&1 != 0,
			Generate: mask&2 != 0,
			Quick:    mask&4 != 0,
		}
		if mask&8 != 0 {
			o.FetchURI = "uri"
		}
		assert.NotEqual(t, ModeBuild, o.Mode(), "mask %b", mask)
		assert.Equal(t, o.RequestedModes()[0], o.Mode(), "mask %b", mask)
	}
}

func TestRequestedModes(t *testing.T) {
	assert.Empty(t, Options{}.RequestedModes())
	assert.Equal(t, []Mode{ModeList, ModeGenerate}, Options{List: true, Generate: true}.RequestedModes())
}

func TestWithDefaults(t *testing.T) {
	d := config.Defaults{Manifest: "s6.txt", Output: ".", HeaderLevel: 1}

	got := Options{}.WithDefaults(d)
	assert.Equal(t, "s6.txt", got.Manifest)
	assert.Equal(t, ".", got.OutputPath)
	assert.Equal(t, 1, got.HeaderLevel)

	got = Options{Manifest: "s5blank.txt", OutputPath: "slides", HeaderLevel: 2}.WithDefaults(d)
	assert.Equal(t, "s5blank.txt", got.Manifest)
	assert.Equal(t, "slides", got.OutputPath)
	assert.Equal(t, 2, got.HeaderLevel)
}

func TestModeString(t *testing.T) {
	for _, m := range Modes {
		assert.NotEqual(t, "unknown", m.String())
	}
	assert.Equal(t, "unknown", Mode(99).String())
}
