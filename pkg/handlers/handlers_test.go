package handlers

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/testutil"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// newTestContext lays out /config, /install and /work on an in-memory
// filesystem. Output goes to /work/out unless opts says otherwise.
func newTestContext(t *testing.T, opts options.Options, files map[string]string) (Context, types.FS, *bytes.Buffer) {
	t.Helper()

	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, files)

	p := paths.NewFromLayout("/config", "/install", "/work")
	cfg := config.Default(p)
	if opts.OutputPath == "" {
		opts.OutputPath = "/work/out"
	}

	out := &bytes.Buffer{}
	return Context{
		Logger:  zerolog.Nop(),
		Options: opts.WithDefaults(cfg.Defaults),
		Config:  cfg,
		Paths:   p,
		FS:      fs,
		Out:     out,
	}, fs, out
}
