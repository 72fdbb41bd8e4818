package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/arthur-debert/slideshow/pkg/diagnostics"
	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/handlers"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/plugins"
	"github.com/arthur-debert/slideshow/pkg/testutil"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts handler construction and captures what the build
// handler was asked to do
type recorder struct {
	constructed map[options.Mode]int
	built       []string
	failOn      map[string]bool
	registry    *plugins.Registry
	ctx         handlers.Context
}

func newRecorder() *recorder {
	return &recorder{
		constructed: make(map[options.Mode]int),
		failOn:      make(map[string]bool),
	}
}

func (rec *recorder) runner(mode options.Mode) func(handlers.Context) handlers.Runner {
	return func(ctx handlers.Context) handlers.Runner {
		rec.constructed[mode]++
		rec.ctx = ctx
		return handlers.RunnerFunc(func() error { return nil })
	}
}

func (rec *recorder) CreateSlideshow(file string) (string, error) {
	rec.built = append(rec.built, file)
	if rec.failOn[file] {
		return "", errors.Newf(errors.ErrBuild, "cannot build %s", file)
	}
	return file + ".html", nil
}

func (rec *recorder) set() Handlers {
	return Handlers{
		List:     rec.runner(options.ModeList),
		Generate: rec.runner(options.ModeGenerate),
		Quick:    rec.runner(options.ModeQuick),
		Fetch:    rec.runner(options.ModeFetch),
		Build: func(ctx handlers.Context, registry *plugins.Registry) Builder {
			rec.constructed[options.ModeBuild]++
			rec.ctx = ctx
			rec.registry = registry
			return rec
		},
	}
}

type fixture struct {
	fs        types.FS
	out       *bytes.Buffer
	collector *diagnostics.Collector
	runner    *Runner
}

func newFixture(t *testing.T, files map[string]string, h Handlers) *fixture {
	t.Helper()

	fs := testutil.NewTestFS()
	testutil.WriteFiles(t, fs, files)

	p := paths.NewFromLayout("/config", "/install", "/work")
	f := &fixture{
		fs:        fs,
		out:       &bytes.Buffer{},
		collector: diagnostics.NewCollector(nil),
	}
	f.runner = New(Env{
		Config:   config.Default(p),
		Paths:    p,
		FS:       fs,
		Out:      f.out,
		Reporter: f.collector,
		Handlers: h,
	})
	return f
}

func TestRunSelectsExactlyOneMode(t *testing.T) {
	tests := []struct {
		name string
		opts options.Options
		want options.Mode
	}{
		{name: "none", opts: options.Options{}, want: options.ModeBuild},
		{name: "list", opts: options.Options{List: true}, want: options.ModeList},
		{name: "generate", opts: options.Options{Generate: true}, want: options.ModeGenerate},
		{name: "quick", opts: options.Options{Quick: true}, want: options.ModeQuick},
		{name: "fetch", opts: options.Options{FetchURI: "/src/s5"}, want: options.ModeFetch},
		{name: "list beats generate", opts: options.Options{List: true, Generate: true}, want: options.ModeList},
		{name: "generate beats quick", opts: options.Options{Generate: true, Quick: true}, want: options.ModeGenerate},
		{name: "quick beats fetch", opts: options.Options{Quick: true, FetchURI: "/src"}, want: options.ModeQuick},
		{name: "all set", opts: options.Options{List: true, Generate: true, Quick: true, FetchURI: "/src"}, want: options.ModeList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			f := newFixture(t, map[string]string{"/work/talk.md": "# Talk"}, rec.set())

			require.NoError(t, f.runner.Run(tt.opts, []string{"/work/talk.md"}))

			assert.Equal(t, map[options.Mode]int{tt.want: 1}, rec.constructed)
			if tt.want != options.ModeBuild {
				assert.Empty(t, rec.built, "build handler must not run in %s mode", tt.want)
			}
		})
	}
}

func TestRunListAndGenerateRunsListOnly(t *testing.T) {
	rec := newRecorder()
	f := newFixture(t, nil, rec.set())

	require.NoError(t, f.runner.Run(options.Options{List: true, Generate: true}, nil))

	assert.Equal(t, 1, rec.constructed[options.ModeList])
	assert.Zero(t, rec.constructed[options.ModeGenerate])

	conflicts := f.collector.OfKind(diagnostics.KindModeConflict)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "more than one mode requested; running list, ignoring generate", conflicts[0].Message)
}

func TestRunPrintsBannerFirst(t *testing.T) {
	rec := newRecorder()
	f := newFixture(t, nil, rec.set())

	require.NoError(t, f.runner.Run(options.Options{List: true}, nil))

	assert.True(t, strings.HasPrefix(f.out.String(), "Slide Show (S9) Version: "))
}

func TestRunPassesDefaultsToHandlers(t *testing.T) {
	rec := newRecorder()
	f := newFixture(t, nil, rec.set())

	require.NoError(t, f.runner.Run(options.Options{Generate: true}, nil))

	assert.Equal(t, "s6.txt", rec.ctx.Options.Manifest)
	assert.Equal(t, ".", rec.ctx.Options.OutputPath)
	assert.Equal(t, 1, rec.ctx.Options.HeaderLevel)
	assert.Same(t, f.runner.env.Config, rec.ctx.Config)
}

func TestRunGenerateUnknownManifest(t *testing.T) {
	f := newFixture(t, map[string]string{
		"/install/templates/s6/s6.txt.gen": "manifest",
		"/install/templates/s6/style.css":  "body {}",
	}, Handlers{})

	err := f.runner.Run(options.Options{Generate: true, Manifest: "nosuchpack", OutputPath: "/work/out"}, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUnknownManifest, errors.ExitCode(err))

	testutil.AssertNotExists(t, f.fs, "/work/out")
}

func TestRunBuild(t *testing.T) {
	rec := newRecorder()
	rec.failOn["/work/b.md"] = true

	f := newFixture(t, map[string]string{
		"/work/a.md":                "# A",
		"/work/b.md":                "# B",
		"/work/c.textile":           "h1. C",
		"/config/lib/broken.toml":   "name = [",
		"/config/lib/greet.toml":    "name = \"greet\"\n[helpers]\nhello = \"world\"\n",
		"/work/lib/local/more.yaml": "name: more\nhelpers:\n  bye: later\n",
	}, rec.set())

	args := []string{"/work/a", "/work/missing", "/work/b.md", "/work/c"}
	require.NoError(t, f.runner.Run(options.Options{}, args))

	assert.Equal(t, []string{"/work/a.md", "/work/b.md", "/work/c.textile"}, rec.built,
		"every resolved file is attempted in argument order, even after a failure")
	assert.Equal(t, 1, rec.constructed[options.ModeBuild])

	require.NotNil(t, rec.registry)
	assert.Equal(t, []string{"greet", "more"}, rec.registry.List())

	misses := f.collector.OfKind(diagnostics.KindResolutionMiss)
	require.Len(t, misses, 1)
	assert.Equal(t, "/work/missing", misses[0].Subject)
	assert.Contains(t, misses[0].Message, "/work/missing{.markdown,")

	loads := f.collector.OfKind(diagnostics.KindPluginLoad)
	require.Len(t, loads, 1)
	assert.Equal(t, "/config/lib/broken.toml", loads[0].Subject)

	failures := f.collector.OfKind(diagnostics.KindBuildFailure)
	require.Len(t, failures, 1)
	assert.Equal(t, "/work/b.md", failures[0].Subject)

	assert.Contains(t, f.out.String(), "Loading plugins in '/config/lib/greet.toml'...")
}

func TestRunBuildNothingResolved(t *testing.T) {
	rec := newRecorder()
	f := newFixture(t, nil, rec.set())

	require.NoError(t, f.runner.Run(options.Options{}, []string{"nope"}))

	assert.Zero(t, rec.constructed[options.ModeBuild])
	assert.Len(t, f.collector.OfKind(diagnostics.KindResolutionMiss), 1)
}

func TestRunBuildWithDefaultHandler(t *testing.T) {
	f := newFixture(t, map[string]string{
		"/work/talk.md":          "# Hi\n\n{{ hello }}\n",
		"/config/lib/greet.toml": "name = \"greet\"\n[helpers]\nhello = \"world\"\n",
	}, Handlers{})

	require.NoError(t, f.runner.Run(options.Options{OutputPath: "/work/out"}, []string{"/work/talk"}))

	html := testutil.ReadFile(t, f.fs, "/work/out/talk.html")
	assert.Contains(t, html, "<p>world</p>")
	assert.Empty(t, f.collector.All())
}

func TestRunRequiresConfig(t *testing.T) {
	err := New(Env{}).Run(options.Options{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
