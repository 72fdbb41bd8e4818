package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/arthur-debert/slideshow/pkg/diagnostics"
	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/filesystem"
	"github.com/arthur-debert/slideshow/pkg/handlers"
	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/plugins"
	"github.com/arthur-debert/slideshow/pkg/resolve"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// MsgModeConflict is reported when more than one mode flag is set
const MsgModeConflict = "more than one mode requested; running %s, ignoring %s"

// Builder turns one source file into a slideshow
type Builder interface {
	CreateSlideshow(file string) (string, error)
}

// Handlers constructs the handler for each mode. A run calls at most one
// of them, once.
type Handlers struct {
	List     func(ctx handlers.Context) handlers.Runner
	Generate func(ctx handlers.Context) handlers.Runner
	Quick    func(ctx handlers.Context) handlers.Runner
	Fetch    func(ctx handlers.Context) handlers.Runner
	Build    func(ctx handlers.Context, registry *plugins.Registry) Builder
}

// DefaultHandlers returns the handlers from the handlers package
func DefaultHandlers() Handlers {
	return Handlers{
		List:     func(ctx handlers.Context) handlers.Runner { return handlers.NewList(ctx) },
		Generate: func(ctx handlers.Context) handlers.Runner { return handlers.NewGenTemplates(ctx) },
		Quick:    func(ctx handlers.Context) handlers.Runner { return handlers.NewQuick(ctx) },
		Fetch:    func(ctx handlers.Context) handlers.Runner { return handlers.NewFetch(ctx) },
		Build: func(ctx handlers.Context, registry *plugins.Registry) Builder {
			return handlers.NewGen(ctx, registry)
		},
	}
}

// Env is everything a Runner works against. Zero fields get defaults:
// the OS filesystem, stdout, a discarding reporter and DefaultHandlers.
type Env struct {
	Config   *config.Config
	Paths    paths.Paths
	FS       types.FS
	Out      io.Writer
	Reporter diagnostics.Reporter
	Handlers Handlers
}

// Runner dispatches a run to its mode
type Runner struct {
	env    Env
	logger zerolog.Logger
}

// New creates a Runner. Config and Paths are required.
func New(env Env) *Runner {
	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Reporter == nil {
		env.Reporter = diagnostics.Discard
	}
	defaults := DefaultHandlers()
	if env.Handlers.List == nil {
		env.Handlers.List = defaults.List
	}
	if env.Handlers.Generate == nil {
		env.Handlers.Generate = defaults.Generate
	}
	if env.Handlers.Quick == nil {
		env.Handlers.Quick = defaults.Quick
	}
	if env.Handlers.Fetch == nil {
		env.Handlers.Fetch = defaults.Fetch
	}
	if env.Handlers.Build == nil {
		env.Handlers.Build = defaults.Build
	}

	return &Runner{
		env:    env,
		logger: logging.GetLogger("runner"),
	}
}

// Run prints the banner and executes the single mode opts selects. args
// are the positional arguments, used only when building.
func (r *Runner) Run(opts options.Options, args []string) error {
	if r.env.Config == nil || r.env.Paths == nil {
		return errors.New(errors.ErrInternal, "runner needs a config and paths")
	}

	fmt.Fprintln(r.env.Out, r.env.Config.Banner())

	opts = opts.WithDefaults(r.env.Config.Defaults)
	mode := opts.Mode()
	r.reportConflict(opts, mode)

	r.logger.Debug().
		Str("mode", mode.String()).
		Str("output", opts.OutputPath).
		Str("manifest", opts.Manifest).
		Int("headerLevel", opts.HeaderLevel).
		Strs("args", args).
		Msg("Dispatching")

	ctx := r.context(opts, mode)

	switch mode {
	case options.ModeList:
		return r.env.Handlers.List(ctx).Run()
	case options.ModeGenerate:
		return r.env.Handlers.Generate(ctx).Run()
	case options.ModeQuick:
		return r.env.Handlers.Quick(ctx).Run()
	case options.ModeFetch:
		return r.env.Handlers.Fetch(ctx).Run()
	case options.ModeBuild:
		r.build(ctx, args)
		return nil
	default:
		return errors.Newf(errors.ErrInternal, "unhandled mode %s", mode)
	}
}

func (r *Runner) context(opts options.Options, mode options.Mode) handlers.Context {
	return handlers.Context{
		Logger:  logging.GetLogger("handlers." + mode.String()),
		Options: opts,
		Config:  r.env.Config,
		Paths:   r.env.Paths,
		FS:      r.env.FS,
		Out:     r.env.Out,
	}
}

func (r *Runner) build(ctx handlers.Context, args []string) {
	done := logging.LogOperationStart(r.logger, "build")
	defer done()

	registry := plugins.NewRegistry()
	plugins.NewLoader(r.env.FS, r.env.Paths, registry, r.env.Reporter, r.env.Out).LoadAll()

	fileSet := resolve.NewFileSet(r.env.FS, resolve.Extensions(r.env.Config.KnownExtnames()))
	files := fileSet.BuildAll(args, r.env.Reporter)
	if len(files) == 0 {
		r.logger.Debug().Int("args", len(args)).Msg("Nothing to build")
		return
	}

	builder := r.env.Handlers.Build(ctx, registry)
	failed := 0
	for _, file := range files {
		if _, err := builder.CreateSlideshow(file); err != nil {
			failed++
			r.env.Reporter.Report(diagnostics.Diagnostic{
				Kind:    diagnostics.KindBuildFailure,
				Subject: file,
				Message: fmt.Sprintf("failed building '%s'", file),
				Err:     err,
			})
		}
	}

	r.logger.Debug().Int("files", len(files)).Int("failed", failed).Msg("Build finished")
}

func (r *Runner) reportConflict(opts options.Options, mode options.Mode) {
	requested := opts.RequestedModes()
	if len(requested) < 2 {
		return
	}

	ignored := make([]string, 0, len(requested)-1)
	for _, m := range requested[1:] {
		ignored = append(ignored, m.String())
	}

	r.logger.Warn().Str("mode", mode.String()).Strs("ignored", ignored).Msg("Conflicting mode flags")
	r.env.Reporter.Report(diagnostics.Diagnostic{
		Kind:    diagnostics.KindModeConflict,
		Subject: mode.String(),
		Message: fmt.Sprintf(MsgModeConflict, mode, strings.Join(ignored, ", ")),
	})
}
