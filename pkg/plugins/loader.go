package plugins

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/diagnostics"
	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// User-facing messages
const (
	MsgLoading    = "Loading plugins in '%s'...\n"
	MsgLoadFailed = "failed loading plugins in '%s'"
)

// Layout is the part of paths.Paths the loader needs
type Layout interface {
	ConfigDir() string
	WorkDir() string
	IsInstallRoot() bool
}

// LoadError records one plugin file that failed to load
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf(MsgLoadFailed+": %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Report is the outcome of LoadAll
type Report struct {
	Patterns []string
	Loaded   []Plugin
	Failures []*LoadError
}

// Loader finds plugin files and registers them
type Loader struct {
	fs       types.FS
	layout   Layout
	registry *Registry
	reporter diagnostics.Reporter
	out      io.Writer
	logger   zerolog.Logger
}

// NewLoader creates a Loader. Progress lines go to out, failures to reporter.
func NewLoader(fs types.FS, layout Layout, registry *Registry, reporter diagnostics.Reporter, out io.Writer) *Loader {
	if reporter == nil {
		reporter = diagnostics.Discard
	}
	if out == nil {
		out = io.Discard
	}
	return &Loader{
		fs:       fs,
		layout:   layout,
		registry: registry,
		reporter: reporter,
		out:      out,
		logger:   logging.GetLogger("plugins"),
	}
}

// SearchPatterns returns the glob patterns in search order: the config
// directory first, then ./lib unless the working directory is the
// installation root or the config directory itself. Separators are
// normalized to forward slashes and glob metacharacters in the directory
// part are escaped.
func (l *Loader) SearchPatterns() []string {
	roots := []string{l.layout.ConfigDir()}
	switch workDir := l.layout.WorkDir(); {
	case l.layout.IsInstallRoot():
		l.logger.Debug().Str("workDir", workDir).Msg("Working directory is the installation root, skipping ./lib")
	case filepath.Clean(workDir) == filepath.Clean(l.layout.ConfigDir()):
		l.logger.Debug().Str("workDir", workDir).Msg("Working directory is the config directory, searching its lib once")
	default:
		roots = append(roots, workDir)
	}

	patterns := make([]string, 0, len(roots))
	for _, root := range roots {
		lib := normalize(filepath.Join(root, paths.LibDir))
		patterns = append(patterns, escapeMeta(lib)+"/**/*"+brace(Extensions))
	}
	return patterns
}

// LoadAll loads every plugin file matched by SearchPatterns. A failing file
// never stops the loop.
func (l *Loader) LoadAll() Report {
	done := logging.LogOperationStart(l.logger, "load-plugins")
	defer done()

	report := Report{Patterns: l.SearchPatterns()}
	seen := make(map[string]bool)

	for _, pattern := range report.Patterns {
		matches, err := l.fs.Glob(pattern)
		if err != nil {
			l.fail(&report, &LoadError{Path: pattern, Err: err})
			continue
		}

		for _, match := range matches {
			file := normalize(match)
			if seen[file] {
				continue
			}
			seen[file] = true

			fmt.Fprintf(l.out, MsgLoading, file)

			p, err := l.load(file)
			if err != nil {
				l.fail(&report, &LoadError{Path: file, Err: err})
				continue
			}
			report.Loaded = append(report.Loaded, p)
			l.logger.Debug().Str("plugin", p.Name).Str("path", file).Int("helpers", len(p.Helpers)).Msg("Plugin registered")
		}
	}

	l.logger.Debug().
		Int("loaded", len(report.Loaded)).
		Int("failed", len(report.Failures)).
		Msg("Plugin loading finished")
	return report
}

func (l *Loader) load(file string) (Plugin, error) {
	data, err := l.fs.ReadFile(file)
	if err != nil {
		return Plugin{}, errors.Wrap(err, errors.ErrFileAccess, "cannot read plugin")
	}

	p, err := Decode(file, data)
	if err != nil {
		return Plugin{}, err
	}

	if err := l.registry.Register(p); err != nil {
		return Plugin{}, err
	}
	return p, nil
}

func (l *Loader) fail(report *Report, loadErr *LoadError) {
	report.Failures = append(report.Failures, loadErr)
	l.logger.Warn().Err(loadErr.Err).Str("path", loadErr.Path).Msg("Plugin failed to load")
	l.reporter.Report(diagnostics.Diagnostic{
		Kind:    diagnostics.KindPluginLoad,
		Subject: loadErr.Path,
		Message: fmt.Sprintf(MsgLoadFailed, loadErr.Path),
		Err:     loadErr.Err,
	})
}

func brace(exts []string) string {
	trimmed := make([]string, len(exts))
	for i, e := range exts {
		trimmed[i] = strings.TrimPrefix(e, ".")
	}
	return ".{" + strings.Join(trimmed, ",") + "}"
}

var metaEscaper = strings.NewReplacer(
	"*", `\*`,
	"?", `\?`,
	"[", `\[`,
	"]", `\]`,
	"{", `\{`,
	"}", `\}`,
)

// escapeMeta makes a literal directory safe to prefix a glob pattern
func escapeMeta(dir string) string {
	return metaEscaper.Replace(dir)
}

func normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
