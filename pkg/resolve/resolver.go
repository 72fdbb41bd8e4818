package resolve

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver finds the first existing file among the known extensions
type Resolver struct {
	fs     types.FS
	exts   Extensions
	logger zerolog.Logger
}

// NewResolver creates a Resolver probing exts in order
func NewResolver(fs types.FS, exts Extensions) *Resolver {
	return &Resolver{
		fs:     fs,
		exts:   exts,
		logger: logging.GetLogger("resolve"),
	}
}

// Extensions returns the candidate extensions in order
func (r *Resolver) Extensions() Extensions {
	return r.exts
}

// Resolve strips the final extension of path and tries dirname/basename+ext
// for every known extension. It reports false when none exists.
func (r *Resolver) Resolve(path string) (string, bool) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	ext := extname(name)
	base := strings.TrimSuffix(name, ext)

	r.logger.Debug().
		Str("dirname", dir).
		Str("basename", base).
		Str("extname", ext).
		Msg("Resolving known extension")

	for _, candidate := range r.exts.Candidates(filepath.Join(dir, base)) {
		r.logger.Debug().Str("candidate", candidate).Msg("Probing")
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) exists(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// extname is filepath.Ext except that a leading dot starts the name rather
// than an extension: ".md" has none, ".notes.md" has ".md".
func extname(name string) string {
	if strings.HasPrefix(name, ".") {
		return filepath.Ext(name[1:])
	}
	return filepath.Ext(name)
}
