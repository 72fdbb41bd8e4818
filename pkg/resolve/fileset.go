package resolve

import (
	"fmt"

	"github.com/arthur-debert/slideshow/pkg/diagnostics"
	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// MsgSkippingMissing is shown for an argument that resolved to nothing
const MsgSkippingMissing = "skipping missing file '%s%s'..."

// FileSet maps command-line arguments to source files
type FileSet struct {
	fs       types.FS
	resolver *Resolver
	logger   zerolog.Logger
}

// NewFileSet creates a FileSet resolving with exts
func NewFileSet(fs types.FS, exts Extensions) *FileSet {
	return &FileSet{
		fs:       fs,
		resolver: NewResolver(fs, exts),
		logger:   logging.GetLogger("resolve.fileset"),
	}
}

// Build returns zero or one path for arg. An existing path is taken
// verbatim; otherwise the resolver is consulted. A miss yields a
// diagnostic instead of an error.
func (s *FileSet) Build(arg string) ([]string, *diagnostics.Diagnostic) {
	if _, err := s.fs.Stat(arg); err == nil {
		s.logger.Debug().Str("file", arg).Msg("Adding file")
		return []string{arg}, nil
	}

	file, ok := s.resolver.Resolve(arg)
	if !ok {
		return nil, &diagnostics.Diagnostic{
			Kind:    diagnostics.KindResolutionMiss,
			Subject: arg,
			Message: fmt.Sprintf(MsgSkippingMissing, arg, s.resolver.Extensions().Brace()),
		}
	}

	s.logger.Debug().Str("file", file).Msg("Adding file")
	return []string{file}, nil
}

// BuildAll runs Build for each argument and concatenates the results in
// argument order. Misses are reported to r as they happen.
func (s *FileSet) BuildAll(args []string, r diagnostics.Reporter) []string {
	var files []string
	for _, arg := range args {
		found, diag := s.Build(arg)
		if diag != nil {
			r.Report(*diag)
			continue
		}
		files = append(files, found...)
	}
	return files
}
