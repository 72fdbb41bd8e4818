package style

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsPlain reports whether w should receive unstyled text: NO_COLOR is set,
// w is not a terminal, or the terminal has no colour support.
func IsPlain(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return true
	}

	return termenv.NewOutput(f).ColorProfile() == termenv.Ascii
}
