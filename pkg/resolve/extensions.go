package resolve

import (
	"strings"
)

// Extensions is an ordered list of candidate suffixes. Order is priority:
// the resolver stops at the first suffix whose file exists.
type Extensions []string

// Brace formats the list the way diagnostics show it: {.md,.textile,.rst}
func (e Extensions) Brace() string {
	return "{" + strings.Join(e, ",") + "}"
}

// Candidates returns the paths to try for base, in priority order
func (e Extensions) Candidates(base string) []string {
	out := make([]string, len(e))
	for i, ext := range e {
		out[i] = base + ext
	}
	return out
}
