package slideshow

import (
	"io"
	"strings"
	"text/template"

	"github.com/arthur-debert/slideshow/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(out io.Writer) func(string) string {
	return func(s string) string {
		// Only apply formatting if output is a terminal
		if style.IsPlain(out) {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting(out io.Writer) {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  formatBold(out),
		"upper": strings.ToUpper,
	})
}
