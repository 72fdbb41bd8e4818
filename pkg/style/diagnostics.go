package style

import (
	"fmt"
	"io"

	"github.com/arthur-debert/slideshow/pkg/diagnostics"
	"github.com/pterm/pterm"
)

// Printer writes diagnostics for the user. Resolution misses read as
// progress notes; everything else is an error or warning line.
type Printer struct {
	out   io.Writer
	plain bool
}

// NewPrinter creates a Printer writing to out, styled when out is a colour terminal
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, plain: IsPlain(out)}
}

// NewPlainPrinter creates a Printer that never styles its output
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out, plain: true}
}

// Report implements diagnostics.Reporter
func (p *Printer) Report(d diagnostics.Diagnostic) {
	if p.plain {
		fmt.Fprintln(p.out, plainLine(d))
		return
	}

	switch d.Kind {
	case diagnostics.KindResolutionMiss:
		pterm.Warning.WithWriter(p.out).Println(d.String())
	case diagnostics.KindModeConflict:
		pterm.Warning.WithWriter(p.out).Println(d.String())
	default:
		pterm.Error.WithWriter(p.out).Println(d.String())
	}
}

func plainLine(d diagnostics.Diagnostic) string {
	switch d.Kind {
	case diagnostics.KindResolutionMiss:
		return "  " + d.String()
	case diagnostics.KindModeConflict:
		return "** warning: " + d.String()
	default:
		return "** error: " + d.String()
	}
}
