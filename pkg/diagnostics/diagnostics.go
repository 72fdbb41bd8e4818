// Package diagnostics carries non-fatal, user-visible conditions from the
// component that detects them to whatever prints them. Nothing in here
// stops a run; fatal conditions travel as errors instead.
package diagnostics

import (
	"fmt"
)

// Kind classifies a diagnostic
type Kind string

const (
	// KindResolutionMiss: an argument matched no file, with or without a
	// known extension
	KindResolutionMiss Kind = "resolution-miss"

	// KindPluginLoad: a plugin file could not be loaded
	KindPluginLoad Kind = "plugin-load"

	// KindBuildFailure: building one slideshow failed
	KindBuildFailure Kind = "build-failure"

	// KindModeConflict: more than one mode flag was given
	KindModeConflict Kind = "mode-conflict"
)

// Diagnostic is one recoverable condition
type Diagnostic struct {
	Kind    Kind
	Subject string
	Message string
	Err     error
}

// String renders the message with its cause, if any
func (d Diagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: %v", d.Message, d.Err)
	}
	return d.Message
}

// Reporter receives diagnostics as they happen
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(d Diagnostic)

// Report calls f(d)
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Collector records diagnostics in order and forwards each one
type Collector struct {
	items []Diagnostic
	next  Reporter
}

// NewCollector returns a Collector forwarding to next. next may be nil.
func NewCollector(next Reporter) *Collector {
	if next == nil {
		next = Discard
	}
	return &Collector{next: next}
}

// Report records d and forwards it
func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
	c.next.Report(d)
}

// All returns the recorded diagnostics in report order
func (c *Collector) All() []Diagnostic {
	return append([]Diagnostic(nil), c.items...)
}

// OfKind returns the recorded diagnostics of one kind
func (c *Collector) OfKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
