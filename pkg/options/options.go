// Package options holds what the user asked for on the command line and
// decides which single mode a run executes.
package options

import (
	"github.com/arthur-debert/slideshow/pkg/config"
)

// Options is the user's resolved intent. The flag parser fills it once;
// after that it is passed by value so handlers cannot change the caller's
// copy.
type Options struct {
	OutputPath  string
	Manifest    string
	HeaderLevel int
	List        bool
	Generate    bool
	Quick       bool
	FetchURI    string
	ConfigPath  string
	Verbose     bool
}

// Fetch reports whether a fetch source was given
func (o Options) Fetch() bool {
	return o.FetchURI != ""
}

// WithDefaults fills unset fields from the configuration defaults
func (o Options) WithDefaults(d config.Defaults) Options {
	if o.OutputPath == "" {
		o.OutputPath = d.Output
	}
	if o.Manifest == "" {
		o.Manifest = d.Manifest
	}
	if o.HeaderLevel == 0 {
		o.HeaderLevel = d.HeaderLevel
	}
	return o
}

// Mode selects exactly one mode. Flags are checked in the fixed order
// list, generate, quick, fetch; with none set the run builds slideshows.
func (o Options) Mode() Mode {
	switch {
	case o.List:
		return ModeList
	case o.Generate:
		return ModeGenerate
	case o.Quick:
		return ModeQuick
	case o.Fetch():
		return ModeFetch
	default:
		return ModeBuild
	}
}

// RequestedModes lists every mode flag that was set, in precedence order.
// More than one entry means all but the first are ignored.
func (o Options) RequestedModes() []Mode {
	var modes []Mode
	if o.List {
		modes = append(modes, ModeList)
	}
	if o.Generate {
		modes = append(modes, ModeGenerate)
	}
	if o.Quick {
		modes = append(modes, ModeQuick)
	}
	if o.Fetch() {
		modes = append(modes, ModeFetch)
	}
	return modes
}
