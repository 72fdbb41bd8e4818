package handlers

import (
	"io"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// Context is what every handler is constructed with. Config is shared and
// must not be modified; Options is a copy.
type Context struct {
	Logger  zerolog.Logger
	Options options.Options
	Config  *config.Config
	Paths   paths.Paths
	FS      types.FS
	Out     io.Writer
}

// Runner is the single entry point of a short-circuit mode
type Runner interface {
	Run() error
}

// RunnerFunc adapts a function to Runner
type RunnerFunc func() error

// Run calls f()
func (f RunnerFunc) Run() error { return f() }
