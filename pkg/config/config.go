package config

import (
	"fmt"
	"runtime"

	"github.com/arthur-debert/slideshow/internal/version"
)

// Markup lists the filename suffixes recognised for each markup language
type Markup struct {
	Markdown []string `koanf:"markdown"`
	Textile  []string `koanf:"textile"`
	Rest     []string `koanf:"rest"`
	Known    []string `koanf:"known"`
}

// Defaults are the option values used when a flag is not given
type Defaults struct {
	Manifest      string `koanf:"manifest"`
	QuickManifest string `koanf:"quick_manifest"`
	Output        string `koanf:"output"`
	HeaderLevel   int    `koanf:"header_level"`
}

// Generator names the tool in the banner
type Generator struct {
	Name string `koanf:"name"`
}

// Config is the loaded configuration. Treat it as read-only: accessors
// that return slices hand out copies.
type Config struct {
	Markup    Markup    `koanf:"markup"`
	Defaults  Defaults  `koanf:"defaults"`
	Generator Generator `koanf:"generator"`

	configDir string
	root      string
}

// KnownExtnames returns the ordered candidate extensions. The first entry
// that exists on disk wins when resolving a bare name.
func (c *Config) KnownExtnames() []string {
	if len(c.Markup.Known) > 0 {
		return clone(c.Markup.Known)
	}
	known := make([]string, 0, len(c.Markup.Markdown)+len(c.Markup.Textile)+len(c.Markup.Rest))
	known = append(known, c.Markup.Markdown...)
	known = append(known, c.Markup.Textile...)
	known = append(known, c.Markup.Rest...)
	return known
}

func (c *Config) KnownMarkdownExtnames() []string { return clone(c.Markup.Markdown) }

func (c *Config) KnownTextileExtnames() []string { return clone(c.Markup.Textile) }

func (c *Config) KnownRestExtnames() []string { return clone(c.Markup.Rest) }

// MarkupFor reports which markup family an extension belongs to:
// "markdown", "textile", "rest", or "" when unknown.
func (c *Config) MarkupFor(ext string) string {
	switch {
	case contains(c.Markup.Markdown, ext):
		return "markdown"
	case contains(c.Markup.Textile, ext):
		return "textile"
	case contains(c.Markup.Rest, ext):
		return "rest"
	}
	return ""
}

// ConfigDir is the directory the configuration was loaded from
func (c *Config) ConfigDir() string { return c.configDir }

// Root is the installation root
func (c *Config) Root() string { return c.root }

// Banner is the generator line printed for --version and before each run
func (c *Config) Banner() string {
	return fmt.Sprintf("%s Version: %s on Go %s", c.Generator.Name, version.Version, runtime.Version())
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
