package plugins

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Extensions a plugin file may have
var Extensions = []string{".toml", ".yaml", ".yml"}

// Plugin is one loaded plugin file
type Plugin struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Helpers     map[string]string `toml:"helpers" yaml:"helpers"`

	// Path is the file the plugin was loaded from
	Path string `toml:"-" yaml:"-"`
}

// Decode parses a plugin file. The format follows the file extension and
// unknown keys are rejected. A missing name defaults to the file's base
// name without extension.
func Decode(path string, data []byte) (Plugin, error) {
	var p Plugin

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Plugin{}, errors.Wrap(err, errors.ErrPluginInvalid, "malformed TOML plugin")
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Plugin{}, errors.Wrap(err, errors.ErrPluginInvalid, "malformed YAML plugin")
		}
	default:
		return Plugin{}, errors.Newf(errors.ErrPluginInvalid, "unsupported plugin format %q", ext)
	}

	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	p.Path = path

	if err := p.Validate(); err != nil {
		return Plugin{}, err
	}
	return p, nil
}

// Validate checks helper names are usable as {{ name }} references
func (p Plugin) Validate() error {
	for name := range p.Helpers {
		if !validHelperName(name) {
			return errors.Newf(errors.ErrPluginInvalid, "invalid helper name %q", name)
		}
	}
	return nil
}

func validHelperName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

func (p Plugin) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Path)
}
