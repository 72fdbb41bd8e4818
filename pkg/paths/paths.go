package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/slideshow/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for slideshow
	EnvConfigDir = "SLIDESHOW_CONFIG_DIR"

	// EnvRoot overrides the installation root
	EnvRoot = "SLIDESHOW_ROOT"
)

// Fixed names inside the directories below
const (
	// AppDirName is the directory name used under the XDG roots
	AppDirName = "slideshow"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "slideshow.toml"

	// LibDir holds plugin files, both in the config dir and the working dir
	LibDir = "lib"

	// TemplatesDir holds template packs and their manifests
	TemplatesDir = "templates"
)

// Paths provides the directory layout a run works against
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	Root() string
	WorkDir() string
	IsInstallRoot() bool
	TemplateDirs() []string
	BuiltinTemplatesDir() string
	UserTemplatesDir() string
}

type paths struct {
	configDir string
	root      string
	workDir   string
}

// New resolves the layout for this process. configPath is the value of the
// -c flag and wins over the environment when non-empty.
func New(configPath string) (Paths, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}

	root, err := findRoot()
	if err != nil {
		return nil, err
	}

	return NewFromLayout(findConfigDir(configPath), root, workDir), nil
}

// NewFromLayout builds Paths from explicit directories. All three are made
// absolute when possible.
func NewFromLayout(configDir, root, workDir string) Paths {
	return &paths{
		configDir: absOrClean(configDir),
		root:      absOrClean(root),
		workDir:   absOrClean(workDir),
	}
}

func (p *paths) ConfigDir() string { return p.configDir }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) Root() string { return p.root }

func (p *paths) WorkDir() string { return p.workDir }

// IsInstallRoot reports whether the working directory is the installation
// root, in which case ./lib is the tool's own library and not a plugin dir.
func (p *paths) IsInstallRoot() bool {
	return p.root != "" && p.workDir == p.root
}

// TemplateDirs returns the template search roots: user, built-in, local.
func (p *paths) TemplateDirs() []string {
	return []string{
		p.UserTemplatesDir(),
		p.BuiltinTemplatesDir(),
		filepath.Join(p.workDir, TemplatesDir),
	}
}

func (p *paths) BuiltinTemplatesDir() string {
	return filepath.Join(p.root, TemplatesDir)
}

func (p *paths) UserTemplatesDir() string {
	return filepath.Join(p.configDir, TemplatesDir)
}

func findConfigDir(configPath string) string {
	if configPath != "" {
		return expandHome(configPath)
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// findRoot locates the installation root: $SLIDESHOW_ROOT, else the parent
// of the directory holding the executable (prefix/bin/slideshow -> prefix).
func findRoot() (string, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		return expandHome(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func absOrClean(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
