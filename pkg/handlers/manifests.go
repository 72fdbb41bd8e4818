package handlers

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/types"
)

// ManifestExt is the extension every manifest name carries
const ManifestExt = ".txt"

// ManifestKind is the suffix that follows ManifestExt on a manifest file
type ManifestKind string

const (
	// Installed marks a plain pack manifest: s6.txt
	Installed ManifestKind = ""

	// Generator marks generator templates: s6.txt.gen
	Generator ManifestKind = ".gen"

	// QuickStart marks a quick-start sample: welcome.txt.quick
	QuickStart ManifestKind = ".quick"
)

// Manifest is one manifest file found under a template root
type Manifest struct {
	// Name is the file name without the kind suffix, e.g. "s6.txt"
	Name string
	Path string
	Root string
}

// Dir is the pack directory. A manifest placed directly in its template
// root names a sibling directory: <root>/s6.txt.gen packs <root>/s6/.
func (m Manifest) Dir() string {
	dir := filepath.Dir(m.Path)
	if m.TopLevel() {
		return filepath.Join(dir, strings.TrimSuffix(m.Name, ManifestExt))
	}
	return dir
}

// TopLevel reports whether the manifest sits directly in its template root
// rather than inside its pack directory.
func (m Manifest) TopLevel() bool {
	return m.Root != "" && filepath.Clean(filepath.Dir(m.Path)) == filepath.Clean(m.Root)
}

// Matches reports whether the user-supplied name selects m. The ".txt"
// extension may be left off.
func (m Manifest) Matches(name string) bool {
	return m.Name == name || m.Name == name+ManifestExt
}

// ManifestFinder searches template roots for manifests
type ManifestFinder struct {
	fs    types.FS
	roots []string
}

// NewManifestFinder creates a finder over roots, searched in order
func NewManifestFinder(fs types.FS, roots []string) *ManifestFinder {
	return &ManifestFinder{fs: fs, roots: roots}
}

// Roots returns the search roots in order
func (f *ManifestFinder) Roots() []string {
	return append([]string(nil), f.roots...)
}

// Patterns returns the globs used for kind under root: manifests sit at the
// top of the root or one directory down.
func (f *ManifestFinder) Patterns(root string, kind ManifestKind) []string {
	base := filepath.ToSlash(root)
	suffix := "*" + ManifestExt + string(kind)
	return []string{
		base + "/" + suffix,
		base + "/*/" + suffix,
	}
}

// FindIn returns the manifests of kind under one root
func (f *ManifestFinder) FindIn(root string, kind ManifestKind) ([]Manifest, error) {
	var found []Manifest
	for _, pattern := range f.Patterns(root, kind) {
		matches, err := f.fs.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to search for manifests in %s", root)
		}
		for _, match := range matches {
			base := filepath.Base(match)
			found = append(found, Manifest{
				Name: strings.TrimSuffix(base, string(kind)),
				Path: match,
				Root: root,
			})
		}
	}
	return found, nil
}

// Find returns the manifests of kind across all roots. When two roots hold
// a manifest of the same name the earlier root wins.
func (f *ManifestFinder) Find(kind ManifestKind) ([]Manifest, error) {
	seen := make(map[string]bool)
	var all []Manifest
	for _, root := range f.roots {
		found, err := f.FindIn(root, kind)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			all = append(all, m)
		}
	}
	return all, nil
}

// Lookup finds the manifest of kind selected by name. An unknown name is an
// ErrUnknownManifest error listing what is installed.
func (f *ManifestFinder) Lookup(name string, kind ManifestKind) (Manifest, error) {
	all, err := f.Find(kind)
	if err != nil {
		return Manifest{}, err
	}

	names := make([]string, 0, len(all))
	for _, m := range all {
		if m.Matches(name) {
			return m, nil
		}
		names = append(names, m.Name)
	}

	return Manifest{}, errors.Newf(errors.ErrUnknownManifest, MsgUnknownManifest, name).
		WithDetail("manifest", name).
		WithDetail("installed", names)
}
