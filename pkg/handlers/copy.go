package handlers

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/types"
	"github.com/rs/zerolog"
)

// PakCopier copies template packs onto disk
type PakCopier struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewPakCopier creates a PakCopier working on fs
func NewPakCopier(fs types.FS) *PakCopier {
	return &PakCopier{
		fs:     fs,
		logger: logging.GetLogger("handlers.copy"),
	}
}

// CopyPak copies the pack directory of m into dest, leaving out the
// manifest file itself. It returns the written paths.
func (c *PakCopier) CopyPak(m Manifest, dest string) ([]string, error) {
	pak := m.Dir()
	c.logger.Debug().
		Str("manifestsrc", m.Path).
		Str("pakpath", pak).
		Bool("toplevel", m.TopLevel()).
		Str("dest", dest).
		Msg("Copying template pack")

	if m.TopLevel() {
		return c.CopyTree(pak, dest, nil)
	}
	return c.CopyTree(pak, dest, func(rel string) bool {
		return rel == filepath.Base(m.Path)
	})
}

// CopyTree copies every regular file under src into dest, keeping relative
// paths. Files for which skip returns true are left out; skip may be nil.
// Files are copied in sorted order.
func (c *PakCopier) CopyTree(src, dest string, skip func(rel string) bool) ([]string, error) {
	files, err := c.fs.Glob(filepath.ToSlash(src) + "/**/*")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", src)
	}
	sort.Strings(files)

	var written []string
	for _, file := range files {
		rel, err := filepath.Rel(src, filepath.FromSlash(file))
		if err != nil {
			return written, errors.Wrapf(err, errors.ErrInternal, "cannot place %s under %s", file, src)
		}
		if skip != nil && skip(rel) {
			continue
		}

		target := filepath.Join(dest, rel)
		if err := c.copyFile(file, target); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	c.logger.Debug().Str("src", src).Str("dest", dest).Int("files", len(written)).Msg("Copied tree")
	return written, nil
}

func (c *PakCopier) copyFile(src, dest string) error {
	data, err := c.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src)
	}

	dir := filepath.Dir(dest)
	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	if err := c.fs.WriteFile(dest, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}
	return nil
}
