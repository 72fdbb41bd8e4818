package handlers

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/errors"
)

// Fetch installs a template pack from a local directory into the user's
// template root
type Fetch struct {
	ctx    Context
	copier *PakCopier
}

// NewFetch creates the fetch handler
func NewFetch(ctx Context) *Fetch {
	return &Fetch{
		ctx:    ctx,
		copier: NewPakCopier(ctx.FS),
	}
}

// Run copies the pack named by the fetch URI. The URI may be a directory
// or a manifest file inside one; the pack is named after the directory.
func (f *Fetch) Run() error {
	uri := f.ctx.Options.FetchURI

	src, err := localSource(uri)
	if err != nil {
		return err
	}

	if abs, err := filepath.Abs(src); err == nil {
		src = abs
	}

	info, err := f.ctx.FS.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "cannot fetch '%s'", uri).
			WithDetail("path", src)
	}
	if !info.IsDir() {
		src = filepath.Dir(src)
	}

	name := filepath.Base(src)
	dest := filepath.Join(f.ctx.Paths.UserTemplatesDir(), name)
	fmt.Fprintf(f.ctx.Out, MsgFetching, uri, dest)

	written, err := f.copier.CopyTree(src, dest, nil)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFetch, "cannot fetch '%s'", uri)
	}

	f.ctx.Logger.Info().Str("pack", name).Str("dest", dest).Int("files", len(written)).Msg("Templates fetched")
	return nil
}

// localSource turns a fetch URI into a filesystem path. Plain paths and
// file:// URIs are accepted; any other scheme is an ErrFetch error.
func localSource(uri string) (string, error) {
	if uri == "" {
		return "", errors.New(errors.ErrInvalidInput, "fetch URI cannot be empty")
	}

	// Windows drive letters parse as a one-letter scheme.
	if filepath.VolumeName(uri) != "" {
		return filepath.Clean(uri), nil
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return filepath.Clean(uri), nil
	}

	if !strings.EqualFold(u.Scheme, "file") {
		return "", errors.Newf(errors.ErrFetch, MsgUnsupportedScheme, uri).
			WithDetail("scheme", u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", errors.Newf(errors.ErrFetch, MsgUnsupportedScheme, uri).
			WithDetail("host", u.Host)
	}
	return filepath.FromSlash(u.Path), nil
}
