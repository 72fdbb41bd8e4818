package handlers

import (
	"fmt"
)

// GenTemplates copies the generator templates of the selected manifest
// into the output directory
type GenTemplates struct {
	ctx    Context
	finder *ManifestFinder
	copier *PakCopier
}

// NewGenTemplates creates the generate handler
func NewGenTemplates(ctx Context) *GenTemplates {
	return &GenTemplates{
		ctx:    ctx,
		finder: NewManifestFinder(ctx.FS, ctx.Paths.TemplateDirs()),
		copier: NewPakCopier(ctx.FS),
	}
}

// Run looks the manifest up before touching the output directory, so an
// unknown name writes nothing.
func (g *GenTemplates) Run() error {
	name := g.ctx.Options.Manifest
	g.ctx.Logger.Debug().Str("manifest", name).Msg("Generating templates")

	m, err := g.finder.Lookup(name, Generator)
	if err != nil {
		return err
	}

	return copyManifest(g.ctx, g.copier, m)
}

// Quick copies the configured quick-start sample into the output directory
type Quick struct {
	ctx    Context
	finder *ManifestFinder
	copier *PakCopier
}

// NewQuick creates the quick-start handler
func NewQuick(ctx Context) *Quick {
	return &Quick{
		ctx:    ctx,
		finder: NewManifestFinder(ctx.FS, ctx.Paths.TemplateDirs()),
		copier: NewPakCopier(ctx.FS),
	}
}

// Run looks up the quick manifest named in the configuration
func (q *Quick) Run() error {
	name := q.ctx.Config.Defaults.QuickManifest
	q.ctx.Logger.Debug().Str("manifest", name).Msg("Generating quick-start sample")

	m, err := q.finder.Lookup(name, QuickStart)
	if err != nil {
		return err
	}

	return copyManifest(q.ctx, q.copier, m)
}

func copyManifest(ctx Context, copier *PakCopier, m Manifest) error {
	dest := ctx.Options.OutputPath
	fmt.Fprintf(ctx.Out, MsgCopyingTemplates, m.Name, dest)

	written, err := copier.CopyPak(m, dest)
	if err != nil {
		return err
	}

	ctx.Logger.Info().Str("manifest", m.Name).Int("files", len(written)).Msg("Templates copied")
	return nil
}
