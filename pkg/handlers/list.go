package handlers

import (
	"fmt"

	"github.com/arthur-debert/slideshow/pkg/style"
)

// List prints the installed template manifests of every template root
type List struct {
	ctx    Context
	finder *ManifestFinder
}

// NewList creates the list handler
func NewList(ctx Context) *List {
	return &List{
		ctx:    ctx,
		finder: NewManifestFinder(ctx.FS, ctx.Paths.TemplateDirs()),
	}
}

// Run prints one section per root
func (l *List) Run() error {
	plain := style.IsPlain(l.ctx.Out)

	for _, root := range l.finder.Roots() {
		manifests, err := l.finder.FindIn(root, Installed)
		if err != nil {
			return err
		}
		l.ctx.Logger.Debug().Str("root", root).Int("manifests", len(manifests)).Msg("Listing templates")

		heading := fmt.Sprintf(MsgInstalledIn, root)
		if !plain {
			heading = style.TitleStyle.Render(heading)
		}
		fmt.Fprintln(l.ctx.Out, heading)

		if len(manifests) == 0 {
			fmt.Fprintln(l.ctx.Out, "  "+MsgNoneInstalled)
			continue
		}
		for _, m := range manifests {
			fmt.Fprintln(l.ctx.Out, "  "+formatManifest(m, plain))
		}
	}
	return nil
}

func formatManifest(m Manifest, plain bool) string {
	if plain {
		return fmt.Sprintf("%s (%s)", m.Name, m.Path)
	}
	return style.NameStyle.Render(m.Name) + " " + style.PathStyle.Render("("+m.Path+")")
}
