package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal with glamour. Plain
// output, and any renderer failure, returns content unchanged.
func RenderMarkdown(content string, plain bool) string {
	if plain {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
