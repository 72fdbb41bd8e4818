package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/plugins"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// helperRef matches {{ name }} in slide sources
var helperRef = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_-]*)\s*\}\}`)

var page = template.Must(template.New("slideshow").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="generator" content="{{ .Generator }}">
<title>{{ .Title }}</title>
</head>
<body>
{{- range $i, $s := .Slides }}
<div class="slide" id="slide{{ $i }}">
{{ $s }}</div>
{{- end }}
</body>
</html>
`))

type pageData struct {
	Title     string
	Generator string
	Slides    []template.HTML
}

// Gen builds one slideshow per source file
type Gen struct {
	ctx      Context
	registry *plugins.Registry
	markdown goldmark.Markdown
}

// NewGen creates the build handler. Helpers come from registry, which the
// caller fills before building.
func NewGen(ctx Context, registry *plugins.Registry) *Gen {
	if registry == nil {
		registry = plugins.NewRegistry()
	}
	return &Gen{
		ctx:      ctx,
		registry: registry,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
		),
	}
}

// CreateSlideshow renders file into <output>/<base>.html and returns the
// written path. Only markdown sources can be rendered.
func (g *Gen) CreateSlideshow(file string) (string, error) {
	ext := filepath.Ext(file)
	markup := g.ctx.Config.MarkupFor(ext)
	if markup != "markdown" {
		if markup == "" {
			markup = "unknown"
		}
		return "", errors.Newf(errors.ErrNoRenderer, MsgNoRenderer, markup, file).
			WithDetail("extension", ext)
	}

	fmt.Fprintf(g.ctx.Out, MsgPreparing, file)

	src, err := g.ctx.FS.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file)
	}

	text := ExpandHelpers(string(src), g.registry.Helpers())
	chunks := SplitSlides(text, g.ctx.Options.HeaderLevel)
	g.ctx.Logger.Debug().Str("file", file).Int("slides", len(chunks)).Int("headerLevel", g.ctx.Options.HeaderLevel).Msg("Split slides")

	data := pageData{
		Title:     strings.TrimSuffix(filepath.Base(file), ext),
		Generator: g.ctx.Config.Banner(),
	}
	for _, chunk := range chunks {
		var buf bytes.Buffer
		if err := g.markdown.Convert([]byte(chunk), &buf); err != nil {
			return "", errors.Wrapf(err, errors.ErrBuild, "failed to render %s", file)
		}
		data.Slides = append(data.Slides, template.HTML(buf.String()))
	}

	var out bytes.Buffer
	if err := page.Execute(&out, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrBuild, "failed to assemble %s", file)
	}

	outDir := g.ctx.Options.OutputPath
	if err := g.ctx.FS.MkdirAll(outDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", outDir)
	}

	target := filepath.Join(outDir, data.Title+".html")
	if err := g.ctx.FS.WriteFile(target, out.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}

	fmt.Fprintf(g.ctx.Out, MsgDone, target)
	g.ctx.Logger.Info().Str("file", file).Str("output", target).Msg("Slideshow written")
	return target, nil
}

// ExpandHelpers replaces {{ name }} with the helper's text. Unknown names
// are left as written.
func ExpandHelpers(src string, helpers map[string]string) string {
	if len(helpers) == 0 {
		return src
	}
	return helperRef.ReplaceAllStringFunc(src, func(ref string) string {
		name := helperRef.FindStringSubmatch(ref)[1]
		if text, ok := helpers[name]; ok {
			return text
		}
		return ref
	})
}

// SplitSlides cuts src before every ATX heading of exactly level. Lines
// inside fenced code blocks never start a slide. Text before the first
// heading is kept as its own slide unless it is blank.
func SplitSlides(src string, level int) []string {
	if level < 1 {
		level = 1
	}
	marker := strings.Repeat("#", level)

	var slides []string
	var current []string
	inFence := false

	flush := func() {
		chunk := strings.Join(current, "\n")
		if strings.TrimSpace(chunk) != "" {
			slides = append(slides, strings.TrimRight(chunk, "\n")+"\n")
		}
		current = nil
	}

	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && isHeading(line, marker) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return slides
}

func isHeading(line, marker string) bool {
	if !strings.HasPrefix(line, marker) {
		return false
	}
	rest := line[len(marker):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}
