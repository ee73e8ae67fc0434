package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/darktribe/wordpress-post/internal/runtimeconfig"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// Renderer converts markdown to HTML using the goldmark engine. The engine
// is assembled once from an immutable option set; instances are stateless
// and safe to share across publishes.
type Renderer struct {
	engine goldmark.Markdown
}

var _ interfaces.Renderer = (*Renderer)(nil)

// NewRenderer builds a renderer from the supplied options. Every option maps
// to a goldmark extension or renderer flag; nothing is registered globally.
func NewRenderer(opts runtimeconfig.RendererConfig) *Renderer {
	extenders := []goldmark.Extender{}
	if opts.AutoLink {
		extenders = append(extenders, extension.Linkify)
	}
	if opts.Typographer {
		extenders = append(extenders, extension.Typographer)
	}
	if opts.TaskLists {
		extenders = append(extenders, extension.TaskList)
	}
	if opts.Footnotes {
		extenders = append(extenders, extension.Footnote)
	}
	if opts.Tables {
		extenders = append(extenders, extension.Table)
	}

	rendererOptions := []renderer.Option{}
	if opts.RawHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{}
	if len(extenders) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(extenders...))
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return &Renderer{engine: goldmark.New(engineOptions...)}
}

// Render satisfies interfaces.Renderer.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
