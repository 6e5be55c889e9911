// Package render converts article bodies to HTML. Fenced code blocks are
// delegated to sub-renderers: syntax highlighting by declared language tag,
// and mermaid diagram blocks with a degrade-not-fail policy.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Renderer converts Markdown bodies into HTML. It is stateless and holds no
// reference to the entry collection; a single instance can render every
// article of a build.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	highlightStyle string
}

// WithHighlightStyle selects the chroma style used for code blocks.
func WithHighlightStyle(name string) Option {
	return func(o *options) { o.highlightStyle = name }
}

// New builds a Renderer with GFM extensions and the code/diagram block
// sub-renderers installed.
func New(opts ...Option) *Renderer {
	o := options{highlightStyle: defaultHighlightStyle}
	for _, opt := range opts {
		opt(&o)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(&codeBlockRenderer{style: o.highlightStyle}, 200),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts one article body to HTML. The input is never modified.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
