// Package render writes document outlines in text, json, yaml, markdown
// and html.
package render

import (
	"context"
	"fmt"
)

// Compile-time interface checks.
var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*YAMLRenderer)(nil)
	_ Renderer = (*MarkdownRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
)

// Renderer formats an outline for output.
// Renderers are stateless and only handle presentation logic.
type Renderer interface {
	// Render writes the formatted outline to the configured output.
	Render(ctx context.Context, root *Node) error
}

// New creates a Renderer for the specified options.
func New(opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextRenderer(opts), nil
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatYAML:
		return NewYAMLRenderer(opts), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(opts), nil
	case FormatHTML:
		return NewHTMLRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
