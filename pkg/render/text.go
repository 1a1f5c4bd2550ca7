package render

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/protoview/internal/ui/pretty"
)

// Tree guides.
const (
	guideBranch = "├─ "
	guideLast   = "└─ "
	guideStem   = "│  "
	guideBlank  = "   "
)

// TextRenderer formats an outline as an indented, styled tree.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, root *Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if root == nil {
		return nil
	}

	// Top-level entries of the root are written flush left.
	if root.Name == "" {
		r.writeBody(root, "", false)
		return nil
	}

	r.writeHeader(root)
	r.writeBody(root, "", true)
	return nil
}

func (r *TextRenderer) writeBody(node *Node, prefix string, guides bool) {
	total := len(node.Attributes) + len(node.Children)
	idx := 0

	for _, attr := range node.Attributes {
		idx++
		fmt.Fprintf(r.bw, "%s%s%s: %s\n",
			prefix,
			r.connector(idx == total, guides),
			r.styles.AttrName.Render(attr.Name),
			r.styles.AttrValue.Render(attr.Value),
		)
	}

	for _, child := range node.Children {
		idx++
		last := idx == total
		r.bw.WriteString(prefix + r.connector(last, guides))
		r.writeHeader(child)
		r.writeBody(child, prefix+r.indent(last, guides), true)
	}
}

func (r *TextRenderer) writeHeader(node *Node) {
	r.bw.WriteString(r.styles.Block.Render(node.Name))
	if node.Line > 0 {
		r.bw.WriteString("  " + r.styles.Location.Render(fmt.Sprintf("%d:%d", node.Line, node.Column)))
	}
	if node.Truncated {
		r.bw.WriteString(" " + r.styles.Dim.Render("..."))
	}
	r.bw.WriteString("\n")
}

func (r *TextRenderer) connector(last, guides bool) string {
	switch {
	case !guides:
		return ""
	case last:
		return r.styles.Guide.Render(guideLast)
	default:
		return r.styles.Guide.Render(guideBranch)
	}
}

func (r *TextRenderer) indent(last, guides bool) string {
	switch {
	case !guides:
		return ""
	case last:
		return guideBlank
	default:
		return r.styles.Guide.Render(guideStem)
	}
}
