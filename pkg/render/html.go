package render

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTMLRenderer formats an outline as a standalone HTML page by converting
// the Markdown rendering with goldmark.
type HTMLRenderer struct {
	opts     Options
	bw       *bufio.Writer
	markdown goldmark.Markdown
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{
		opts:     opts,
		bw:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
		markdown: goldmark.New(),
	}
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(_ context.Context, root *Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var body bytes.Buffer
	if err := r.markdown.Convert([]byte(Markdown(root)), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	title := r.opts.Title
	if title == "" {
		title = DefaultOptions().Title
	}

	fmt.Fprintf(r.bw, htmlHeader, html.EscapeString(title))
	r.bw.Write(body.Bytes())
	r.bw.WriteString(htmlFooter)
	return nil
}
