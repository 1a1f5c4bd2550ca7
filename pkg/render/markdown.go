package render

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const markdownIndent = "  "

// MarkdownRenderer formats an outline as a nested bullet list.
type MarkdownRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewMarkdownRenderer creates a new Markdown renderer.
func NewMarkdownRenderer(opts Options) *MarkdownRenderer {
	return &MarkdownRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(_ context.Context, root *Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	r.bw.WriteString(Markdown(root))
	return nil
}

// Markdown returns the bullet-list rendering of root. Names and values are
// written as code spans, so no Markdown inside them is interpreted.
func Markdown(root *Node) string {
	if root == nil {
		return ""
	}

	var b strings.Builder
	if root.Name == "" {
		writeMarkdownItems(&b, root, 0)
		return b.String()
	}

	writeMarkdownBlock(&b, root, 0)
	return b.String()
}

func writeMarkdownItems(b *strings.Builder, node *Node, level int) {
	indent := strings.Repeat(markdownIndent, level)

	for _, attr := range node.Attributes {
		b.WriteString(indent)
		b.WriteString("- ")
		b.WriteString(codeSpan(attr.Name))
		b.WriteString(": ")
		if attr.Value == "" {
			b.WriteString("*empty*")
		} else {
			b.WriteString(codeSpan(attr.Value))
		}
		b.WriteString("\n")
	}

	for _, child := range node.Children {
		writeMarkdownBlock(b, child, level)
	}
}

func writeMarkdownBlock(b *strings.Builder, node *Node, level int) {
	b.WriteString(strings.Repeat(markdownIndent, level))
	b.WriteString("- **")
	b.WriteString(codeSpan(node.Name))
	b.WriteString("**")
	if node.Line > 0 {
		fmt.Fprintf(b, " (%d:%d)", node.Line, node.Column)
	}
	if node.Truncated {
		b.WriteString(" *(truncated)*")
	}
	b.WriteString("\n")

	writeMarkdownItems(b, node, level+1)
}

// codeSpan wraps s in a backtick fence longer than any backtick run in s.
func codeSpan(s string) string {
	longest, run := 0, 0
	for i := range len(s) {
		if s[i] != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}

	fence := strings.Repeat("`", longest+1)
	padded := strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") ||
		(strings.HasPrefix(s, " ") && strings.HasSuffix(s, " "))
	if padded {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
