package render

import (
	"bufio"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// YAMLRenderer formats an outline as YAML.
type YAMLRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewYAMLRenderer creates a new YAML renderer.
func NewYAMLRenderer(opts Options) *YAMLRenderer {
	return &YAMLRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *YAMLRenderer) Render(_ context.Context, root *Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if root == nil {
		root = &Node{}
	}

	encoder := yaml.NewEncoder(r.bw)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close YAML encoder: %w", err)
	}
	return nil
}
