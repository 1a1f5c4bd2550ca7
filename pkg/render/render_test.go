package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/protoview/pkg/pbtext"
	"github.com/yaklabco/protoview/pkg/render"
)

const outlineDocument = "version: 3\nservice {\n  name: \"api\"\n  endpoint {\n    path: /v1\n  }\n}\n"

func outline(t *testing.T, maxDepth int) *render.Node {
	t.Helper()
	return render.Build(pbtext.Parse(outlineDocument).Root(), maxDepth)
}

func renderString(t *testing.T, format render.Format, root *render.Node) string {
	t.Helper()
	var buf bytes.Buffer
	renderer, err := render.New(render.Options{Writer: &buf, Format: format, Color: "never"})
	require.NoError(t, err)
	require.NoError(t, renderer.Render(context.Background(), root))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    render.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: render.FormatText},
		{name: "text", input: "text", want: render.FormatText},
		{name: "json", input: "json", want: render.FormatJSON},
		{name: "yaml", input: "yaml", want: render.FormatYAML},
		{name: "yml alias", input: "yml", want: render.FormatYAML},
		{name: "markdown", input: "markdown", want: render.FormatMarkdown},
		{name: "md alias", input: "md", want: render.FormatMarkdown},
		{name: "html", input: "html", want: render.FormatHTML},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := render.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	for _, format := range render.Formats() {
		assert.True(t, format.IsValid(), format.String())
	}
	assert.False(t, render.Format("xml").IsValid())
	assert.False(t, render.Format("").IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range append(render.Formats(), "") {
		renderer, err := render.New(render.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, format.String())
		assert.NotNil(t, renderer)
	}

	_, err := render.New(render.Options{Format: "xml"})
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	root := outline(t, 0)
	assert.Empty(t, root.Name)
	assert.Zero(t, root.Line)
	assert.Equal(t, []render.Attribute{{Name: "version", Value: "3"}}, root.Attributes)
	require.Len(t, root.Children, 1)

	service := root.Children[0]
	assert.Equal(t, "service", service.Name)
	assert.Equal(t, 2, service.Line)
	assert.Equal(t, 9, service.Column)
	assert.Equal(t, []render.Attribute{{Name: "name", Value: "api"}}, service.Attributes)
	require.Len(t, service.Children, 1)

	endpoint := service.Children[0]
	assert.Equal(t, "endpoint", endpoint.Name)
	assert.Equal(t, 4, endpoint.Line)
	assert.Equal(t, 12, endpoint.Column)
	assert.False(t, endpoint.Truncated)
	assert.Equal(t, 2, root.Count())
}

func TestBuild_DepthLimit(t *testing.T) {
	t.Parallel()

	root := outline(t, 1)
	require.Len(t, root.Children, 1)

	service := root.Children[0]
	assert.True(t, service.Truncated)
	assert.Empty(t, service.Children)
	assert.Len(t, service.Attributes, 1, "attributes survive truncation")
	assert.Equal(t, 1, root.Count())
}

func TestBuild_InvalidView(t *testing.T) {
	t.Parallel()

	root := render.Build(pbtext.View{}, 0)
	require.NotNil(t, root)
	assert.Zero(t, root.Count())
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"version: 3",
		"service  2:9",
		"├─ name: api",
		"└─ endpoint  4:12",
		"   └─ path: /v1",
		"",
	}, "\n")
	assert.Equal(t, want, renderString(t, render.FormatText, outline(t, 0)))
}

func TestTextRenderer_NamedRootAndTruncation(t *testing.T) {
	t.Parallel()

	service := outline(t, 1).Children[0]
	want := strings.Join([]string{
		"service  2:9 ...",
		"└─ name: api",
		"",
	}, "\n")
	assert.Equal(t, want, renderString(t, render.FormatText, service))
}

func TestTextRenderer_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderString(t, render.FormatText, nil))
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	root := outline(t, 0)
	out := renderString(t, render.FormatJSON, root)
	assert.Contains(t, out, `"name": "service"`)
	assert.Contains(t, out, `"line": 2`)

	var decoded render.Node
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, root, &decoded)
}

func TestJSONRenderer_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := render.NewJSONRenderer(render.Options{Writer: &buf, Compact: true})
	require.NoError(t, renderer.Render(context.Background(), outline(t, 1)))

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, `"truncated":true`)
}

func TestYAMLRenderer(t *testing.T) {
	t.Parallel()

	root := outline(t, 0)
	out := renderString(t, render.FormatYAML, root)
	assert.Contains(t, out, "name: service")

	var decoded render.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, root, &decoded)
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"- `version`: `3`",
		"- **`service`** (2:9)",
		"  - `name`: `api`",
		"  - **`endpoint`** (4:12)",
		"    - `path`: `/v1`",
		"",
	}, "\n")
	assert.Equal(t, want, renderString(t, render.FormatMarkdown, outline(t, 0)))
}

func TestMarkdown_CodeSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "abc", want: "- `k`: `abc`\n"},
		{name: "inner backtick", value: "a`b", want: "- `k`: ``a`b``\n"},
		{name: "leading backtick", value: "`x", want: "- `k`: `` `x ``\n"},
		{name: "surrounding spaces", value: " x ", want: "- `k`: `  x  `\n"},
		{name: "empty", value: "", want: "- `k`: *empty*\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := &render.Node{Attributes: []render.Attribute{{Name: "k", Value: tt.value}}}
			assert.Equal(t, tt.want, render.Markdown(root))
		})
	}
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := render.NewHTMLRenderer(render.Options{Writer: &buf, Title: "a <b>"})
	require.NoError(t, renderer.Render(context.Background(), outline(t, 0)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>a &lt;b&gt;</title>")
	assert.Contains(t, out, "<strong><code>service</code></strong> (2:9)")
	assert.Contains(t, out, "<code>path</code>: <code>/v1</code>")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestHTMLRenderer_EscapesValues(t *testing.T) {
	t.Parallel()

	doc := pbtext.Parse("markup: <script>alert(1)</script>\n")
	out := renderString(t, render.FormatHTML, render.Build(doc.Root(), 0))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
