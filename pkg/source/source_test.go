package source_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/protoview/pkg/source"
)

const textFormat = "service {\n  name: \"api\"\n}\n"

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.textproto")
	require.NoError(t, os.WriteFile(path, []byte(textFormat), 0o600))

	in, err := source.Load(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, in.Name)
	assert.Equal(t, textFormat, string(in.Content))
	assert.False(t, in.IsStdin())
	assert.Equal(t, source.LanguageTextFormat, in.Language)
	assert.Empty(t, in.Warning())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := source.Load(context.Background(), filepath.Join(t.TempDir(), "missing.txtpb"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Stdin(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", "-"} {
		in, err := source.Load(context.Background(), path, strings.NewReader(textFormat))
		require.NoError(t, err)
		assert.True(t, in.IsStdin())
		assert.Equal(t, source.StdinName, in.Name)
		assert.Equal(t, textFormat, string(in.Content))
	}
}

func TestLoad_StdinRegularFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "piped")
	require.NoError(t, os.WriteFile(path, []byte(textFormat), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	in, err := source.Load(context.Background(), "", f)
	require.NoError(t, err)
	assert.Equal(t, textFormat, string(in.Content))
}

func TestLoad_NoStdin(t *testing.T) {
	t.Parallel()

	_, err := source.Load(context.Background(), "", nil)
	require.ErrorIs(t, err, source.ErrInteractiveStdin)
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx, "", strings.NewReader(textFormat))
	require.ErrorIs(t, err, context.Canceled)
}

func TestInput_Warning(t *testing.T) {
	t.Parallel()

	in := &source.Input{Name: "a.json", Language: source.LanguageJSON}
	assert.Equal(t, "a.json looks like JSON, not protobuf text format", in.Warning())

	in = &source.Input{Name: "a", Language: ""}
	assert.Empty(t, in.Warning())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{name: "empty", file: "", content: "  \n", expected: ""},
		{name: "textproto extension", file: "a.textproto", content: "x: 1\n", expected: source.LanguageTextFormat},
		{name: "json extension", file: "a.json", content: `{"x": 1}`, expected: "JSON"},
		{name: "go extension", file: "main.go", content: "package main\n", expected: "Go"},
		{name: "txt falls back to content", file: "notes.txt", content: "x: 1\n", expected: source.LanguageTextFormat},
		{name: "stdin block", file: source.StdinName, content: "# comment\nservice {\n}\n", expected: source.LanguageTextFormat},
		{name: "stdin attribute", file: "", content: "name: \"api\"\n", expected: source.LanguageTextFormat},
		{name: "json object", file: "", content: `{"key": "value"}`, expected: source.LanguageJSON},
		{name: "xml", file: "", content: "<config/>", expected: source.LanguageXML},
		{name: "yaml document marker", file: "", content: "---\nkey: value\n", expected: source.LanguageYAML},
		{name: "yaml list", file: "", content: "- one\n- two\n", expected: source.LanguageYAML},
		{name: "shebang", file: "", content: "#!/bin/bash\necho hi\n", expected: "Shell"},
		{name: "binary", file: "", content: "ab\x00cd", expected: source.LanguageBinary},
		{name: "prose", file: "", content: "just some words\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, source.Classify(tt.file, []byte(tt.content)))
		})
	}
}
