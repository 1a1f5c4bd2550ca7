package pbtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/protoview/pkg/pbtext"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []pbtext.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []pbtext.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "a: 1",
			expected: []pbtext.LineInfo{
				{StartOffset: 0, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "single line with LF",
			content: "a: 1\n",
			expected: []pbtext.LineInfo{
				{StartOffset: 0, NewlineStart: 4, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "a {\r\n}\r\n",
			expected: []pbtext.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 6, EndOffset: 8},
				{StartOffset: 8, NewlineStart: 8, EndOffset: 8},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, pbtext.BuildLines(testCase.content))
		})
	}
}

func TestDocument_PositionAt(t *testing.T) {
	t.Parallel()

	doc := pbtext.Parse("line1\nline2\nline3")

	tests := []struct {
		name     string
		offset   int
		expected pbtext.Position
	}{
		{"start of text", 0, pbtext.Position{Line: 1, Column: 1}},
		{"newline of line 1", 5, pbtext.Position{Line: 1, Column: 6}},
		{"start of line 2", 6, pbtext.Position{Line: 2, Column: 1}},
		{"last byte", 16, pbtext.Position{Line: 3, Column: 5}},
		{"negative", -1, pbtext.Position{}},
		{"past end", 17, pbtext.Position{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, doc.PositionAt(testCase.offset))
		})
	}
}

func TestDocument_LineContent(t *testing.T) {
	t.Parallel()

	doc := pbtext.Parse("a {\r\n  x: 1\n}")

	assert.Equal(t, "a {", doc.LineContent(1))
	assert.Equal(t, "  x: 1", doc.LineContent(2))
	assert.Equal(t, "}", doc.LineContent(3))
	assert.Empty(t, doc.LineContent(0))
	assert.Empty(t, doc.LineContent(4))
}
