package pbtext_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/protoview/pkg/pbtext"
)

func TestParse_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		messages  int
		attribute int
	}{
		{"empty input", "", 0, 0},
		{"single attribute", "a: 1\n", 0, 1},
		{"single attribute without newline", "a: 1", 0, 1},
		{"empty block", "a {\n}\n", 1, 0},
		{"nested blocks", "a {\n b {\n c {\n }\n }\n}\n", 3, 0},
		{"colons in value are one attribute", "time: 10:30:00\n", 0, 1},
		{"braces in value are ignored", "s: \"{ } {\"\nm {\n}\n", 1, 1},
		{"sample document", sampleDocument, 4, 16},
		{"scenario document", scenarioDocument, 3, 4},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := pbtext.Parse(testCase.text)
			assert.Equal(t, testCase.messages, doc.MessageCount())
			assert.Equal(t, testCase.attribute, doc.AttributeCount())
			assert.Equal(t, testCase.text, doc.Text())
		})
	}
}

func TestParse_RootIsContainer(t *testing.T) {
	t.Parallel()

	root := pbtext.Parse(sampleDocument).Root()

	assert.True(t, root.IsValid())
	assert.True(t, root.IsRoot())
	assert.Empty(t, root.Name())
	assert.False(t, root.Position().IsValid())
	assert.Equal(t, []string{"root_message", "root_message2"}, root.Keys())
}

func TestParseBytes_MatchesParse(t *testing.T) {
	t.Parallel()

	fromString := pbtext.Parse(sampleDocument)
	fromBytes := pbtext.ParseBytes([]byte(sampleDocument))

	assert.Equal(t, fromString.MessageCount(), fromBytes.MessageCount())
	assert.Equal(t, fromString.AttributeCount(), fromBytes.AttributeCount())
	assert.Equal(t, pbtext.AllKeys(fromString.Root()), pbtext.AllKeys(fromBytes.Root()))
}

func TestParseBytes_Testdata(t *testing.T) {
	t.Parallel()

	content, err := os.ReadFile("testdata/sample.txtpb")
	require.NoError(t, err)
	assert.Equal(t, sampleDocument, string(content))

	doc := pbtext.ParseBytes(content)
	assert.Equal(t, 4, doc.MessageCount())
	assert.Equal(t, 16, doc.AttributeCount())
}

func TestParse_UnbalancedBraces(t *testing.T) {
	t.Parallel()

	t.Run("extra closing brace stays at root", func(t *testing.T) {
		t.Parallel()

		doc := pbtext.Parse("}\n}\na {\n x: 1\n}\n")
		root := doc.Root()

		a, ok := root.Element("a")
		require.True(t, ok)
		value, ok := a.Attribute("x")
		require.True(t, ok)
		assert.Equal(t, "1", value)
	})

	t.Run("unclosed block keeps what it saw", func(t *testing.T) {
		t.Parallel()

		doc := pbtext.Parse("a {\n x: 1\n")
		a, ok := doc.Root().Element("a")
		require.True(t, ok)
		assert.Equal(t, []string{"1"}, a.Attributes("x"))
	})
}

func TestParse_CRLF(t *testing.T) {
	t.Parallel()

	doc := pbtext.Parse("a {\r\n  x: 5\r\n  q: \"v\"\r\n}\r\n")
	a, ok := doc.Root().Element("a")
	require.True(t, ok)

	x, ok := a.Attribute("x")
	require.True(t, ok)
	assert.Equal(t, "5", x)

	q, ok := a.Attribute("q")
	require.True(t, ok)
	assert.Equal(t, "v", q)
}
