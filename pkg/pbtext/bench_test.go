package pbtext_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/protoview/pkg/pbtext"
)

func largeDocument(blocks int) string {
	var b strings.Builder
	for range blocks {
		b.WriteString(sampleDocument)
	}
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	text := largeDocument(100)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()

	for b.Loop() {
		_ = pbtext.Parse(text)
	}
}

func BenchmarkParseAndReadKeys(b *testing.B) {
	text := largeDocument(100)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()

	for b.Loop() {
		_ = pbtext.AllKeys(pbtext.Parse(text).Root())
	}
}

func BenchmarkAttributeLookup(b *testing.B) {
	root := pbtext.Parse(sampleDocument).Root()
	msg, ok := root.Element("root_message")
	if !ok {
		b.Fatal("root_message not found")
	}
	b.ReportAllocs()

	for b.Loop() {
		for _, sub := range msg.Elements("repeated_sub_message") {
			_, _ = sub.Attribute("type")
		}
	}
}
