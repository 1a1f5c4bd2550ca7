package source

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// Language names, as reported by go-enry.
const (
	LanguageTextFormat = "Protocol Buffer Text Format"
	LanguageJSON       = "JSON"
	LanguageXML        = "XML"
	LanguageYAML       = "YAML"
	LanguageBinary     = "binary data"
)

// languageText is the catch-all enry reports for .txt files.
const languageText = "Text"

// Classify returns the detected language of content, or "" when detection
// has no confident answer. The name only contributes its extension.
func Classify(name string, content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Strategy 1: binary content can never be text format.
	if enry.IsBinary(content) {
		return LanguageBinary
	}

	// Strategy 2: the file extension.
	if name != "" && name != StdinName {
		if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" && lang != languageText {
			return lang
		}
	}

	// Strategy 3: an interpreter line.
	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return lang
	}

	// Strategy 4: content patterns.
	return detectByPattern(content)
}

func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	switch trimmed[0] {
	case '{', '[':
		if bytes.IndexByte(trimmed, '"') >= 0 {
			return LanguageJSON
		}
	case '<':
		return LanguageXML
	}

	if bytes.HasPrefix(trimmed, []byte("---")) {
		return LanguageYAML
	}

	for line := range bytes.Lines(trimmed) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			return LanguageYAML
		}
		if bytes.HasSuffix(line, []byte("{")) || bytes.IndexByte(line, ':') > 0 {
			return LanguageTextFormat
		}
	}

	return ""
}
