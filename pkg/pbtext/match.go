package pbtext

import "strings"

// isSpace reports whether c separates a name from its delimiter.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// isBoundary reports whether c may precede the first byte of a name.
func isBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '{', '}':
		return true
	default:
		return false
	}
}

// nameEnd returns the exclusive end offset of the name that precedes the
// delimiter at delim, skipping the spaces between them ("name {", "name:").
func nameEnd(text string, delim int) int {
	end := delim
	for end > 0 && isSpace(text[end-1]) {
		end--
	}
	return end
}

// matchName reports whether the name immediately before the delimiter at
// delim equals name. It compares backward in place and requires a boundary
// (or the start of text) before the match, so "bar" never matches the tail
// of "foo_bar". It does not allocate.
func matchName(text string, delim int, name string) bool {
	end := nameEnd(text, delim)
	start := end - len(name)
	if start < 0 {
		return false
	}
	for i := len(name) - 1; i >= 0; i-- {
		if text[start+i] != name[i] {
			return false
		}
	}
	return start == 0 || isBoundary(text[start-1])
}

// extractName returns the name preceding the delimiter at delim.
func extractName(text string, delim int) string {
	end := nameEnd(text, delim)
	start := end
	for start > 0 && !isBoundary(text[start-1]) {
		start--
	}
	return text[start:end]
}

// extractValue returns the value following the colon at colon: the rest of
// the line with surrounding whitespace and a trailing CR removed. A value
// wrapped in double quotes at both ends loses exactly those two quotes.
// Escapes are not interpreted.
func extractValue(text string, colon int) string {
	start := colon + 1
	for start < len(text) && isSpace(text[start]) {
		start++
	}

	end := len(text)
	if newline := strings.IndexByte(text[start:], '\n'); newline >= 0 {
		end = start + newline
	}
	for end > start && (isSpace(text[end-1]) || text[end-1] == '\r') {
		end--
	}

	if end-start >= 2 && text[start] == '"' && text[end-1] == '"' {
		start++
		end--
	}
	return text[start:end]
}
