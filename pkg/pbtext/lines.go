package pbtext

import "sort"

// LineInfo holds the offsets of a single line of the document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For a last line without a trailing newline, this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of text).
	EndOffset int
}

// Position is a 1-based line and column. Column counts bytes, not runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// BuildLines constructs line metadata for text.
// It handles both LF and CRLF line endings.
func BuildLines(text string) []LineInfo {
	if len(text) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && text[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(text),
		EndOffset:    len(text),
	})

	return lines
}

// Lines returns the document's line table, building it on first use.
func (d *Document) Lines() []LineInfo {
	d.linesOnce.Do(func() {
		d.lines = BuildLines(d.text)
	})
	return d.lines
}

// PositionAt converts a byte offset into a 1-based line and column.
// Returns the zero Position if the offset is out of range.
func (d *Document) PositionAt(offset int) Position {
	lines := d.Lines()
	if offset < 0 || offset >= len(d.text) || len(lines) == 0 {
		return Position{}
	}

	lineIdx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndOffset > offset
	})
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}

	line := lines[lineIdx]
	if offset < line.StartOffset {
		return Position{}
	}
	return Position{Line: lineIdx + 1, Column: offset - line.StartOffset + 1}
}

// LineContent returns the content of a 1-based line, excluding the newline.
// Returns "" if the line number is out of range.
func (d *Document) LineContent(line int) string {
	lines := d.Lines()
	if line < 1 || line > len(lines) {
		return ""
	}
	info := lines[line-1]
	return d.text[info.StartOffset:info.NewlineStart]
}
