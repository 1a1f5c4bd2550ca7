package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minColumnWidth   = 4
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// Table is a simple column-aligned table.
type Table struct {
	// Headers are the column titles.
	Headers []string

	// Rows holds the cells, one slice per row. Short rows are padded.
	Rows [][]string

	// Highlight marks rows (by index) rendered with the highlight style.
	Highlight map[int]bool

	// Legend is an optional line written below the table.
	Legend string
}

// TableFormatter renders tables as styled, column-aligned text.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders the table. It returns "" for a table without columns.
func (t *TableFormatter) Format(table Table) string {
	if len(table.Headers) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(table)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(formatCells(table.Headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for idx, row := range table.Rows {
		content := formatCells(row, widths)
		if table.Highlight[idx] {
			content = t.styles.TableHighlight.Render(content)
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, lightSeparator))
	builder.WriteString("\n")

	if table.Legend != "" {
		builder.WriteString(t.styles.TableLegend.Render(" " + table.Legend))
		builder.WriteString("\n")
	}

	return builder.String()
}

// calculateColumnWidths sizes each column to its widest cell, then shrinks
// the last column to fit the terminal width.
func (t *TableFormatter) calculateColumnWidths(table Table) []int {
	widths := make([]int, len(table.Headers))
	for i, header := range table.Headers {
		widths[i] = max(minColumnWidth, len(header))
	}
	for _, row := range table.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	total := totalWidth(widths)
	if total > t.termWidth {
		last := len(widths) - 1
		widths[last] = max(minColumnWidth, widths[last]-(total-t.termWidth))
	}

	return widths
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}
	return total
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths []int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth(widths)))
}

func formatCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = truncateString(cells[i], width)
		}
		parts[i] = fmt.Sprintf("%-*s", width, cell)
	}
	return strings.TrimRight(" "+strings.Join(parts, strings.Repeat(" ", tablePadding)), " ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
