// Package cli provides command-line interface utilities.
package cli

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Table is a simple column-aligned text table.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded with empty cells
// and long rows are truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString(cell)
			if i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-cellWidth(cell)+t.padding))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.headers)
	for i, w := range widths {
		sep := strings.Repeat("-", w)
		sb.WriteString(sep)
		if i < len(widths)-1 {
			sb.WriteString(strings.Repeat(" ", t.padding))
		}
	}
	sb.WriteString("\n")
	for _, row := range t.rows {
		writeRow(row)
	}

	return sb.String()
}

// cellWidth measures the terminal display width of a cell: ANSI escape
// sequences occupy no columns and wide glyphs (CJK, emoji) occupy two, so
// byte or rune counts would misalign swatch and initials columns.
func cellWidth(s string) int {
	width := 0
	for {
		start := strings.IndexByte(s, '\033')
		if start < 0 {
			return width + uniseg.StringWidth(s)
		}
		width += uniseg.StringWidth(s[:start])
		rest := s[start:]
		end := strings.IndexByte(rest, 'm')
		if end < 0 {
			return width
		}
		s = rest[end+1:]
	}
}
