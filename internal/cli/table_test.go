// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Hex", "WCAG"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	// Add matching row
	table.AddRow([]string{"Ada", "#d74242"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"Bob"})
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"Carol", "#56d742", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})
	table.AddRow([]string{"Ada Lovelace", "#d74242"})
	table.AddRow([]string{"Bob", "#1466b8"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Name") {
		t.Errorf("Header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("Separator line = %q", lines[1])
	}
	// Columns align: the hex column starts at the same offset in all rows.
	offset := strings.Index(lines[2], "#d74242")
	if strings.Index(lines[3], "#1466b8") != offset {
		t.Errorf("Columns not aligned:\n%s", out)
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "initials", 8},
		{"empty", "", 0},
		{"cjk double width", "田太", 4},
		{"mixed", "AL田", 4},
		{"ansi sequences are zero width", "\033[48;2;215;66;66m\033[38;2;0;0;0m  AL  \033[0m", 6},
		{"unterminated escape", "AL\033[48;2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellWidth(tt.input); got != tt.want {
				t.Errorf("cellWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTableRenderAlignsWideAndColouredCells(t *testing.T) {
	table := NewTable([]string{"INITIALS", "HEX"})
	table.AddRow([]string{"田太", "#d74242"})
	table.AddRow([]string{"AL", "#1466b8"})
	table.AddRow([]string{"\033[48;2;20;102;184m GH \033[0m", "#9fdfdf"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}

	// Every hex cell must start at the same display column. The first
	// column is 8 wide ("INITIALS") plus 2 padding, so each row carries
	// 10 display columns before the hex value.
	for i, line := range lines {
		if i == 1 {
			continue // separator
		}
		idx := strings.IndexByte(line, '#')
		if i == 0 {
			idx = strings.Index(line, "HEX")
		}
		if idx < 0 {
			t.Fatalf("line %d has no second column: %q", i, line)
		}
		if got := cellWidth(line[:idx]); got != 10 {
			t.Errorf("line %d: second column starts at display column %d, want 10:\n%s", i, got, out)
		}
	}

	// The separator row matches the display widths, not the byte counts.
	if lines[1] != "--------  -------" {
		t.Errorf("separator = %q", lines[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() on empty table = %q, want empty", out)
	}
}
