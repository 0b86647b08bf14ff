// Package report renders process lists and termination reports as plain
// text tables.
package report

import (
	"fmt"
	"io"
	"strings"
)

// FormatFunc is a callback to format/colorize cell values
type FormatFunc func(value string) string

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header     string
	BlankValue string     // Value to show for empty cells (default: "-")
	FormatFunc FormatFunc // Optional formatter/colorizer, applied at render time
	MinWidth   int
}

// Table buffers rows so that column widths fit the widest cell.
type Table struct {
	columns []ColumnSpec
	rows    [][]string
	widths  []int
}

func NewTable(cols ...ColumnSpec) *Table {
	t := &Table{
		columns: cols,
		widths:  make([]int, len(cols)),
	}
	for i := range t.columns {
		if t.columns[i].BlankValue == "" {
			t.columns[i].BlankValue = "-"
		}
		t.widths[i] = max(t.columns[i].MinWidth, visibleLength(t.columns[i].Header))
	}
	return t
}

// AddRow adds a row; missing or empty cells show the column's BlankValue.
func (t *Table) AddRow(data ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(data) && data[i] != "" {
			row[i] = data[i]
		} else {
			row[i] = t.columns[i].BlankValue
		}
		t.widths[i] = max(t.widths[i], visibleLength(row[i]))
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the header, a dashed rule and every row to w.
func (t *Table) Render(w io.Writer) error {
	cells := make([]string, len(t.columns))

	for i, col := range t.columns {
		cells[i] = pad(col.Header, t.widths[i])
	}
	if err := writeLine(w, cells); err != nil {
		return err
	}

	for i := range t.columns {
		cells[i] = strings.Repeat("-", t.widths[i])
	}
	if err := writeLine(w, cells); err != nil {
		return err
	}

	for _, row := range t.rows {
		for i, val := range row {
			// pad first: FormatFunc may add escape codes
			cell := pad(val, t.widths[i])
			if f := t.columns[i].FormatFunc; f != nil {
				cell = f(val) + strings.Repeat(" ", len(cell)-len(val))
			}
			cells[i] = cell
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

func pad(s string, width int) string {
	n := visibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// visibleLength counts runes outside ANSI escape sequences.
func visibleLength(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			length++
		}
	}
	return length
}
