package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Table is a rows×cols grid of strings with labelled columns.
// cells holds rows*cols values in row-major order.
type Table struct {
	columns []string
	rows    int
	cells   []string
}

// New builds a Table from column labels and rows. Both inputs are copied.
// Every row must have exactly len(columns) cells, else ErrRaggedRow.
// Complexity: O(rows*cols).
func New(columns []string, rows [][]string) (*Table, error) {
	cols := len(columns)
	cells := make([]string, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("table.New: row %d has %d cells, want %d: %w", i, len(r), cols, ErrRaggedRow)
		}
		cells = append(cells, r...)
	}

	return &Table{
		columns: slices.Clone(columns),
		rows:    len(rows),
		cells:   cells,
	}, nil
}

// DefaultColumns returns the positional labels "0".."n-1".
func DefaultColumns(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.columns) }

// Shape returns (rows, cols).
func (t *Table) Shape() (int, int) { return t.rows, len(t.columns) }

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// At returns the cell at (row, col).
// Complexity: O(1).
func (t *Table) At(row, col int) (string, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= len(t.columns) {
		return "", fmt.Errorf("Table.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return t.cells[row*len(t.columns)+col], nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]string, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("Table.Row(%d): %w", i, ErrOutOfRange)
	}
	c := len(t.columns)
	return slices.Clone(t.cells[i*c : (i+1)*c]), nil
}

// Records returns a copy of all rows in order.
// Complexity: O(rows*cols).
func (t *Table) Records() [][]string {
	c := len(t.columns)
	out := make([][]string, t.rows)
	for i := range out {
		out[i] = slices.Clone(t.cells[i*c : (i+1)*c])
	}
	return out
}

// ColumnIndex returns the position of the first column labelled name.
func (t *Table) ColumnIndex(name string) (int, error) {
	if i := slices.Index(t.columns, name); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("Table.ColumnIndex(%q): %w", name, ErrUnknownColumn)
}

// Column returns the values of the column labelled name, top to bottom.
func (t *Table) Column(name string) ([]string, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	c := len(t.columns)
	out := make([]string, t.rows)
	for i := range out {
		out[i] = t.cells[i*c+j]
	}
	return out, nil
}

// Unique returns the distinct values of the named column in order of first
// appearance.
func (t *Table) Unique(name string) ([]string, error) {
	vals, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// Equal reports whether o has the same labels and the same cells in the same
// order. A nil table only equals another nil table.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.rows == o.rows &&
		slices.Equal(t.columns, o.columns) &&
		slices.Equal(t.cells, o.cells)
}

// HasDuplicateRows reports whether any two rows hold identical cells.
// Complexity: O(rows*cols) expected.
func (t *Table) HasDuplicateRows() bool {
	c := len(t.columns)
	seen := make(map[string]struct{}, t.rows)
	for i := 0; i < t.rows; i++ {
		key := rowKey(t.cells[i*c : (i+1)*c])
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// rowKey joins cells with their byte lengths so ("a|", "b") and ("a", "|b")
// never collide.
func rowKey(cells []string) string {
	var b strings.Builder
	for _, s := range cells {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	return b.String()
}

// String renders the table with a row-index gutter and right-aligned cells.
//
//	   head relation tail
//	0    e4     rel1   e0
func (t *Table) String() string {
	c := len(t.columns)
	gutter := utf8.RuneCountInString(strconv.Itoa(max(t.rows-1, 0)))
	widths := make([]int, c)
	for j, name := range t.columns {
		widths[j] = utf8.RuneCountInString(name)
	}
	for i, v := range t.cells {
		widths[i%c] = max(widths[i%c], utf8.RuneCountInString(v))
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	for j, name := range t.columns {
		b.WriteByte(' ')
		b.WriteString(pad(name, widths[j]))
	}
	for i := 0; i < t.rows; i++ {
		b.WriteByte('\n')
		b.WriteString(pad(strconv.Itoa(i), gutter))
		for j := 0; j < c; j++ {
			b.WriteByte(' ')
			b.WriteString(pad(t.cells[i*c+j], widths[j]))
		}
	}
	return b.String()
}

func pad(s string, w int) string {
	if n := w - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
