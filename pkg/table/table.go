// pkg/table/table.go
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered set of named columns over an ordered set of rows.
// Columns may be nil for raw sheets that have not been given names yet.
// Every row is kept at exactly len(Columns) cells (or the widest raw row).
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Dataset is a named table, one of the four normalized outputs.
type Dataset struct {
	Name  string
	Table Table
}

// FromStrings builds a raw table from sheet rows as returned by the
// spreadsheet reader. Rows are padded to the widest row so positional
// column operations stay well defined.
func FromStrings(rows [][]string) Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				cells[j] = Text(row[j])
			} else {
				cells[j] = Text("")
			}
		}
		out[i] = cells
	}

	return Table{Rows: out}
}

// NumRows returns the row count.
func (t Table) NumRows() int { return len(t.Rows) }

// NumCols returns the column count, falling back to the first row's
// width for unnamed tables.
func (t Table) NumCols() int {
	if t.Columns != nil {
		return len(t.Columns)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

// NormalizeName lower-cases a header and replaces spaces and hyphens
// with underscores. Empty headers become the literal "nan" so that
// artifact columns can be dropped by name downstream.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "nan"
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// HeaderAt derives normalized column names from the given row index.
func (t Table) HeaderAt(rowIdx int) ([]string, error) {
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return nil, fmt.Errorf("header row %d out of range (%d rows)", rowIdx, len(t.Rows))
	}

	row := t.Rows[rowIdx]
	names := make([]string, len(row))
	for i, c := range row {
		names[i] = NormalizeName(c.Encode())
	}
	return names, nil
}

// WithColumns returns a copy of the table with column names assigned.
func (t Table) WithColumns(names []string) Table {
	cols := make([]string, len(names))
	copy(cols, names)
	return Table{Columns: cols, Rows: t.Rows}
}

// DropHeadRows removes the first n rows (header and metadata rows).
func (t Table) DropHeadRows(n int) Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Table{Columns: t.Columns, Rows: t.Rows[n:]}
}

// SliceCols returns the column block [lo, hi). The bound is clamped to
// the table width rather than erroring, matching positional slicing on
// sheets narrower than expected.
func (t Table) SliceCols(lo, hi int) Table {
	width := t.NumCols()
	if hi > width {
		hi = width
	}
	if lo > width {
		lo = width
	}

	var cols []string
	if t.Columns != nil {
		cols = append([]string(nil), t.Columns[lo:hi]...)
	}

	rows := make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]Cell(nil), row[lo:hi]...)
	}

	return Table{Columns: cols, Rows: rows}
}

// ColumnIndex returns the index of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Select returns a table containing only the named columns, in the
// given order. Unknown names are an error.
func (t Table) Select(names ...string) (Table, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j := t.ColumnIndex(name)
		if j < 0 {
			return Table{}, fmt.Errorf("unknown column %q", name)
		}
		idx[i] = j
	}

	rows := make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]Cell, len(idx))
		for k, j := range idx {
			cells[k] = row[j]
		}
		rows[i] = cells
	}

	return Table{Columns: append([]string(nil), names...), Rows: rows}, nil
}

// DropColumns removes the named columns. Unknown names are an error.
func (t Table) DropColumns(names ...string) (Table, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			return Table{}, fmt.Errorf("unknown column %q", name)
		}
		drop[name] = true
	}

	keep := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !drop[c] {
			keep = append(keep, c)
		}
	}

	return t.Select(keep...)
}

// Rename renames a single column in place semantics (returns a copy).
func (t Table) Rename(from, to string) Table {
	cols := append([]string(nil), t.Columns...)
	for i, c := range cols {
		if c == from {
			cols[i] = to
		}
	}
	return Table{Columns: cols, Rows: t.Rows}
}

// DropNullRows removes rows whose cells are all null across this
// table's own columns. Row alignment with sibling tables is not
// preserved.
func (t Table) DropNullRows() Table {
	rows := make([][]Cell, 0, len(t.Rows))
	for _, row := range t.Rows {
		empty := true
		for _, c := range row {
			if !c.IsNull() {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return Table{Columns: t.Columns, Rows: rows}
}

// MapColumn applies fn to every cell of column idx.
func (t Table) MapColumn(idx int, fn func(Cell) Cell) Table {
	rows := make([][]Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells := append([]Cell(nil), row...)
		cells[idx] = fn(cells[idx])
		rows[i] = cells
	}
	return Table{Columns: t.Columns, Rows: rows}
}
