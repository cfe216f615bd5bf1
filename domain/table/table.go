package table

import (
	"fmt"
	"sort"
)

// Table is an ordered set of named columns with aligned rows. All columns
// hold the same number of cells; row order is insertion order until an
// explicit sort reorders it. Operations never mutate a Table in place:
// every transform returns a new Table, sharing untouched column slices.
type Table struct {
	cols  []Column
	index map[string]int
}

// New builds a Table from columns, validating alignment and name uniqueness
func New(cols ...Column) (Table, error) {
	index := make(map[string]int, len(cols))
	rows := -1
	for i, col := range cols {
		if col.Name == "" {
			return Table{}, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[col.Name]; dup {
			return Table{}, fmt.Errorf("duplicate column name %q", col.Name)
		}
		if rows == -1 {
			rows = col.Len()
		} else if col.Len() != rows {
			return Table{}, fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), rows)
		}
		index[col.Name] = i
	}
	return Table{cols: cols, index: index}, nil
}

// NumRows returns the row count
func (t Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count
func (t Table) NumCols() int {
	return len(t.cols)
}

// Names returns column names in declaration order
func (t Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Columns returns the columns in declaration order
func (t Table) Columns() []Column {
	return t.cols
}

// Column looks up a column by name. The boolean result is the presence
// check every stage uses to decide between transform, no-op, and notice.
func (t Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Has reports whether a column exists
func (t Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// WithColumn returns a new Table with col appended. The receiver's columns
// are shared, not copied; col must match the row count.
func (t Table) WithColumn(col Column) (Table, error) {
	if t.NumCols() > 0 && col.Len() != t.NumRows() {
		return Table{}, fmt.Errorf("column %q has %d rows, table has %d", col.Name, col.Len(), t.NumRows())
	}
	if t.Has(col.Name) {
		return Table{}, fmt.Errorf("column %q already exists", col.Name)
	}
	cols := make([]Column, 0, len(t.cols)+1)
	cols = append(cols, t.cols...)
	cols = append(cols, col)
	return New(cols...)
}

// ReplaceColumn returns a new Table with the named column swapped for col.
// The replacement keeps the column's position.
func (t Table) ReplaceColumn(col Column) (Table, error) {
	i, ok := t.index[col.Name]
	if !ok {
		return Table{}, fmt.Errorf("column %q does not exist", col.Name)
	}
	if col.Len() != t.NumRows() {
		return Table{}, fmt.Errorf("column %q has %d rows, table has %d", col.Name, col.Len(), t.NumRows())
	}
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	cols[i] = col
	return New(cols...)
}

// Select returns a new Table containing the rows at the given indices,
// in the given order. Indices may repeat.
func (t Table) Select(rows []int) Table {
	cols := make([]Column, len(t.cols))
	for i, col := range t.cols {
		cells := make([]Cell, len(rows))
		for j, r := range rows {
			cells[j] = col.Cells[r]
		}
		cols[i] = Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	out, _ := New(cols...)
	return out
}

// Head returns the first n rows (fewer when the table is shorter)
func (t Table) Head(n int) Table {
	if n > t.NumRows() {
		n = t.NumRows()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.Select(rows)
}

// SortedIndices returns row indices ordered ascending by the named column:
// numerically for numeric columns, lexicographically otherwise. Null cells
// sort last. The sort is stable. Returns nil when the column is absent.
func (t Table) SortedIndices(name string) []int {
	col, ok := t.Column(name)
	if !ok {
		return nil
	}
	rows := make([]int, t.NumRows())
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(a, b int) bool {
		ca, cb := col.Cells[rows[a]], col.Cells[rows[b]]
		if ca.Null != cb.Null {
			return cb.Null
		}
		if ca.Null {
			return false
		}
		if col.Kind == KindNumeric {
			return ca.Num < cb.Num
		}
		return ca.String() < cb.String()
	})
	return rows
}

// Records renders every row as display strings, one slice per row
func (t Table) Records() [][]string {
	records := make([][]string, t.NumRows())
	for r := range records {
		row := make([]string, len(t.cols))
		for c, col := range t.cols {
			row[c] = col.Cells[r].String()
		}
		records[r] = row
	}
	return records
}
