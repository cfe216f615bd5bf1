package table

import (
	"strconv"
)

// Kind classifies a column's inferred cell type
type Kind string

const (
	KindText    Kind = "text"
	KindNumeric Kind = "numeric"
)

// Cell is a single value in a column. Null marks a missing cell; a null cell
// carries neither text nor a number. Numeric cells keep the original token in
// Text so display round-trips the input exactly.
type Cell struct {
	Text string  `json:"text"`
	Num  float64 `json:"num,omitempty"`
	Null bool    `json:"null,omitempty"`
}

// TextCell creates a non-null text cell
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// NumCell creates a non-null numeric cell, preserving the source token
func NumCell(token string, v float64) Cell {
	return Cell{Text: token, Num: v}
}

// NullCell creates a missing cell
func NullCell() Cell {
	return Cell{Null: true}
}

// String renders the cell for display and string-derived computation.
// Null cells render empty.
func (c Cell) String() string {
	if c.Null {
		return ""
	}
	return c.Text
}

// FormatFloat renders a float the way cells display derived numeric values
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Column is a named, ordered sequence of cells. Columns are treated as
// immutable once attached to a Table; transforms build fresh cell slices.
type Column struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Cells []Cell `json:"cells"`
}

// Len returns the number of cells
func (c Column) Len() int {
	return len(c.Cells)
}

// NonNullCount returns the number of non-null cells
func (c Column) NonNullCount() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.Null {
			n++
		}
	}
	return n
}

// NullCount returns the number of null cells
func (c Column) NullCount() int {
	return len(c.Cells) - c.NonNullCount()
}

// Floats extracts the numeric values of all non-null cells.
// Meaningful only for KindNumeric columns.
func (c Column) Floats() []float64 {
	vals := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Null {
			vals = append(vals, cell.Num)
		}
	}
	return vals
}

// Strings renders every cell, nulls included, in row order
func (c Column) Strings() []string {
	out := make([]string, len(c.Cells))
	for i, cell := range c.Cells {
		out[i] = cell.String()
	}
	return out
}
