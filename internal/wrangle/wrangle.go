// Package wrangle derives and reorders columns: stable sorts, string-length
// derivation, and categorical integer encoding. Every transform is
// copy-on-write; absent source columns make each a no-op.
package wrangle

import (
	"unicode/utf8"

	"disasterscope/domain/table"
)

// SortBy returns the table's rows stably sorted ascending by the named
// column: numeric order for numeric columns, lexicographic for text.
// Returns the input table unchanged when the column is absent.
func SortBy(t table.Table, column string) table.Table {
	rows := t.SortedIndices(column)
	if rows == nil {
		return t
	}
	return t.Select(rows)
}

// DeriveLength appends a numeric column named target whose i-th value is
// the character (rune) length of the i-th cell of source, rendered as text
// first. Null cells derive length 0. Absent source column is a no-op.
func DeriveLength(t table.Table, source, target string) table.Table {
	col, ok := t.Column(source)
	if !ok {
		return t
	}
	cells := make([]table.Cell, len(col.Cells))
	for i, cell := range col.Cells {
		n := utf8.RuneCountInString(cell.String())
		cells[i] = table.NumCell(table.FormatFloat(float64(n)), float64(n))
	}
	out, err := t.WithColumn(table.Column{Name: target, Kind: table.KindNumeric, Cells: cells})
	if err != nil {
		return t
	}
	return out
}

// EncodeCategory appends an integer-code column named target where each
// distinct value of column gets a unique code. Codes are assigned in
// first-seen row order: the first distinct value is 0, the next new one 1,
// and so on up to k-1. The rule is deliberate: it makes re-encoding the
// same table reproducible. Codes are per-run only; two uploads of similar
// data may assign different codes when row order differs.
// Absent column is a no-op.
func EncodeCategory(t table.Table, column, target string) table.Table {
	col, ok := t.Column(column)
	if !ok {
		return t
	}
	codes := make(map[string]int)
	next := 0
	cells := make([]table.Cell, len(col.Cells))
	for i, cell := range col.Cells {
		v := cell.String()
		code, seen := codes[v]
		if !seen {
			code = next
			codes[v] = code
			next++
		}
		cells[i] = table.NumCell(table.FormatFloat(float64(code)), float64(code))
	}
	out, err := t.WithColumn(table.Column{Name: target, Kind: table.KindNumeric, Cells: cells})
	if err != nil {
		return t
	}
	return out
}
