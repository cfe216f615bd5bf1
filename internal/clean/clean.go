// Package clean fills missing cells with a sentinel and normalizes the
// casing of the geographic-origin column. Both transforms are pure:
// they return new tables and leave their input untouched.
package clean

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"disasterscope/domain/table"
)

var titleCaser = cases.Title(language.English)

// FillNulls replaces every null cell with the sentinel text. The output has
// zero null cells; non-null cells are unchanged. A numeric column that
// contained nulls becomes text, since the sentinel is not a number.
func FillNulls(t table.Table, sentinel string) table.Table {
	out := t
	for _, col := range t.Columns() {
		if col.NullCount() == 0 {
			continue
		}
		cells := make([]table.Cell, len(col.Cells))
		for i, cell := range col.Cells {
			if cell.Null {
				cells[i] = table.TextCell(sentinel)
			} else if col.Kind == table.KindNumeric {
				cells[i] = table.TextCell(cell.String())
			} else {
				cells[i] = cell
			}
		}
		replaced, err := out.ReplaceColumn(table.Column{Name: col.Name, Kind: table.KindText, Cells: cells})
		if err != nil {
			continue
		}
		out = replaced
	}
	return out
}

// NormalizeCategory rewrites every cell of the named column to title case
// (first letter of each word upper, rest lower). Absent column is a no-op.
// The transform is idempotent.
func NormalizeCategory(t table.Table, column string) table.Table {
	col, ok := t.Column(column)
	if !ok {
		return t
	}
	cells := make([]table.Cell, len(col.Cells))
	for i, cell := range col.Cells {
		if cell.Null {
			cells[i] = cell
			continue
		}
		cells[i] = table.TextCell(titleCaser.String(cell.String()))
	}
	out, err := t.ReplaceColumn(table.Column{Name: col.Name, Kind: table.KindText, Cells: cells})
	if err != nil {
		return t
	}
	return out
}
