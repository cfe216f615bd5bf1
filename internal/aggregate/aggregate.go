// Package aggregate subsets and counts rows by category. Absent columns
// surface the non-fatal COLUMN_MISSING signal so callers can degrade to an
// informational notice instead of crashing the run.
package aggregate

import (
	"sort"

	"disasterscope/domain/table"
	"disasterscope/internal/errors"
)

// GroupCount pairs one distinct category value with its row count
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FilterEquals returns the rows whose cell in the named column equals value
// exactly (case-sensitive). On an absent column it returns an empty table
// and the COLUMN_MISSING signal.
func FilterEquals(t table.Table, column, value string) (table.Table, error) {
	col, ok := t.Column(column)
	if !ok {
		return t.Select(nil), errors.ColumnMissing(column)
	}
	var rows []int
	for i, cell := range col.Cells {
		if !cell.Null && cell.String() == value {
			rows = append(rows, i)
		}
	}
	return t.Select(rows), nil
}

// CountByGroup counts rows per distinct value of the named column, keys
// sorted ascending. Null cells count under the empty key. Counts always sum
// to the table's row count. Absent column returns an empty result and the
// COLUMN_MISSING signal.
func CountByGroup(t table.Table, column string) ([]GroupCount, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, errors.ColumnMissing(column)
	}
	freq := make(map[string]int)
	for _, cell := range col.Cells {
		freq[cell.String()]++
	}
	counts := make([]GroupCount, 0, len(freq))
	for k, n := range freq {
		counts = append(counts, GroupCount{Key: k, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Key < counts[j].Key })
	return counts, nil
}

// SortByCountDesc returns a copy of counts ordered by descending count,
// ties broken by key, the order bar and donut charts draw categories in
func SortByCountDesc(counts []GroupCount) []GroupCount {
	out := make([]GroupCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Distinct lists the distinct non-null values of the named column in
// first-seen row order. Absent column returns the COLUMN_MISSING signal.
func Distinct(t table.Table, column string) ([]string, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, errors.ColumnMissing(column)
	}
	seen := make(map[string]bool)
	var values []string
	for _, cell := range col.Cells {
		if cell.Null {
			continue
		}
		v := cell.String()
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}
