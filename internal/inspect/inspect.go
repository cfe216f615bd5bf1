// Package inspect computes read-only descriptive views of a table:
// per-column summary statistics and null counts. Nothing here mutates
// the table.
package inspect

import (
	"github.com/montanaflynn/stats"

	"disasterscope/domain/table"
)

// NumericSummary holds descriptive statistics for a numeric column
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// TextSummary holds descriptive statistics for a text column
type TextSummary struct {
	Unique   int    `json:"unique"`
	Mode     string `json:"mode"`
	ModeFreq int    `json:"mode_freq"`
}

// ColumnSummary describes one column. Exactly one of Numeric/Text is set
// when the column has any non-null cells; both are nil on an empty column,
// where the statistics are undefined.
type ColumnSummary struct {
	Name    string          `json:"name"`
	Kind    table.Kind      `json:"kind"`
	Count   int             `json:"count"` // non-null cells
	Numeric *NumericSummary `json:"numeric,omitempty"`
	Text    *TextSummary    `json:"text,omitempty"`
}

// NullCount pairs a column name with its missing-cell count,
// preserving column order
type NullCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Describe computes a summary for every column. Zero-row tables report
// counts of zero with no statistics.
func Describe(t table.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, t.NumCols())
	for _, col := range t.Columns() {
		s := ColumnSummary{
			Name:  col.Name,
			Kind:  col.Kind,
			Count: col.NonNullCount(),
		}
		if s.Count > 0 {
			if col.Kind == table.KindNumeric {
				s.Numeric = describeNumeric(col.Floats())
			} else {
				s.Text = describeText(col)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func describeNumeric(vals []float64) *NumericSummary {
	data := stats.Float64Data(vals)

	mean, err := data.Mean()
	if err != nil {
		return nil
	}
	// Sample standard deviation is undefined for a single value; report 0
	std := 0.0
	if len(vals) > 1 {
		if v, err := data.StandardDeviationSample(); err == nil {
			std = v
		}
	}
	min, _ := data.Min()
	max, _ := data.Max()
	median, _ := data.Median()
	q25, _ := data.Percentile(25)
	q75, _ := data.Percentile(75)
	if len(vals) == 1 {
		// Percentile errors out on singleton data
		q25, median, q75 = vals[0], vals[0], vals[0]
	}

	return &NumericSummary{
		Mean:   mean,
		Std:    std,
		Min:    min,
		Q25:    q25,
		Median: median,
		Q75:    q75,
		Max:    max,
	}
}

func describeText(col table.Column) *TextSummary {
	freq := make(map[string]int)
	for _, cell := range col.Cells {
		if !cell.Null {
			freq[cell.String()]++
		}
	}

	mode := ""
	modeFreq := 0
	// Ties resolve to the first-seen value in row order
	seen := make(map[string]bool)
	for _, cell := range col.Cells {
		if cell.Null {
			continue
		}
		v := cell.String()
		if seen[v] {
			continue
		}
		seen[v] = true
		if freq[v] > modeFreq {
			mode = v
			modeFreq = freq[v]
		}
	}

	return &TextSummary{
		Unique:   len(freq),
		Mode:     mode,
		ModeFreq: modeFreq,
	}
}

// NullCounts reports the number of null cells per column, in column order
func NullCounts(t table.Table) []NullCount {
	counts := make([]NullCount, 0, t.NumCols())
	for _, col := range t.Columns() {
		counts = append(counts, NullCount{Name: col.Name, Count: col.NullCount()})
	}
	return counts
}

// Info pairs a column with its inferred type and non-null count, mirroring
// the dataset-info section of the report
type Info struct {
	Name    string     `json:"name"`
	Kind    table.Kind `json:"kind"`
	NonNull int        `json:"non_null"`
}

// TypeInfo reports name, inferred type, and non-null count per column
func TypeInfo(t table.Table) []Info {
	infos := make([]Info, 0, t.NumCols())
	for _, col := range t.Columns() {
		infos = append(infos, Info{Name: col.Name, Kind: col.Kind, NonNull: col.NonNullCount()})
	}
	return infos
}
