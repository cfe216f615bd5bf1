package app

import (
	"time"

	"disasterscope/domain/core"
	"disasterscope/domain/table"
	"disasterscope/internal/aggregate"
	"disasterscope/internal/inspect"
)

// Grid is a display-ready table section: headers plus rendered rows
type Grid struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewGrid materializes a table for display
func NewGrid(t table.Table) Grid {
	return Grid{Headers: t.Names(), Rows: t.Records()}
}

// ChartSet holds the rendered chart images for one run. A nil image means
// the chart's required column was absent and a notice explains why.
type ChartSet struct {
	CountryBar        []byte `json:"country_bar,omitempty"`
	DisasterDonut     []byte `json:"disaster_donut,omitempty"`
	LocationHistogram []byte `json:"location_histogram,omitempty"`
}

// Report is the complete output of one pipeline run, sections in display
// order. Everything is scoped to the run: nothing persists across uploads.
type Report struct {
	RunID    core.RunID `json:"run_id"`
	Filename string     `json:"filename"`

	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`

	Preview    Grid                    `json:"preview"`
	Summary    []inspect.ColumnSummary `json:"summary"`
	TypeInfo   []inspect.Info          `json:"type_info"`
	NullCounts []inspect.NullCount     `json:"null_counts"`

	Cleaned         Grid     `json:"cleaned"`
	UniqueCountries []string `json:"unique_countries,omitempty"`
	UniqueDisasters []string `json:"unique_disasters,omitempty"`

	Sorted     Grid `json:"sorted"`
	WithLength Grid `json:"with_length"`
	Encoded    Grid `json:"encoded"`

	FilteredAsia  Grid                   `json:"filtered_asia"`
	CountryCounts []aggregate.GroupCount `json:"country_counts,omitempty"`

	Charts ChartSet `json:"charts"`

	// Notices collect every non-fatal degradation (absent optional columns)
	Notices []string `json:"notices,omitempty"`

	StartedAt core.Timestamp `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}
