package ports

import (
	"disasterscope/internal/aggregate"
)

// ChartRenderer produces chart images from aggregated data. Renderers are
// pure: bytes out, no side effects, so the charting library stays an
// external collaborator that can be swapped without touching the pipeline.
type ChartRenderer interface {
	// CategoryBar draws per-category counts, one palette color per category
	CategoryBar(counts []aggregate.GroupCount, title string) ([]byte, error)
	// Donut draws category proportions with percentage labels
	Donut(counts []aggregate.GroupCount, title string) ([]byte, error)
	// HistogramDensity draws a fixed-bin histogram overlaid with a smoothed
	// density curve on a shared axis
	HistogramDensity(values []float64, title, xLabel string) ([]byte, error)
}
