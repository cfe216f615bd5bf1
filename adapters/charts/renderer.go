// Package charts renders PNG chart images from aggregated table data using
// go-chart. Every renderer is a pure function of its input: bytes out,
// nothing mutated, no shared state between renders.
package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"disasterscope/internal/aggregate"
	"disasterscope/internal/errors"
)

// palette is the fixed qualitative palette, cycled when categories exceed it
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

// paletteColor cycles the palette by index
func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// Renderer produces the chart images for one pipeline run
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer with default dimensions
func NewRenderer() *Renderer {
	return &Renderer{Width: 900, Height: 600}
}

// CategoryBar renders a bar chart of per-category counts, one palette color
// per category. A single category renders fine; empty input is an error the
// caller downgrades to a notice.
func (r *Renderer) CategoryBar(counts []aggregate.GroupCount, title string) ([]byte, error) {
	if len(counts) == 0 {
		return nil, errors.RenderFailed("bar", fmt.Errorf("no categories to draw"))
	}

	bars := make([]chart.Value, len(counts))
	for i, gc := range counts {
		bars[i] = chart.Value{
			Label: gc.Key,
			Value: float64(gc.Count),
			Style: chart.Style{
				FillColor:   paletteColor(i),
				StrokeColor: paletteColor(i),
			},
		}
	}

	ch := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth(r.Width, len(bars)),
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name: "Disaster Count",
			// Bars are whole counts; keep the axis anchored at zero
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount(counts)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.RenderFailed("bar", err)
	}
	return buf.Bytes(), nil
}

// Donut renders category proportions as a donut chart with percentage
// labels. go-chart punches the center disc out at roughly 60% of the pie
// radius, matching the intended style.
func (r *Renderer) Donut(counts []aggregate.GroupCount, title string) ([]byte, error) {
	if len(counts) == 0 {
		return nil, errors.RenderFailed("donut", fmt.Errorf("no categories to draw"))
	}

	total := 0
	for _, gc := range counts {
		total += gc.Count
	}
	if total == 0 {
		return nil, errors.RenderFailed("donut", fmt.Errorf("all category counts are zero"))
	}

	values := make([]chart.Value, len(counts))
	for i, gc := range counts {
		pct := 100 * float64(gc.Count) / float64(total)
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", gc.Key, pct),
			Value: float64(gc.Count),
			Style: chart.Style{
				FillColor:   paletteColor(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		}
	}

	ch := chart.DonutChart{
		Title:  title,
		Width:  r.Height, // square canvas
		Height: r.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.RenderFailed("donut", err)
	}
	return buf.Bytes(), nil
}

func barWidth(chartWidth, bars int) int {
	w := (chartWidth - 100) / (bars + 1)
	if w > 80 {
		w = 80
	}
	if w < 8 {
		w = 8
	}
	return w
}

func maxCount(counts []aggregate.GroupCount) float64 {
	max := 0
	for _, gc := range counts {
		if gc.Count > max {
			max = gc.Count
		}
	}
	if max == 0 {
		return 1
	}
	return float64(max)
}
