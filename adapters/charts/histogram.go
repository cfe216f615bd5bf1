package charts

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"disasterscope/internal/errors"
)

// histogramBins is the fixed bin count for the distribution chart
const histogramBins = 12

// densityGridPoints is the resolution of the smoothed density curve
const densityGridPoints = 120

// HistogramDensity renders a 12-bin histogram of values overlaid with a
// Gaussian-KDE density curve. Both share the X axis; the density draws on
// the secondary Y axis so each keeps independent scale and styling.
// Single-value and single-row inputs render without failing.
func (r *Renderer) HistogramDensity(values []float64, title, xLabel string) ([]byte, error) {
	if len(values) == 0 {
		return nil, errors.RenderFailed("histogram", fmt.Errorf("no values to draw"))
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate range: widen so binning stays well-defined
		lo -= 0.5
		hi += 0.5
	}
	// The maximum must land strictly inside the last bin; Nextafter keeps
	// that true even when the values are large and close together, where a
	// relative epsilon would round away.
	dividers := floats.Span(make([]float64, histogramBins+1), lo, hi)
	dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))
	binCounts := stat.Histogram(nil, dividers, sorted, nil)

	centers := make([]float64, histogramBins)
	for i := range centers {
		centers[i] = (dividers[i] + dividers[i+1]) / 2
	}

	histSeries := chart.HistogramSeries{
		Name: "Frequency",
		Style: chart.Style{
			FillColor:   paletteColor(3).WithAlpha(153),
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: 1,
		},
		InnerSeries: chart.ContinuousSeries{
			XValues: centers,
			YValues: binCounts,
		},
	}

	gridXs, density := kde(sorted, lo, hi)
	densitySeries := chart.ContinuousSeries{
		Name: "Density",
		Style: chart.Style{
			StrokeColor: paletteColor(1),
			StrokeWidth: 3,
		},
		YAxis:   chart.YAxisSecondary,
		XValues: gridXs,
		YValues: density,
	}

	ch := chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		Width:      r.Width,
		Height:     r.Height,
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: "Frequency"},
		YAxisSecondary: chart.YAxis{
			Name: "Density",
		},
		Series: []chart.Series{histSeries, densitySeries},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.RenderFailed("histogram", err)
	}
	return buf.Bytes(), nil
}

// kde estimates a smoothed density over [lo, hi] with a Gaussian kernel.
// Bandwidth follows Silverman's rule of thumb, falling back to 1.0 when the
// sample is constant or too small for a deviation estimate.
func kde(sorted []float64, lo, hi float64) (xs, ys []float64) {
	n := float64(len(sorted))
	std := stat.StdDev(sorted, nil)

	bw := 1.06 * std / math.Pow(n, 0.2)
	if !(bw > 0) {
		bw = 1.0
	}

	kernel := distuv.Normal{Mu: 0, Sigma: bw}

	// Extend the grid past the data range so the curve tails off visibly
	gridLo, gridHi := lo-2*bw, hi+2*bw
	xs = floats.Span(make([]float64, densityGridPoints), gridLo, gridHi)
	ys = make([]float64, len(xs))
	for i, x := range xs {
		sum := 0.0
		for _, v := range sorted {
			sum += kernel.Prob(x - v)
		}
		ys[i] = sum / n
	}
	return xs, ys
}
