package charts

import (
	"fmt"

	"plotdash/internal/pipeline"
)

const histogramBins = 30

// QuakeMapFigure builds the world scatter of events: longitude against
// latitude, symbol size scaled by magnitude.
func QuakeMapFigure(view pipeline.QuakeView, theme Theme) Figure {
	fig := Figure{
		ID:     "chart-quake-map",
		Title:  fmt.Sprintf("Global Earthquakes (%d-%d)", view.YearMin, view.YearMax),
		XAxis:  Axis{Title: "Longitude", Min: floatPtr(-180), Max: floatPtr(180)},
		YAxis:  Axis{Title: "Latitude", Min: floatPtr(-90), Max: floatPtr(90)},
		Height: 520,
	}
	if len(view.Rows) == 0 {
		fig.Notice = view.Notice
		return fig
	}

	trace := Trace{
		Name:  "Events",
		Kind:  KindScatter,
		X:     make([]float64, len(view.Rows)),
		Y:     make([]float64, len(view.Rows)),
		Sizes: make([]float64, len(view.Rows)),
		Color: theme.Main,
	}
	for i, row := range view.Rows {
		trace.X[i] = row.Longitude
		trace.Y[i] = row.Latitude
		// Magnitudes run roughly 5.5-9.5; square the normalized value
		// so the strongest events dominate visually.
		trace.Sizes[i] = 2 + (row.Magnitude-5)*(row.Magnitude-5)
	}

	fig.Traces = []Trace{trace}
	fig.Subtitle = view.Headline()
	return fig
}

// QuakeHistogramFigure builds the magnitude frequency distribution:
// equal-width bins with a mean-magnitude annotation.
func QuakeHistogramFigure(view pipeline.QuakeView, theme Theme) Figure {
	fig := Figure{
		ID:     "chart-quake-hist",
		Title:  "Magnitude Distribution",
		XAxis:  Axis{Title: "Magnitude"},
		YAxis:  Axis{Title: "Count"},
		Height: 360,
	}
	if len(view.Rows) == 0 {
		fig.Notice = view.Notice
		return fig
	}

	mags := make([]float64, len(view.Rows))
	for i, row := range view.Rows {
		mags[i] = row.Magnitude
	}
	labels, counts := binValues(mags, histogramBins)

	fig.Traces = []Trace{{
		Name:   "Frequency",
		Kind:   KindBar,
		Labels: labels,
		Y:      counts,
		Color:  "#34495E",
	}}
	fig.Subtitle = fmt.Sprintf("Mean magnitude: %.2f", view.Stats.Mean)
	return fig
}

// binValues distributes values into n equal-width bins over their full
// extent and returns bin-center labels with per-bin counts. The last
// bin is closed on both ends so the maximum lands inside it.
func binValues(values []float64, n int) ([]string, []float64) {
	if n < 1 {
		n = 1
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return []string{fmt.Sprintf("%.2f", min)}, []float64{float64(len(values))}
	}

	width := (max - min) / float64(n)
	counts := make([]float64, n)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= n {
			i = n - 1
		}
		counts[i]++
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", min+width*(float64(i)+0.5))
	}
	return labels, counts
}
