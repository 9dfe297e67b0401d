package charts

import (
	"fmt"

	"plotdash/internal/pipeline"
)

const irisHistogramBins = 10

// IrisMatrixFigures builds the 4x4 scatter matrix: per-species
// histograms on the diagonal, per-species scatter everywhere else.
// Figures come back row-major, 16 per call.
func IrisMatrixFigures(view pipeline.IrisView, theme Theme) []Figure {
	dims := pipeline.IrisDimensions
	figures := make([]Figure, 0, len(dims)*len(dims))

	for i, dimY := range dims {
		for j, dimX := range dims {
			id := fmt.Sprintf("chart-iris-%d-%d", i, j)
			if i == j {
				figures = append(figures, irisHistogramCell(view, theme, id, dimX))
			} else {
				figures = append(figures, irisScatterCell(view, theme, id, dimX, dimY))
			}
		}
	}
	return figures
}

// IrisInsight renders the strongest-correlation annotation shown above
// the matrix.
func IrisInsight(view pipeline.IrisView) string {
	if len(view.Rows) == 0 {
		return view.Notice
	}
	pair := pipeline.StrongestCorrelation(view)
	return fmt.Sprintf("Strongest dimension correlation: %s vs %s (r = %.2f)", pair.A, pair.B, pair.R)
}

func irisScatterCell(view pipeline.IrisView, theme Theme, id, dimX, dimY string) Figure {
	fig := Figure{
		ID:     id,
		Title:  fmt.Sprintf("%s vs %s", prettyDim(dimX), prettyDim(dimY)),
		XAxis:  Axis{Title: prettyDim(dimX)},
		YAxis:  Axis{Title: prettyDim(dimY)},
		Height: 260,
	}
	if len(view.Rows) == 0 {
		fig.Notice = view.Notice
		return fig
	}

	for s, species := range view.Species {
		trace := Trace{
			Name:  species,
			Kind:  KindScatter,
			Color: theme.SeriesColor(s),
		}
		for _, row := range view.Rows {
			if row.Species != species {
				continue
			}
			trace.X = append(trace.X, row.Dim(dimX))
			trace.Y = append(trace.Y, row.Dim(dimY))
		}
		fig.Traces = append(fig.Traces, trace)
	}
	return fig
}

func irisHistogramCell(view pipeline.IrisView, theme Theme, id, dim string) Figure {
	fig := Figure{
		ID:     id,
		Title:  fmt.Sprintf("%s distribution", prettyDim(dim)),
		XAxis:  Axis{Title: prettyDim(dim)},
		YAxis:  Axis{Title: "Count"},
		Height: 260,
	}
	if len(view.Rows) == 0 {
		fig.Notice = view.Notice
		return fig
	}

	// Shared bins across species so the bars line up.
	all := view.Dimension(dim)
	labels, _ := binValues(all, irisHistogramBins)

	for s, species := range view.Species {
		var values []float64
		for _, row := range view.Rows {
			if row.Species == species {
				values = append(values, row.Dim(dim))
			}
		}
		fig.Traces = append(fig.Traces, Trace{
			Name:   species,
			Kind:   KindBar,
			Labels: labels,
			Y:      binInto(values, all, irisHistogramBins),
			Color:  theme.SeriesColor(s),
		})
	}
	return fig
}

// binInto counts values into n bins whose extent comes from the
// reference vector, keeping species histograms on a common axis.
func binInto(values, reference []float64, n int) []float64 {
	min, max := reference[0], reference[0]
	for _, v := range reference {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	counts := make([]float64, n)
	if max == min {
		counts[0] = float64(len(values))
		return counts[:1]
	}

	width := (max - min) / float64(n)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return counts
}

func prettyDim(name string) string {
	switch name {
	case "SepalLength":
		return "Sepal Length"
	case "SepalWidth":
		return "Sepal Width"
	case "PetalLength":
		return "Petal Length"
	case "PetalWidth":
		return "Petal Width"
	}
	return name
}
