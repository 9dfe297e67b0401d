package charts

import (
	"fmt"

	"plotdash/internal/dataset"
	"plotdash/internal/pipeline"
)

// SimulationFigure builds the damped-cosine response curve.
func SimulationFigure(view pipeline.SimView, theme Theme) Figure {
	fig := Figure{
		ID:    "chart-simulation",
		Title: "Damped Oscillation Response",
		Subtitle: fmt.Sprintf("A=%.1f  f=%.1f  decay=%.2f", view.Params.Amplitude,
			view.Params.Frequency, view.Params.Decay),
		XAxis:  Axis{Title: "t"},
		YAxis:  Axis{Title: "y"},
		Height: 520,
	}

	fig.Traces = []Trace{{
		Name:      "Response",
		Kind:      KindLine,
		X:         view.T,
		Y:         view.Y,
		Color:     theme.Main,
		Fill:      true,
		FillColor: "rgba(60, 47, 128, 0.1)",
		Width:     2,
	}}
	return fig
}

// MomentumFigure builds the startup-seeded momentum panel: the
// smoothed series with its significant peaks as accent markers.
func MomentumFigure(table dataset.MomentumTable, peaks []int, theme Theme) Figure {
	fig := Figure{
		ID:     "chart-momentum",
		Title:  "Match Momentum Analysis",
		XAxis:  Axis{Title: "Points"},
		YAxis:  Axis{Title: "Momentum Index"},
		Height: 360,
	}
	if len(table.Y) == 0 {
		fig.Notice = pipeline.NoticeNoData
		return fig
	}

	fig.Traces = append(fig.Traces, Trace{
		Name:      "Momentum",
		Kind:      KindLine,
		X:         table.X,
		Y:         table.Y,
		Color:     theme.Main,
		Fill:      true,
		FillColor: "rgba(60, 47, 128, 0.15)",
		Width:     1.2,
	})

	if len(peaks) > 0 {
		marker := Trace{Name: "Peaks", Kind: KindScatter, Color: theme.Accent}
		for _, i := range peaks {
			marker.X = append(marker.X, table.X[i])
			marker.Y = append(marker.Y, table.Y[i])
			marker.Sizes = append(marker.Sizes, 8)
		}
		fig.Traces = append(fig.Traces, marker)
		fig.Subtitle = fmt.Sprintf("%d significant peaks", len(peaks))
	}
	return fig
}
