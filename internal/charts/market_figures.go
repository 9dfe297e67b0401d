package charts

import (
	"fmt"

	"plotdash/internal/pipeline"
)

// MarketFigure builds the difference area chart: the moving average as
// baseline, a bullish band where price runs above it, a bearish band
// below, and the price line on top. The bands ride a shared stack whose
// invisible base sits at the lower bound, so the bearish delta fills
// [lower, MA] and the bullish delta fills [MA, upper] rather than
// painting down to zero. Trace order matters for the fills.
func MarketFigure(view pipeline.MarketView, theme Theme) Figure {
	fig := Figure{
		ID:     "chart-market",
		Title:  "Market Sentiment vs 1-Year Moving Average",
		XAxis:  Axis{Title: "Date"},
		YAxis:  Axis{Title: "Index Level", Min: view.YMin, Max: view.YMax},
		Height: 520,
	}
	if len(view.Rows) == 0 {
		fig.Notice = view.Notice
		return fig
	}

	n := len(view.Rows)
	labels := make([]string, n)
	price := make([]float64, n)
	ma := make([]float64, n)
	base := make([]float64, n)
	bearish := make([]float64, n)
	bullish := make([]float64, n)
	for i, row := range view.Rows {
		labels[i] = row.Date.Format("2006-01-02")
		price[i] = row.Value
		ma[i] = row.MovingAvg
		// Stacked deltas: base + bearish reaches the moving average,
		// base + bearish + bullish reaches the upper bound.
		base[i] = view.Lower[i]
		bearish[i] = row.MovingAvg - view.Lower[i]
		bullish[i] = view.Upper[i] - row.MovingAvg
	}

	const band = "band"
	fig.Traces = []Trace{
		{Name: "1y Moving Average", Kind: KindLine, Labels: labels, Y: ma, Color: theme.Text, Width: 1.5},
		{Kind: KindLine, Labels: labels, Y: base, Stack: band, Color: "rgba(0,0,0,0)"},
		{Name: "Bearish", Kind: KindLine, Labels: labels, Y: bearish, Stack: band, Fill: true, FillColor: theme.Bearish, Color: theme.Bearish, Width: 0.1},
		{Name: "Bullish", Kind: KindLine, Labels: labels, Y: bullish, Stack: band, Fill: true, FillColor: theme.Bullish, Color: theme.Bullish, Width: 0.1},
		{Name: "Index", Kind: KindLine, Labels: labels, Y: price, Color: theme.PriceLine, Width: 1},
	}
	fig.Subtitle = fmt.Sprintf("%s to %s, %d trading days",
		view.DateStart.Format("2006-01-02"), view.DateEnd.Format("2006-01-02"), view.Stats.Count)
	return fig
}
