package pipeline

import (
	"time"

	"plotdash/internal/dataset"
)

// MarketParams are the market dashboard's widget values. YMin/YMax are
// nil when the numeric inputs are empty -- "no override, autoscale".
type MarketParams struct {
	DateStart time.Time
	DateEnd   time.Time
	YMin      *float64
	YMax      *float64
}

// MarketView is the derived market view: the date-sliced rows plus the
// fill-boundary series for the difference area chart.
type MarketView struct {
	Rows  []dataset.IndexRow
	Upper []float64 // max(value, moving average) per row, bullish fill bound
	Lower []float64 // min(value, moving average) per row, bearish fill bound

	DateStart time.Time
	DateEnd   time.Time

	// Explicit Y-axis bounds; nil means autoscale. Only set when the
	// requested pair was valid (min < max).
	YMin *float64
	YMax *float64

	Stats  Stats
	Notice string
}

// FilterIndex slices the price index to the requested date range,
// inclusive on both ends. A zero or inverted date pair degrades to the
// dataset's full extent; an invalid Y pair is dropped in favor of
// autoscaling.
func FilterIndex(table dataset.IndexTable, p MarketParams) MarketView {
	if len(table.Rows) == 0 {
		return MarketView{Notice: NoticeNoData}
	}

	start, end := p.DateStart, p.DateEnd
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		start, end = table.DateRange()
	}

	view := MarketView{DateStart: start, DateEnd: end}
	for _, row := range table.Rows {
		if row.Date.Before(start) || row.Date.After(end) {
			continue
		}
		view.Rows = append(view.Rows, row)
		view.Upper = append(view.Upper, maxFloat(row.Value, row.MovingAvg))
		view.Lower = append(view.Lower, minFloat(row.Value, row.MovingAvg))
	}

	if len(view.Rows) == 0 {
		view.Notice = NoticeNoData
		return view
	}

	if p.YMin != nil && p.YMax != nil && *p.YMin < *p.YMax {
		view.YMin = p.YMin
		view.YMax = p.YMax
	}

	values := make([]float64, len(view.Rows))
	for i, row := range view.Rows {
		values[i] = row.Value
	}
	view.Stats = Summarize(values)
	return view
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
