package pipeline

import (
	"fmt"

	"plotdash/internal/dataset"
)

// QuakeParams are the earthquake dashboard's widget values: an
// inclusive year range.
type QuakeParams struct {
	YearMin int
	YearMax int
}

// QuakeView is the derived earthquake view for one recompute.
type QuakeView struct {
	Rows []dataset.QuakeRow

	// Effective range after validation; may differ from the request
	// when the pair was invalid and the full extent was substituted.
	YearMin int
	YearMax int

	Stats     Stats
	Strongest *dataset.QuakeRow // event with the highest magnitude, nil when empty
	Notice    string
}

// FilterQuakes slices the catalog to the requested year range,
// inclusive on both ends. An invalid pair (min >= max) degrades to the
// dataset's full extent; an empty result degrades to a no-data view.
func FilterQuakes(table dataset.QuakeTable, p QuakeParams) QuakeView {
	lo, hi := table.YearRange()
	if len(table.Rows) == 0 {
		return QuakeView{Notice: NoticeNoData}
	}

	yearMin, yearMax := p.YearMin, p.YearMax
	if yearMin >= yearMax {
		yearMin, yearMax = lo, hi
	}

	view := QuakeView{YearMin: yearMin, YearMax: yearMax}
	for _, row := range table.Rows {
		if row.Year < yearMin || row.Year > yearMax {
			continue
		}
		view.Rows = append(view.Rows, row)
	}

	if len(view.Rows) == 0 {
		view.Notice = NoticeNoData
		return view
	}

	mags := make([]float64, len(view.Rows))
	strongest := 0
	for i, row := range view.Rows {
		mags[i] = row.Magnitude
		if row.Magnitude > view.Rows[strongest].Magnitude {
			strongest = i
		}
	}
	view.Stats = Summarize(mags)
	view.Strongest = &view.Rows[strongest]
	return view
}

// Headline renders the strongest-event annotation, e.g.
// "Strongest recorded: M 7.2 (1960)".
func (v QuakeView) Headline() string {
	if v.Strongest == nil {
		return v.Notice
	}
	return fmt.Sprintf("Strongest recorded: M %.1f (%d)", v.Strongest.Magnitude, v.Strongest.Year)
}
