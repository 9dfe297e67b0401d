// Package pipeline holds the recompute core shared by every dashboard:
// pure functions from an immutable dataset and the latest widget values
// to a derived view plus summary statistics. Nothing here touches the
// clock, a random source, or state outside the arguments, so identical
// inputs always produce identical views.
package pipeline

// NoticeNoData is shown whenever a filter selects zero rows. The
// resulting view is still renderable: zero traces plus this notice.
const NoticeNoData = "No data in the selected range."

// Stats summarizes a numeric field of a derived view.
type Stats struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// Summarize computes count/min/max/mean over values. An empty input
// yields a zero Stats value.
func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	sum := 0.0
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(values))
	return s
}
