package pipeline

import (
	"sort"

	"plotdash/internal/dataset"
)

// Thresholds for the momentum panel's accent markers.
const (
	momentumPeakDistance  = 10
	momentumPeakThreshold = 0.5
)

// FindPeaks returns the indices of local maxima of y, at least
// minDistance samples apart. When two candidates are closer than the
// distance, the taller one wins. Indices come back in ascending order.
func FindPeaks(y []float64, minDistance int) []int {
	if minDistance < 1 {
		minDistance = 1
	}

	var candidates []int
	for i := 1; i < len(y)-1; i++ {
		if y[i] > y[i-1] && y[i] >= y[i+1] {
			candidates = append(candidates, i)
		}
	}

	// Tallest first, then suppress neighbors within minDistance.
	sort.Slice(candidates, func(a, b int) bool {
		return y[candidates[a]] > y[candidates[b]]
	})

	var kept []int
	for _, c := range candidates {
		ok := true
		for _, k := range kept {
			if abs(c-k) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}

	sort.Ints(kept)
	return kept
}

// MomentumPeaks locates the significant peaks of the momentum series:
// local maxima spaced by the panel's distance, above its threshold.
func MomentumPeaks(table dataset.MomentumTable) []int {
	peaks := FindPeaks(table.Y, momentumPeakDistance)
	var significant []int
	for _, i := range peaks {
		if table.Y[i] > momentumPeakThreshold {
			significant = append(significant, i)
		}
	}
	return significant
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
