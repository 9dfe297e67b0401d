package dataset

import "math/rand"

// momentumSmoothWindow is the moving-average width applied to the raw
// noise, and momentumScale the final amplitude factor.
const (
	momentumSmoothWindow = 10
	momentumScale        = 3.0
	momentumNoiseStd     = 0.1
	momentumDomainMax    = 300.0
)

// MomentumTable is the synthetic match-momentum series. It is generated
// once at startup from a fixed seed; after that the table is immutable
// and every recompute sees the same values.
type MomentumTable struct {
	X    []float64
	Y    []float64
	Seed int64
}

// NewMomentumTable generates n smoothed Gaussian-noise samples over
// [0, 300]. The same seed always yields the same series.
func NewMomentumTable(seed int64, n int) MomentumTable {
	if n < 2 {
		n = 2
	}
	rng := rand.New(rand.NewSource(seed))

	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rng.NormFloat64() * momentumNoiseStd
	}
	smoothed := movingAverageSame(noise, momentumSmoothWindow)

	table := MomentumTable{
		X:    make([]float64, n),
		Y:    make([]float64, n),
		Seed: seed,
	}
	for i := 0; i < n; i++ {
		table.X[i] = momentumDomainMax * float64(i) / float64(n-1)
		table.Y[i] = smoothed[i] * momentumScale
	}
	return table
}

// movingAverageSame is a centered moving average: the discrete
// convolution of values with a uniform kernel of the given width,
// trimmed back to len(values) around the center.
func movingAverageSame(values []float64, width int) []float64 {
	n := len(values)
	if width <= 1 || n == 0 {
		out := make([]float64, n)
		copy(out, values)
		return out
	}

	full := make([]float64, n+width-1)
	for m := range full {
		lo := m - width + 1
		if lo < 0 {
			lo = 0
		}
		hi := m
		if hi > n-1 {
			hi = n - 1
		}
		sum := 0.0
		for k := lo; k <= hi; k++ {
			sum += values[k]
		}
		full[m] = sum / float64(width)
	}

	offset := (width - 1) / 2
	return full[offset : offset+n]
}
