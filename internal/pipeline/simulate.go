package pipeline

import "math"

// Widget ranges and defaults for the simulation cockpit.
const (
	SimAmplitudeMin, SimAmplitudeMax, SimAmplitudeDefault = 1.0, 10.0, 5.0
	SimFrequencyMin, SimFrequencyMax, SimFrequencyDefault = 1.0, 20.0, 10.0
	SimDecayMin, SimDecayMax, SimDecayDefault             = 0.0, 1.0, 0.2

	// SimSamples points are evaluated over [0, SimDomainMax].
	SimSamples   = 500
	SimDomainMax = 10.0
)

// SimParams are the simulation dashboard's widget values.
type SimParams struct {
	Amplitude float64
	Frequency float64
	Decay     float64
}

// SimView is the evaluated damped-cosine curve.
type SimView struct {
	T      []float64
	Y      []float64
	Params SimParams // effective values after clamping
	Stats  Stats
}

// Simulate evaluates y = A * exp(-decay*t) * cos(freq*t) at SimSamples
// evenly spaced points over [0, SimDomainMax], endpoints included.
// Out-of-range or non-finite parameters are clamped to the widget
// ranges (non-finite to the defaults), so the curve is always
// renderable and deterministic per parameter triple.
func Simulate(p SimParams) SimView {
	p.Amplitude = clampParam(p.Amplitude, SimAmplitudeMin, SimAmplitudeMax, SimAmplitudeDefault)
	p.Frequency = clampParam(p.Frequency, SimFrequencyMin, SimFrequencyMax, SimFrequencyDefault)
	p.Decay = clampParam(p.Decay, SimDecayMin, SimDecayMax, SimDecayDefault)

	view := SimView{
		T:      make([]float64, SimSamples),
		Y:      make([]float64, SimSamples),
		Params: p,
	}
	for i := 0; i < SimSamples; i++ {
		t := SimDomainMax * float64(i) / float64(SimSamples-1)
		view.T[i] = t
		view.Y[i] = p.Amplitude * math.Exp(-p.Decay*t) * math.Cos(p.Frequency*t)
	}
	view.Stats = Summarize(view.Y)
	return view
}

func clampParam(v, min, max, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
