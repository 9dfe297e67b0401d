package server

import (
	"net/url"
	"strconv"
	"time"

	"plotdash/internal/pipeline"
)

// Query parameter parsing. Absent or unparseable values map to the
// zero values the pipeline already treats as "use the full extent" or
// "use the default", so a broken widget can degrade a single control
// but never fail the recompute.

func parseIrisParams(q url.Values) pipeline.IrisParams {
	return pipeline.IrisParams{Species: q["species"]}
}

func parseQuakeParams(q url.Values) pipeline.QuakeParams {
	return pipeline.QuakeParams{
		YearMin: parseInt(q.Get("year_min")),
		YearMax: parseInt(q.Get("year_max")),
	}
}

func parseMarketParams(q url.Values) pipeline.MarketParams {
	return pipeline.MarketParams{
		DateStart: parseDate(q.Get("date_start")),
		DateEnd:   parseDate(q.Get("date_end")),
		YMin:      parseFloatPtr(q.Get("y_min")),
		YMax:      parseFloatPtr(q.Get("y_max")),
	}
}

func parseSimParams(q url.Values) pipeline.SimParams {
	return pipeline.SimParams{
		Amplitude: parseFloatOr(q.Get("amplitude"), pipeline.SimAmplitudeDefault),
		Frequency: parseFloatOr(q.Get("frequency"), pipeline.SimFrequencyDefault),
		Decay:     parseFloatOr(q.Get("decay"), pipeline.SimDecayDefault),
	}
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseFloatPtr returns nil for absent or invalid values, which the
// pipeline reads as "no axis override".
func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
