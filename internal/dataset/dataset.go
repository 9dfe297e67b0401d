package dataset

import (
	"errors"
	"time"
)

// Error kinds reported by the loaders. Both are fatal at startup:
// the service does not serve a partial dashboard.
var (
	// ErrNotFound indicates the backing file or URL is absent.
	ErrNotFound = errors.New("dataset source not found")

	// ErrMalformed indicates required columns are missing or no row
	// survived coercion.
	ErrMalformed = errors.New("dataset malformed")
)

// IrisRow is one iris measurement record.
type IrisRow struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Species     string
}

// Dim returns the named measurement, or 0 for an unknown name.
func (r IrisRow) Dim(name string) float64 {
	switch name {
	case "SepalLength":
		return r.SepalLength
	case "SepalWidth":
		return r.SepalWidth
	case "PetalLength":
		return r.PetalLength
	case "PetalWidth":
		return r.PetalWidth
	}
	return 0
}

// IrisTable holds the loaded iris dataset. Immutable after load.
type IrisTable struct {
	Rows    []IrisRow
	Species []string // distinct species names, sorted
}

// QuakeRow is one earthquake event record.
type QuakeRow struct {
	Time      time.Time
	Year      int
	Latitude  float64
	Longitude float64
	Magnitude float64
}

// QuakeTable holds the loaded earthquake dataset, sorted by time.
// Immutable after load.
type QuakeTable struct {
	Rows    []QuakeRow
	Dropped int // rows discarded during coercion
}

// YearRange returns the inclusive year extent of the table.
func (t QuakeTable) YearRange() (int, int) {
	if len(t.Rows) == 0 {
		return 0, 0
	}
	return t.Rows[0].Year, t.Rows[len(t.Rows)-1].Year
}

// IndexRow is one trading-day record of a price index.
type IndexRow struct {
	Date      time.Time
	Value     float64
	MovingAvg float64 // 1-year moving average, supplied by the source
}

// IndexTable holds the loaded price index dataset, sorted by date.
// Immutable after load.
type IndexTable struct {
	Rows    []IndexRow
	Dropped int
}

// DateRange returns the inclusive date extent of the table.
func (t IndexTable) DateRange() (time.Time, time.Time) {
	if len(t.Rows) == 0 {
		return time.Time{}, time.Time{}
	}
	return t.Rows[0].Date, t.Rows[len(t.Rows)-1].Date
}
