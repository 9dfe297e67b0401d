package dataset

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"plotdash/internal/logger"
)

var quakeColumns = []string{"Date", "Latitude", "Longitude", "Magnitude"}

// quakeTimeFormats covers the mixed timestamp styles found in the
// earthquake catalog: plain US dates for older records and ISO-ish
// timestamps for newer ones.
var quakeTimeFormats = []string{
	"01/02/2006",
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
}

// LoadQuakes loads the earthquake catalog, dropping rows whose
// timestamp cannot be coerced, and sorts the result by event time.
func (l *Loader) LoadQuakes(ctx context.Context, source string) (QuakeTable, error) {
	data, err := l.readSource(ctx, source)
	if err != nil {
		return QuakeTable{}, err
	}

	header, records, err := readCSV(data)
	if err != nil {
		return QuakeTable{}, err
	}

	idx, err := columnIndex(header, quakeColumns)
	if err != nil {
		return QuakeTable{}, err
	}

	var table QuakeTable
	for _, rec := range records {
		row, ok := parseQuakeRow(rec, idx)
		if !ok {
			table.Dropped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return QuakeTable{}, fmt.Errorf("no usable earthquake rows: %w", ErrMalformed)
	}
	if table.Dropped > 0 {
		logger.Warnf("earthquakes: dropped %d rows with unparseable fields", table.Dropped)
	}

	sort.Slice(table.Rows, func(i, j int) bool {
		return table.Rows[i].Time.Before(table.Rows[j].Time)
	})
	return table, nil
}

func parseQuakeRow(rec []string, idx map[string]int) (QuakeRow, bool) {
	t, ok := parseQuakeTime(field(rec, idx["Date"]))
	if !ok {
		return QuakeRow{}, false
	}

	lat, err := strconv.ParseFloat(field(rec, idx["Latitude"]), 64)
	if err != nil {
		return QuakeRow{}, false
	}
	lon, err := strconv.ParseFloat(field(rec, idx["Longitude"]), 64)
	if err != nil {
		return QuakeRow{}, false
	}
	mag, err := strconv.ParseFloat(field(rec, idx["Magnitude"]), 64)
	if err != nil {
		return QuakeRow{}, false
	}

	return QuakeRow{
		Time:      t,
		Year:      t.Year(),
		Latitude:  lat,
		Longitude: lon,
		Magnitude: mag,
	}, true
}

func parseQuakeTime(s string) (time.Time, bool) {
	for _, layout := range quakeTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
