package dataset

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"plotdash/internal/logger"
)

var marketTimeFormats = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
}

// LoadIndex loads a price index CSV. The source maps columns by
// position rather than name: date, closing value, 1-year moving
// average. Rows with missing or non-numeric values are dropped.
func (l *Loader) LoadIndex(ctx context.Context, source string) (IndexTable, error) {
	data, err := l.readSource(ctx, source)
	if err != nil {
		return IndexTable{}, err
	}

	header, records, err := readCSV(data)
	if err != nil {
		return IndexTable{}, err
	}
	if len(header) < 3 {
		return IndexTable{}, fmt.Errorf("price index csv needs at least 3 columns, got %d: %w", len(header), ErrMalformed)
	}

	var table IndexTable
	for _, rec := range records {
		row, ok := parseIndexRow(rec)
		if !ok {
			table.Dropped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return IndexTable{}, fmt.Errorf("no usable price index rows: %w", ErrMalformed)
	}
	if table.Dropped > 0 {
		logger.Warnf("market: dropped %d rows with unparseable fields", table.Dropped)
	}

	sort.Slice(table.Rows, func(i, j int) bool {
		return table.Rows[i].Date.Before(table.Rows[j].Date)
	})
	return table, nil
}

func parseIndexRow(rec []string) (IndexRow, bool) {
	if len(rec) < 3 {
		return IndexRow{}, false
	}

	var date time.Time
	parsed := false
	for _, layout := range marketTimeFormats {
		if t, err := time.Parse(layout, strings.TrimSpace(rec[0])); err == nil {
			date = t.UTC()
			parsed = true
			break
		}
	}
	if !parsed {
		return IndexRow{}, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return IndexRow{}, false
	}
	ma, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return IndexRow{}, false
	}

	return IndexRow{Date: date, Value: value, MovingAvg: ma}, true
}
