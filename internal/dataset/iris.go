package dataset

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"plotdash/internal/logger"
)

var irisColumns = []string{"SepalLength", "SepalWidth", "PetalLength", "PetalWidth", "Name"}

// LoadIris loads and validates the iris measurement dataset.
func (l *Loader) LoadIris(ctx context.Context, source string) (IrisTable, error) {
	data, err := l.readSource(ctx, source)
	if err != nil {
		return IrisTable{}, err
	}

	header, records, err := readCSV(data)
	if err != nil {
		return IrisTable{}, err
	}

	idx, err := columnIndex(header, irisColumns)
	if err != nil {
		return IrisTable{}, err
	}

	var table IrisTable
	seen := make(map[string]bool)
	dropped := 0
	for _, rec := range records {
		row, ok := parseIrisRow(rec, idx)
		if !ok {
			dropped++
			continue
		}
		table.Rows = append(table.Rows, row)
		if !seen[row.Species] {
			seen[row.Species] = true
			table.Species = append(table.Species, row.Species)
		}
	}

	if len(table.Rows) == 0 {
		return IrisTable{}, fmt.Errorf("no usable iris rows: %w", ErrMalformed)
	}
	if dropped > 0 {
		logger.Warnf("iris: dropped %d unparseable rows", dropped)
	}

	sort.Strings(table.Species)
	return table, nil
}

func parseIrisRow(rec []string, idx map[string]int) (IrisRow, bool) {
	var row IrisRow
	var err error

	if row.SepalLength, err = strconv.ParseFloat(field(rec, idx["SepalLength"]), 64); err != nil {
		return IrisRow{}, false
	}
	if row.SepalWidth, err = strconv.ParseFloat(field(rec, idx["SepalWidth"]), 64); err != nil {
		return IrisRow{}, false
	}
	if row.PetalLength, err = strconv.ParseFloat(field(rec, idx["PetalLength"]), 64); err != nil {
		return IrisRow{}, false
	}
	if row.PetalWidth, err = strconv.ParseFloat(field(rec, idx["PetalWidth"]), 64); err != nil {
		return IrisRow{}, false
	}
	row.Species = field(rec, idx["Name"])
	if row.Species == "" {
		return IrisRow{}, false
	}
	return row, true
}
