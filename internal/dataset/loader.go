package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Loader reads CSV sources from the local filesystem or over HTTP.
type Loader struct {
	client *resty.Client
}

// NewLoader creates a loader with the HTTP client configured the same
// way for every source.
func NewLoader() *Loader {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &Loader{client: client}
}

// readSource fetches the raw bytes of a CSV source. A source starting
// with http:// or https:// is fetched over the network; anything else
// is treated as a local path.
func (l *Loader) readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := l.client.R().SetContext(ctx).Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.StatusCode() == 404 {
			return nil, fmt.Errorf("fetch %s: %w", source, ErrNotFound)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", source, resp.StatusCode())
		}
		return resp.Body(), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", source, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// readCSV parses a CSV payload into a header row and data records.
// Column names are trimmed of surrounding whitespace.
func readCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // sources have ragged rows on occasion

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("csv has no data rows: %w", ErrMalformed)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}
	return header, records[1:], nil
}

// columnIndex maps required column names to their positions, reporting
// ErrMalformed if any are missing.
func columnIndex(header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", name, ErrMalformed)
		}
	}
	return idx, nil
}

// field returns record[i] trimmed, or "" when the record is too short.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
