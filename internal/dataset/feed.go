package dataset

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"plotdash/internal/logger"
)

// FeedReader pulls recent earthquake events from a USGS Atom feed and
// merges them into a loaded catalog. The merge happens once at startup;
// feed failures are non-fatal, the table serves as loaded.
type FeedReader struct {
	parser *gofeed.Parser
}

// NewFeedReader creates a feed reader.
func NewFeedReader() *FeedReader {
	return &FeedReader{parser: gofeed.NewParser()}
}

// MergeRecent appends events parsed from the feed to the table and
// re-sorts it by time. Entries that cannot be parsed are skipped.
func (f *FeedReader) MergeRecent(ctx context.Context, table QuakeTable, feedURL string) QuakeTable {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		logger.Warn("quake feed unavailable, serving catalog as loaded", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return table
	}

	added := 0
	for _, item := range feed.Items {
		row, ok := parseFeedItem(item)
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, row)
		added++
	}

	if added > 0 {
		sort.Slice(table.Rows, func(i, j int) bool {
			return table.Rows[i].Time.Before(table.Rows[j].Time)
		})
		logger.Infof("quake feed: merged %d recent events from %s", added, feedURL)
	}
	return table
}

// parseFeedItem extracts an event from a USGS Atom entry. Titles look
// like "M 6.2 - 93 km SSW of Somewhere"; coordinates come from the
// georss:point extension as "lat lon".
func parseFeedItem(item *gofeed.Item) (QuakeRow, bool) {
	if item == nil || item.UpdatedParsed == nil {
		return QuakeRow{}, false
	}

	mag, ok := parseFeedMagnitude(item.Title)
	if !ok {
		return QuakeRow{}, false
	}

	lat, lon, ok := parseGeoRSSPoint(item)
	if !ok {
		return QuakeRow{}, false
	}

	t := item.UpdatedParsed.UTC()
	return QuakeRow{
		Time:      t,
		Year:      t.Year(),
		Latitude:  lat,
		Longitude: lon,
		Magnitude: mag,
	}, true
}

func parseFeedMagnitude(title string) (float64, bool) {
	title = strings.TrimSpace(title)
	if !strings.HasPrefix(title, "M ") {
		return 0, false
	}
	rest := strings.TrimPrefix(title, "M ")
	if i := strings.Index(rest, " "); i >= 0 {
		rest = rest[:i]
	}
	mag, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return mag, true
}

func parseGeoRSSPoint(item *gofeed.Item) (float64, float64, bool) {
	ns, ok := item.Extensions["georss"]
	if !ok {
		return 0, 0, false
	}
	points, ok := ns["point"]
	if !ok || len(points) == 0 {
		return 0, 0, false
	}

	parts := strings.Fields(points[0].Value)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
