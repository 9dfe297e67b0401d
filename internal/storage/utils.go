package storage

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSnapshotFolderPath generates a consistent folder path for exports.
// Format: YYYY/MM/DD/Snapshot-<dashboard>-YYYY-MM-DD-HH-MM-SS
func GenerateSnapshotFolderPath(dashboard string, timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/Snapshot-%s-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		dashboard,
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
