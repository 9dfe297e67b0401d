package storage

import (
	"testing"
	"time"

	"plotdash/internal/config"
)

var (
	configWithBucket    = config.Config{GCSBucket: "snapshots"}
	configWithoutBucket = config.Config{LocalExportsDir: "./exports"}
)

func TestGenerateSnapshotFolderPath(t *testing.T) {
	ts := time.Date(2024, 7, 4, 16, 5, 9, 0, time.UTC)
	got := GenerateSnapshotFolderPath("earthquakes", ts)
	want := "2024/07/04/Snapshot-earthquakes-2024-07-04-16-05-09"
	if got != want {
		t.Errorf("GenerateSnapshotFolderPath = %q, want %q", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"index.html", "text/html"},
		{"result.json", "application/json"},
		{"summary.md", "text/markdown"},
		{"chart.png", "image/png"},
		{"styles.css", "text/css"},
		{"rows.csv", "text/csv"},
		{"notes.txt", "text/plain"},
		{"blob.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestModeFor(t *testing.T) {
	if got := ModeFor(&configWithBucket); got != DeploymentGCS {
		t.Errorf("Expected GCS mode when bucket set, got %s", got)
	}
	if got := ModeFor(&configWithoutBucket); got != DeploymentLocal {
		t.Errorf("Expected local mode without bucket, got %s", got)
	}
}
