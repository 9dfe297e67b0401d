// Package snapshot exports a dashboard's current result as a static
// bundle: a self-contained HTML page, standalone chart pages, PNG
// renders, the raw result JSON and the markdown summary. Bundles go
// through the storage client so local and GCS deployments behave the
// same.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"plotdash/internal/charts"
	"plotdash/internal/dashboards"
	"plotdash/internal/logger"
	"plotdash/internal/pipeline"
	"plotdash/internal/storage"
)

// Narrator writes optional commentary for a snapshot. Implemented by
// llm.OpenAIClient; a nil Narrator skips the narrative entirely.
type Narrator interface {
	GenerateNarrative(ctx context.Context, dashboard, summary string, stats pipeline.Stats) (string, error)
}

// GeneratedFiles holds one snapshot's files before storage.
type GeneratedFiles struct {
	FolderPath string
	HTML       []byte
	JSON       []byte
	Markdown   []byte
	ChartHTML  map[string][]byte
	ChartPNG   map[string][]byte
}

// Exporter produces and stores snapshot bundles.
type Exporter struct {
	service  *dashboards.Service
	storage  storage.StorageClient
	narrator Narrator
}

// NewExporter creates an exporter. narrator may be nil.
func NewExporter(service *dashboards.Service, store storage.StorageClient, narrator Narrator) *Exporter {
	return &Exporter{service: service, storage: store, narrator: narrator}
}

// Export generates the bundle for one dashboard at its default
// parameters and stores every file. Returns the folder path the
// bundle was stored under.
func (e *Exporter) Export(ctx context.Context, name string) (string, error) {
	return e.ExportAt(ctx, name, time.Now().UTC())
}

// ExportAt is Export with an explicit timestamp, used by tests and
// the batch runner to keep folder names predictable.
func (e *Exporter) ExportAt(ctx context.Context, name string, timestamp time.Time) (string, error) {
	result, err := e.service.DefaultResult(name)
	if err != nil {
		return "", err
	}

	files, err := e.Generate(ctx, name, result, timestamp)
	if err != nil {
		return "", err
	}
	if err := e.store(ctx, name, files, timestamp); err != nil {
		return "", err
	}

	logger.Infof("Snapshot for %s stored under %s", name, files.FolderPath)
	return files.FolderPath, nil
}

// Generate builds a snapshot bundle without storing it.
func (e *Exporter) Generate(ctx context.Context, name string, result dashboards.Result, timestamp time.Time) (*GeneratedFiles, error) {
	files := &GeneratedFiles{
		FolderPath: storage.GenerateSnapshotFolderPath(name, timestamp),
		ChartHTML:  make(map[string][]byte),
		ChartPNG:   make(map[string][]byte),
	}

	// Standalone chart pages.
	for _, fig := range result.Figures {
		page, err := charts.Standalone(fig)
		if err != nil {
			return nil, fmt.Errorf("failed to render standalone chart %s: %w", fig.ID, err)
		}
		files.ChartHTML[fig.ID+".html"] = []byte(page)
	}

	// PNG renders are best-effort: a failed render drops the image,
	// never the snapshot.
	if err := e.renderPNGs(result.Figures, files); err != nil {
		logger.Warnf("PNG rendering incomplete for %s: %v", name, err)
	}

	narrative := e.narrative(ctx, name, result)
	markdown := buildMarkdown(name, result, narrative, timestamp)
	files.Markdown = []byte(markdown)

	html, err := buildIndexHTML(name, markdown, result)
	if err != nil {
		return nil, err
	}
	files.HTML = []byte(html)

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	files.JSON = resultJSON

	return files, nil
}

func (e *Exporter) renderPNGs(figures []charts.Figure, files *GeneratedFiles) error {
	tempDir, err := os.MkdirTemp("", "plotdash_png_")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	renderer := charts.NewPNGRenderer(tempDir)
	for _, fig := range figures {
		path, err := renderer.RenderPNG(fig)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", fig.ID, err)
		}
		if path == "" {
			continue // notice figure, nothing to render
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read rendered PNG: %w", err)
		}
		files.ChartPNG[filepath.Base(path)] = data
	}
	return nil
}

// narrative asks the narrator for commentary; failures degrade to an
// empty narrative rather than failing the export.
func (e *Exporter) narrative(ctx context.Context, name string, result dashboards.Result) string {
	if e.narrator == nil {
		return ""
	}
	narrative, err := e.narrator.GenerateNarrative(ctx, name, result.Summary, result.Stats)
	if err != nil {
		logger.Warn("Narrative generation failed, exporting without it",
			map[string]interface{}{"dashboard": name, "error": err.Error()})
		return ""
	}
	return narrative
}

func (e *Exporter) store(ctx context.Context, name string, files *GeneratedFiles, timestamp time.Time) error {
	stored := map[string][]byte{
		"index.html":  files.HTML,
		"result.json": files.JSON,
		"summary.md":  files.Markdown,
	}
	for filename, data := range files.ChartHTML {
		stored[filename] = data
	}
	for filename, data := range files.ChartPNG {
		stored[filename] = data
	}

	for filename, data := range stored {
		if err := e.storage.StoreFile(ctx, data, name, filename, timestamp); err != nil {
			return fmt.Errorf("failed to store %s: %w", filename, err)
		}
	}
	return nil
}
