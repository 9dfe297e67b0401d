// Command snapshot exports dashboard bundles from the command line,
// without running the HTTP server. Useful for cron jobs and local
// inspection of what an export produces.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"plotdash/internal/charts"
	"plotdash/internal/config"
	"plotdash/internal/dashboards"
	"plotdash/internal/dataset"
	"plotdash/internal/llm"
	"plotdash/internal/logger"
	"plotdash/internal/mocks"
	"plotdash/internal/snapshot"
	"plotdash/internal/storage"
)

func main() {
	var (
		name = flag.String("dashboard", "all", "dashboard to export (iris, earthquakes, market, simulation, all)")
	)
	flag.Parse()

	if err := run(*name); err != nil {
		logger.Fatal("Snapshot export failed", err)
	}
}

func run(name string) error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := loadData(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load datasets: %w", err)
	}

	service := dashboards.NewService(data, charts.DefaultTheme())

	store, err := storage.NewStorageClient(ctx, storage.ModeFor(cfg), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var narrator snapshot.Narrator
	if cfg.OpenAIAPIKey != "" {
		narrator = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	exporter := snapshot.NewExporter(service, store, narrator)

	names := dashboards.Names
	if name != "all" {
		names = strings.Split(name, ",")
	}

	timestamp := time.Now().UTC()
	for _, dash := range names {
		folderPath, err := exporter.ExportAt(ctx, dash, timestamp)
		if err != nil {
			return fmt.Errorf("export of %s failed: %w", dash, err)
		}
		fmt.Printf("%s -> %s\n", dash, folderPath)
	}
	return nil
}

func loadData(ctx context.Context, cfg *config.Config) (dashboards.Data, error) {
	irisSource, quakesSource, marketSource := cfg.IrisData, cfg.QuakesData, cfg.MarketData
	if cfg.MockupMode {
		var err error
		irisSource, quakesSource, marketSource, err = mocks.MaterializeSampleData(os.TempDir())
		if err != nil {
			return dashboards.Data{}, err
		}
	}

	loader := dataset.NewLoader()

	iris, err := loader.LoadIris(ctx, irisSource)
	if err != nil {
		return dashboards.Data{}, err
	}
	quakes, err := loader.LoadQuakes(ctx, quakesSource)
	if err != nil {
		return dashboards.Data{}, err
	}
	market, err := loader.LoadIndex(ctx, marketSource)
	if err != nil {
		return dashboards.Data{}, err
	}
	if cfg.QuakeFeedURL != "" {
		quakes = dataset.NewFeedReader().MergeRecent(ctx, quakes, cfg.QuakeFeedURL)
	}

	return dashboards.Data{
		Iris:     iris,
		Quakes:   quakes,
		Market:   market,
		Momentum: dataset.NewMomentumTable(cfg.MomentumSeed, 300),
	}, nil
}
