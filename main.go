package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plotdash/internal/charts"
	"plotdash/internal/config"
	"plotdash/internal/dashboards"
	"plotdash/internal/dataset"
	"plotdash/internal/llm"
	"plotdash/internal/logger"
	"plotdash/internal/mocks"
	"plotdash/internal/server"
	"plotdash/internal/snapshot"
	"plotdash/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Infof("Starting plotdash %s on port %s", config.GetVersion(), cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)

	data, err := loadData(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to load datasets", err)
	}
	logger.Info("Datasets loaded", map[string]interface{}{
		"iris":   len(data.Iris.Rows),
		"quakes": len(data.Quakes.Rows),
		"market": len(data.Market.Rows),
	})

	service := dashboards.NewService(data, charts.DefaultTheme())

	mode := storage.ModeFor(cfg)
	store, err := storage.NewStorageClient(ctx, mode, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	if mode == storage.DeploymentLocal {
		logger.Infof("Local deployment mode - snapshots will be saved to: %s", cfg.LocalExportsDir)
	} else {
		logger.Infof("GCS deployment mode - snapshots will be saved to bucket: %s", cfg.GCSBucket)
	}

	var narrator snapshot.Narrator
	if cfg.OpenAIAPIKey != "" {
		narrator = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Infof("Snapshot narratives enabled with model %s", cfg.OpenAIModel)
	}
	exporter := snapshot.NewExporter(service, store, narrator)

	srv := server.NewServer(cfg, service, store, exporter)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // snapshot exports render PNGs
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}

// loadData loads every dataset up front. A missing or malformed file
// is fatal here; once the tables are in memory the dashboards never
// touch the sources again.
func loadData(ctx context.Context, cfg *config.Config) (dashboards.Data, error) {
	irisSource, quakesSource, marketSource := cfg.IrisData, cfg.QuakesData, cfg.MarketData
	if cfg.MockupMode {
		logger.Info("Mockup mode enabled - using bundled sample data")
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

	// Recent events from the live feed are a bonus, never a blocker.
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
