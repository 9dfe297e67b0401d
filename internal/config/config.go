package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// Data sources: local paths or http(s) URLs to CSV files
	IrisData   string `env:"IRIS_DATA,default=./data/iris.csv"`
	QuakesData string `env:"QUAKES_DATA,default=./data/earthquakes.csv"`
	MarketData string `env:"MARKET_DATA,default=./data/dow_jones.csv"`

	// Optional live feed merged into the earthquake table at startup
	QuakeFeedURL string `env:"QUAKE_FEED_URL"`

	// Momentum series generation
	MomentumSeed int64 `env:"MOMENTUM_SEED,default=42"`

	// Snapshot export destination (optional for local testing)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local testing configuration
	LocalExportsDir string `env:"LOCAL_EXPORTS_DIR,default=./exports"`
	MockupMode      bool   `env:"MOCKUP_MODE,default=false"`

	// OpenAI configuration (optional; enables snapshot narratives)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4.1"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=auto"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
