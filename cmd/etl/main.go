package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/albapetroleum/mf-etl/pkg/config"
	"github.com/albapetroleum/mf-etl/pkg/extract"
	"github.com/albapetroleum/mf-etl/pkg/load"
	"github.com/albapetroleum/mf-etl/pkg/logging"
	"github.com/albapetroleum/mf-etl/pkg/pipeline"
	"github.com/albapetroleum/mf-etl/pkg/transform"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Directories must exist before the logger opens its file.
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("failed to create data directories: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	extractor, err := extract.NewExtractor(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create extractor: %v", err)
	}

	transformer, err := transform.NewTransformer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create transformer: %v", err)
	}

	loader, err := load.NewLoader(cfg, logger)
	if err != nil {
		log.Fatalf("failed to create loader: %v", err)
	}

	p, err := pipeline.New(extractor, transformer, loader, logger)
	if err != nil {
		log.Fatalf("failed to create pipeline: %v", err)
	}

	summary := p.Run(context.Background())
	if !summary.Success {
		os.Exit(1)
	}
}
