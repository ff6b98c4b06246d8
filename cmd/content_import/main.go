package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/resource-hub/internal/processor"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/file"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("Creating pipeline", "contentDir", cfg.ContentDir, "target", cfg.Target)

	indexer, closeIndexer, err := factory.NewIndexer(ctx, cfg.Target, cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create indexer", "error", err)
		os.Exit(1)
	}
	defer closeIndexer()

	var opts []processor.PipelineOption
	if cfg.DropInvalid {
		opts = append(opts, processor.WithDropInvalid())
	}

	p := processor.NewImportPipeline(file.NewSource(cfg.ContentDir), indexer, opts...)
	if err := p.Run(ctx); err != nil {
		slog.Error("failed to run pipeline", "error", err)
		closeIndexer()
		os.Exit(1)
	}
}
