package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/resource-hub/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ContentImportConfig struct {
	// Target is the backend the content directory is imported into.
	Target      storage.Type
	DropInvalid bool
	*factory.StorageConfig
}

func (as *AppConfig) Load() (*ContentImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/content_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	target := storage.Type(os.Getenv("IMPORT_TARGET"))
	if target != storage.PG && target != storage.ES {
		slog.Error("Invalid IMPORT_TARGET environment variable value", "value", target)
		return nil, fmt.Errorf("invalid IMPORT_TARGET value: %q, expected one of %v", target, []storage.Type{storage.PG, storage.ES})
	}

	return &ContentImportConfig{
		Target:        target,
		DropInvalid:   os.Getenv("IMPORT_DROP_INVALID") == "true",
		StorageConfig: storageCfg,
	}, nil
}
