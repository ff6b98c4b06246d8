package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/resource-hub/internal/api/server"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/factory"
	"github.com/DjordjeVuckovic/resource-hub/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ResourceAPIConfig struct {
	Server        *server.Config
	StorageConfig *factory.StorageConfig
}

func (as *AppConfig) Load() (*ResourceAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/resource_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ResourceAPIConfig{
		Server:        serverCfg,
		StorageConfig: storageCfg,
	}, nil
}
