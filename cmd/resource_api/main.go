// Package main Resource Hub API
// @title Resource Hub API
// @version 1.0
// @description Merged, filterable listings of blog posts, case studies, news and product updates
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/resource-hub/docs"
	"github.com/DjordjeVuckovic/resource-hub/internal/api/router"
	"github.com/DjordjeVuckovic/resource-hub/internal/api/server"
	"github.com/DjordjeVuckovic/resource-hub/internal/metrics"
	"github.com/DjordjeVuckovic/resource-hub/internal/pipeline"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/factory"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const storageOpenTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	// The storage is opened before the server so its health checker can be
	// wired into /health.
	ctx, cancel := context.WithTimeout(context.Background(), storageOpenTimeout)
	store, err := factory.NewSource(ctx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage source", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg.Server, store).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", reg).
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Resource Hub API is running")
	})

	service := pipeline.NewService(store, m)
	router.NewResourceRouter(s.Echo, service).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
