// Command server starts the trending-topics report HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TanujTlaxmanna/trendreport/internal/adapter/dataset/csvds"
	httpserver "github.com/TanujTlaxmanna/trendreport/internal/adapter/httpserver"
	"github.com/TanujTlaxmanna/trendreport/internal/adapter/observability"
	"github.com/TanujTlaxmanna/trendreport/internal/adapter/render/pdfgen"
	"github.com/TanujTlaxmanna/trendreport/internal/app"
	"github.com/TanujTlaxmanna/trendreport/internal/config"
	"github.com/TanujTlaxmanna/trendreport/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register all Prometheus metrics once per process so that /metrics
	// exposes HTTP and report instrumentation.
	observability.InitMetrics()

	// Input tables are read once here and passed to the service explicitly;
	// a load failure is terminal (no partial UI, no stale data).
	ctx := context.Background()
	loader := csvds.New(cfg.TrendingCSVPath, cfg.WordFreqCSVPath)
	datasets, err := loader.Load(ctx)
	if err != nil {
		slog.Error("dataset load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("datasets loaded",
		slog.Int("topics", len(datasets.Topics)),
		slog.Int("words", len(datasets.Words)))

	tpl, err := config.LoadReportTemplate(cfg.ReportTemplatePath)
	if err != nil {
		slog.Error("report template load failed", slog.Any("error", err))
		os.Exit(1)
	}

	renderer := pdfgen.New(tpl)
	reports := usecase.NewReportService(datasets, renderer, cfg.ReportOutputPath)

	srv, err := httpserver.NewServer(cfg, reports)
	if err != nil {
		slog.Error("http server setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
