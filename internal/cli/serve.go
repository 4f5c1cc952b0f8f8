package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/fling/pkg/adapters/http"
	"github.com/aretw0/fling/pkg/observability"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout bounds the graceful stop of the HTTP server.
const ShutdownTimeout = 5 * time.Second

// NewServeHandler wires the HTTP API: simulation and swipe journal routes,
// structured event logs and, when enabled, Prometheus metrics on /metrics.
func NewServeHandler(cfg Config, store ports.SwipeStore, logger *slog.Logger) http.Handler {
	hooks := observability.LogHooks(logger)
	opts := []httpAdapter.Option{
		httpAdapter.WithStore(store),
		httpAdapter.WithLogger(logger),
	}

	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		hooks = hooks.Merge(observability.NewMetrics(reg).Hooks())
		opts = append(opts, httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	opts = append(opts, httpAdapter.WithLifecycleHooks(hooks))
	return httpAdapter.NewHandler(opts...)
}

// RunServe listens on port until ctx is done, then shuts down gracefully.
func RunServe(ctx context.Context, cfg Config, store ports.SwipeStore, port int, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewServeHandler(cfg, store, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr, "metrics", cfg.Metrics, "store", cfg.Store.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", ShutdownTimeout, err)
		}
		return nil
	}
}

