package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/promoshopcl/promoshop-backend/api/routes"
	"github.com/promoshopcl/promoshop-backend/internal/cart"
	"github.com/promoshopcl/promoshop-backend/internal/catalog"
	"github.com/promoshopcl/promoshop-backend/internal/quote"
	"github.com/promoshopcl/promoshop-backend/internal/storage"
	"github.com/promoshopcl/promoshop-backend/pkg/config"
	"github.com/promoshopcl/promoshop-backend/pkg/logger"
	"github.com/promoshopcl/promoshop-backend/pkg/metrics"
	"github.com/promoshopcl/promoshop-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	snapshots, closeStorage, err := buildStorage(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap snapshot storage", err)
		os.Exit(1)
	}

	provider := catalog.NewDefaultProvider()

	cartService, err := cart.NewService(ctx, cart.ServiceParams{
		Catalog: provider,
		Storage: snapshots,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	quoteService, err := quote.NewService(ctx, quote.ServiceParams{
		Catalog: provider,
		Storage: snapshots,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create quote service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.DriverName(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, provider, cartService, quoteService, httpMetrics, registry),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closeErr := multierr.Combine(
		server.Shutdown(shutdownCtx),
		closeStorage(),
	)
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}

// buildStorage wires the snapshot backend selected by configuration and
// returns it with its close hook.
func buildStorage(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.DriverName() {
	case config.StorageDriverMemory:
		return storage.NewMemory(), noop, nil

	case config.StorageDriverRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewRedis(client)
		if err != nil {
			return nil, nil, multierr.Append(err, client.Close())
		}
		return store, client.Close, nil

	default:
		store, err := storage.NewSQLite(ctx, cfg.Storage.SQLitePath, logg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}
