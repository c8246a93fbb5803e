// Package main is the entry point for the board sync service. It wires all
// dependencies using samber/do v2, starts the HTTP server and the real-time
// hub, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/boardsync/internal/adapters/http"
	"github.com/jsamuelsen11/boardsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/boardsync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/boardsync/internal/adapters/hub"
	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/redisstore"
	"github.com/jsamuelsen11/boardsync/internal/adapters/persistence/resilient"

	"github.com/jsamuelsen11/boardsync/internal/app"
	"github.com/jsamuelsen11/boardsync/internal/app/groups"
	"github.com/jsamuelsen11/boardsync/internal/app/guard"
	"github.com/jsamuelsen11/boardsync/internal/platform/config"
	"github.com/jsamuelsen11/boardsync/internal/platform/health"
	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
	"github.com/jsamuelsen11/boardsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/boardsync/internal/platform/validation"
	"github.com/jsamuelsen11/boardsync/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second
	storeConnectTimeout = 10 * time.Second
	hubShutdownTimeout  = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*backend](injector)
	if store.checker != nil {
		registry.Register(store.checker)
	}
	registry.Register(do.MustInvoke[*resilient.Gateway](injector))
	boardHub := do.MustInvoke[*hub.Hub](injector)
	registry.Register(boardHub)

	// Hijacked hub sockets are invisible to http.Server.Shutdown.
	server.OnShutdown(func() {
		hubCtx, cancel := context.WithTimeout(context.Background(), hubShutdownTimeout)
		defer cancel()
		if err := boardHub.Close(hubCtx); err != nil {
			logger.Warn("hub close incomplete", slog.Any("error", err))
		}
	})

	sweeper := do.MustInvoke[*groups.Sweeper](injector)
	if cfg.Hub.SweepInterval > 0 {
		sweeper.Start(ctx)
	} else {
		logger.Info("connection sweeper disabled")
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests and hub connections.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	sweeper.Stop()

	if store.closer != nil {
		if err := store.closer.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// backend is the raw persistence gateway chosen by store.driver, plus what
// the lifecycle needs from it. checker and closer are nil for the memory
// store.
type backend struct {
	gateway ports.Gateway
	checker ports.HealthChecker
	closer  io.Closer
}

func openBackend(cfg config.StoreConfig, logger *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.StoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
		defer cancel()

		rs, err := redisstore.Open(ctx, redisstore.Config{
			URL:         cfg.Redis.URL,
			Prefix:      cfg.Redis.KeyPrefix,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("opening redis store: %w", err)
		}
		logger.Info("using redis store", slog.String("key_prefix", cfg.Redis.KeyPrefix))
		return &backend{gateway: rs, checker: rs, closer: rs}, nil
	default:
		logger.Warn("using in-memory store; data is lost on restart")
		return &backend{gateway: memory.New()}, nil
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*backend, error) {
		return openBackend(cfg.Store, logger)
	})

	do.Provide(injector, func(i do.Injector) (*resilient.Gateway, error) {
		store := do.MustInvoke[*backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return resilient.New(store.gateway, resilient.Settings{
			Name:          cfg.Store.Driver,
			MaxFailures:   cfg.Store.CircuitBreaker.MaxFailures,
			Timeout:       cfg.Store.CircuitBreaker.Timeout,
			HalfOpenLimit: cfg.Store.CircuitBreaker.HalfOpenLimit,
			Retry: resilient.RetryPolicy{
				MaxAttempts:     cfg.Store.Retry.MaxAttempts,
				InitialInterval: cfg.Store.Retry.InitialInterval,
				MaxInterval:     cfg.Store.Retry.MaxInterval,
				Multiplier:      cfg.Store.Retry.Multiplier,
			},
		}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*guard.Guard, error) {
		store := do.MustInvoke[*resilient.Gateway](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return guard.New(store, metrics), nil
	})

	// The registry and the hub reference each other: the hub reports
	// membership to the registry and the registry delivers through the hub.
	do.Provide(injector, func(i do.Injector) (*groups.Registry, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return groups.NewRegistry(nil, logger, metrics, groups.WithWorkers(cfg.Hub.BroadcastWorkers)), nil
	})

	do.Provide(injector, func(i do.Injector) (*hub.Hub, error) {
		registry := do.MustInvoke[*groups.Registry](i)
		h := hub.New(registry, hub.Config{
			SendBuffer:        cfg.Hub.SendBuffer,
			WriteTimeout:      cfg.Hub.WriteTimeout,
			PongWait:          cfg.Hub.PongWait,
			MaxMessageBytes:   cfg.Hub.MaxMessageBytes,
			MessagesPerWindow: cfg.Hub.MessagesPerWindow,
			Window:            cfg.Hub.Window,
		}, logger)
		registry.SetSender(h)
		return h, nil
	})

	do.Provide(injector, func(i do.Injector) (*groups.Sweeper, error) {
		registry := do.MustInvoke[*groups.Registry](i)
		return groups.NewSweeper(registry, logger, cfg.Hub.SweepInterval, cfg.Hub.StaleThreshold), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		store := do.MustInvoke[*resilient.Gateway](i)
		g := do.MustInvoke[*guard.Guard](i)
		registry := do.MustInvoke[*groups.Registry](i)
		policy := validation.New(validation.Limits{
			MaxBulkOperations:    cfg.Limits.MaxBulkOperations,
			MaxTitleLength:       cfg.Limits.MaxTitleLength,
			MaxDescriptionLength: cfg.Limits.MaxDescriptionLength,
		})
		return app.NewBoardService(g, store, registry, policy, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		return handlers.NewBoardHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		groupRegistry := do.MustInvoke[*groups.Registry](i)
		return handlers.NewHealthHandler(registry, groupRegistry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		boardHub := do.MustInvoke[*hub.Hub](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Routes{
			Board:      boardH,
			Health:     healthH,
			Hub:        boardHub,
			HubPath:    cfg.Hub.Path,
			APITimeout: cfg.Server.RequestTimeout,
		},
			middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.CorrelationID(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
