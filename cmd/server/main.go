// Package main is the entry point for the task service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/task-service/internal/adapters/http"
	"github.com/jsamuelsen11/task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-service/internal/adapters/mcp"
	"github.com/jsamuelsen11/task-service/internal/adapters/persistence/pgstore"
	"github.com/jsamuelsen11/task-service/internal/adapters/persistence/sqlstore"

	"github.com/jsamuelsen11/task-service/internal/app"
	"github.com/jsamuelsen11/task-service/internal/platform/config"
	"github.com/jsamuelsen11/task-service/internal/platform/health"
	"github.com/jsamuelsen11/task-service/internal/platform/logging"
	"github.com/jsamuelsen11/task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
	storeOpenTimeout    = 30 * time.Second
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// taskStore is what both persistence adapters provide.
type taskStore interface {
	ports.TaskStore
	ports.HealthChecker
	Close() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap: config, logger, telemetry.
	profile := config.ProfileFromEnv(defaultProfile)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("starting task service",
		slog.String("profile", profile),
		slog.String("version", version),
		slog.String("database", cfg.Database.Driver),
	)
	if cfg.MCP.GateOpen() {
		logger.Warn("MCP token not configured; /mcp endpoints are open")
	}

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

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[taskStore](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	if cfg.Database.SeedSampleData {
		seeder := do.MustInvoke[*app.Seeder](injector)
		if _, err := seeder.Seed(ctx); err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
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

	// Graceful shutdown: drain HTTP requests. The server applies
	// server.shutdown_timeout to a context without a deadline.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

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

	metrics, err := telemetry.NewMetrics(mp)
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

// openStore opens the configured database and returns the matching adapter.
func openStore(cfg *config.DatabaseConfig, logger *slog.Logger) (taskStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()

		pool, err := pgstore.Open(ctx, cfg.DSN, pgstore.PoolOptions{
			MaxConns:        clampInt32(cfg.MaxOpenConns),
			MinConns:        clampInt32(cfg.MaxIdleConns),
			MaxConnLifetime: cfg.ConnMaxLifetime,
		}, logger)
		if err != nil {
			return nil, err
		}
		return pgstore.New(pool), nil

	case config.DriverSQLite:
		gdb, err := sqlstore.Open(cfg.DSN, logger)
		if err != nil {
			return nil, err
		}
		return sqlstore.New(gdb), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func clampInt32(n int) int32 {
	return int32(min(max(n, 0), math.MaxInt32)) //nolint:gosec // clamped above
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (taskStore, error) {
		return openStore(&cfg.Database, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskStore, error) {
		return do.MustInvoke[taskStore](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[ports.TaskStore](i)
		return app.NewTaskService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BulkIngest, error) {
		store := do.MustInvoke[ports.TaskStore](i)
		return app.NewBulkIngest(store, app.NewSampleFactory(0), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Reporter, error) {
		store := do.MustInvoke[ports.TaskStore](i)
		return app.NewReporter(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Seeder, error) {
		store := do.MustInvoke[ports.TaskStore](i)
		return app.NewSeeder(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MCPHandler, error) {
		ingest := do.MustInvoke[ports.BulkIngest](i)
		reporter := do.MustInvoke[ports.Reporter](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return handlers.NewMCPHandler(ingest, reporter).WithMetrics(metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (*mcp.ToolServer, error) {
		ingest := do.MustInvoke[ports.BulkIngest](i)
		reporter := do.MustInvoke[ports.Reporter](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return mcp.NewToolServer(ingest, reporter, version, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		routes := adapthttp.Routes{
			Tasks:   do.MustInvoke[*handlers.TaskHandler](i),
			MCP:     do.MustInvoke[*handlers.MCPHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
			MCPGate: middleware.MCPToken(cfg.MCP.Token, cfg.MCP.AllowUnconfigured),
			Timeout: middleware.Timeout(cfg.Server.RequestTimeout),
		}
		if cfg.MCP.RPCEnabled {
			routes.MCPRPC = do.MustInvoke[*mcp.ToolServer](i).Handler()
		}

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
