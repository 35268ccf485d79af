package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"construction-dashboard/internal/cache"
	"construction-dashboard/internal/config"
	"construction-dashboard/internal/database"
	"construction-dashboard/internal/logging"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/repositories"
	"construction-dashboard/internal/services"
	"construction-dashboard/internal/sources"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			slog.Error("Failed to initialize Sentry", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			slog.Info("Sentry error reporting enabled", "environment", cfg.Sentry.Environment)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	txnRepo := repositories.NewTransactionRepository(db.DB)
	projectRepo := repositories.NewProjectRepository(db.DB)
	employeeRepo := repositories.NewEmployeeRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	seeder := services.NewDemoSeeder(services.NewDemoDataGenerator(0), txnRepo, projectRepo, employeeRepo, userRepo)
	if cfg.Seed.DemoData {
		if _, err := seeder.SeedIfEmpty(ctx, services.DemoSeedCounts{
			Projects:     cfg.Seed.Projects,
			Transactions: cfg.Seed.Transactions,
			Employees:    cfg.Seed.Employees,
			Users:        cfg.Seed.Users,
			Months:       12,
		}); err != nil {
			slog.Warn("Demo data seeding failed", "error", err)
		}
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	ingest := services.NewIngestService()

	fetchTransactions := services.Fetcher[models.Transaction](txnRepo.List)
	if cfg.Source.Mode == config.SourceModeHTTP {
		fetchTransactions = sources.NewHTTPTransactionSource(cfg.Source, ingest).Fetch
		slog.Info("Fetching transactions from upstream", "base_url", cfg.Source.BaseURL)
	}

	maxAge := services.WithMaxAge(cfg.Source.SnapshotMaxAge)
	stores := snapshotStores{
		transactions: services.NewSnapshotStore("transactions", fetchTransactions, newBreaker(cfg.Source, "transactions", metrics), metrics, maxAge),
		employees:    services.NewSnapshotStore("employees", employeeRepo.List, newBreaker(cfg.Source, "employees", metrics), metrics, maxAge),
		projects:     services.NewSnapshotStore("projects", projectRepo.List, newBreaker(cfg.Source, "projects", metrics), metrics, maxAge),
		users:        services.NewSnapshotStore("users", userRepo.List, newBreaker(cfg.Source, "users", metrics), metrics, maxAge),
	}

	exportCache := newExportCache(ctx, cfg.Cache)

	dashboardService := services.NewDashboardService(stores.transactions, stores.users, ingest, exportCache, metrics, services.DashboardOptions{
		Currency:   cfg.Report.Currency,
		ChartScale: cfg.Report.ChartScale,
		ExportTTL:  cfg.Cache.ReportTTL,
	})
	listService := services.NewListService(stores.employees, stores.projects, stores.users, metrics, cfg.Report.DefaultPageSize)

	e := newServer(cfg, serverDeps{
		db:        db,
		dashboard: dashboardService,
		lists:     listService,
		audit:     services.NewAuditLogger(slog.Default()),
		seeder:    seeder,
		stores:    stores,
		registry:  prometheus.DefaultRegisterer,
		gatherer:  prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	go func() {
		<-ctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	log.Printf("Starting construction dashboard on %s (env=%s, source=%s)", srv.Addr, cfg.Server.Environment, cfg.Source.Mode)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err, "addr", srv.Addr)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}

// newLogger emits JSON in production and text everywhere else
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(logging.NewContextHandler(handler))
}

func newBreaker(cfg config.SourceConfig, name string, metrics services.MetricsRecorderInterface) services.CircuitBreakerInterface {
	breakerCfg := services.DefaultCircuitBreakerConfig(name)
	if cfg.MaxFailures > 0 {
		breakerCfg.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		breakerCfg.ResetTimeout = cfg.ResetTimeout
	}
	return services.NewCircuitBreaker(breakerCfg, metrics)
}

// newExportCache falls back to no caching when Redis is unset or unreachable
func newExportCache(ctx context.Context, cfg config.CacheConfig) services.ExportCacheInterface {
	if cfg.RedisURL == "" {
		slog.Info("Export cache disabled (REDIS_URL not set)")
		return cache.NoopReportCache{}
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Warn("Export cache unavailable, continuing without it", "error", err)
		return cache.NoopReportCache{}
	}
	return cache.NewReportCache(client)
}
