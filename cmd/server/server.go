package main

import (
	"net/http"
	"time"

	"construction-dashboard/internal/config"
	"construction-dashboard/internal/handlers"
	"construction-dashboard/internal/middleware"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type snapshotStores struct {
	transactions *services.SnapshotStore[models.Transaction]
	employees    *services.SnapshotStore[models.Employee]
	projects     *services.SnapshotStore[models.Project]
	users        *services.SnapshotStore[models.User]
}

type serverDeps struct {
	db        handlers.HealthChecker
	dashboard services.DashboardServiceInterface
	lists     services.ListServiceInterface
	audit     services.AuditLoggerInterface
	seeder    services.DemoSeederInterface
	stores    snapshotStores
	registry  prometheus.Registerer
	gatherer  prometheus.Gatherer
}

// newServer builds the Echo instance with middleware and every route
func newServer(cfg *config.Config, deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(deps.registry).Handle

	limiter := middleware.NewRateLimiter(float64(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst)
	go limiter.Cleanup(time.Minute, nil)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposeHeaders: []string{
			middleware.TraceIDHeader,
			"Content-Disposition",
			"X-Snapshot-Generation",
			"X-Snapshot-Stale",
			"X-Cache",
		},
	}))

	health := handlers.NewHealthCheckHandler(deps.db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", limiter.Middleware())

	reports := handlers.NewReportHandler(deps.dashboard, deps.audit, cfg.Report.Currency)
	api.GET("/dashboard/monthly", reports.GetMonthlyOverview)
	api.GET("/reports/financial", reports.GetFinancialReport)
	api.GET("/reports/financial/export", reports.ExportFinancialReport)
	api.POST("/reports/financial/preview", reports.PreviewFinancialReport)
	api.GET("/reports/users", reports.GetUserListing)
	api.GET("/reports/users/export", reports.ExportUserListing)

	lists := handlers.NewListHandler(deps.lists)
	api.GET("/employees", lists.ListEmployees)
	api.GET("/projects", lists.ListProjects)
	api.GET("/users", lists.ListUsers)

	if cfg.IsDevelopment() && deps.seeder != nil {
		dev := handlers.NewDevHandler(deps.seeder, deps.stores.transactions,
			deps.stores.transactions, deps.stores.employees, deps.stores.projects, deps.stores.users)
		api.POST("/dev/transactions", dev.GenerateTransactions)
		api.POST("/dev/refresh", dev.RefreshSnapshots)
	}

	return e
}
