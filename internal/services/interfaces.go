package services

import (
	"context"
	"time"

	"construction-dashboard/internal/dto"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/viewstate"
)

// IngestServiceInterface validates raw transaction records at the boundary
type IngestServiceInterface interface {
	// DecodeTransactions parses a JSON array of transaction records
	DecodeTransactions(payload []byte) ([]models.Transaction, error)

	// ValidateRecords converts already-decoded records, reporting every violation
	ValidateRecords(records []dto.TransactionRecord) ([]models.Transaction, error)
}

// DashboardServiceInterface serves the dashboard summary and the reports screen
type DashboardServiceInterface interface {
	GetMonthlyOverview(ctx context.Context) (*models.MonthlyOverview, error)
	GetFinancialReport(ctx context.Context, period models.Period) (*models.FinancialReportResult, error)
	ExportFinancialReport(ctx context.Context, period models.Period) (*models.ExportDocument, error)
	PreviewFinancialReport(ctx context.Context, payload []byte, period models.Period) (*models.FinancialReportResult, error)
	GetUserListing(ctx context.Context) (*models.UserListingResult, error)
	ExportUserListing(ctx context.Context) (*models.ExportDocument, error)
}

// ListServiceInterface drives the list screens through the view state pipeline
type ListServiceInterface interface {
	ListEmployees(ctx context.Context, query viewstate.Query) (*ListResult[models.Employee], error)
	ListProjects(ctx context.Context, query viewstate.Query) (*ListResult[models.Project], error)
	ListUsers(ctx context.Context, query viewstate.Query) (*ListResult[models.User], error)
}

// ExportCacheInterface stores rendered export documents
type ExportCacheInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// DemoDataGeneratorInterface produces realistic construction data for seeding and tests
type DemoDataGeneratorInterface interface {
	Projects(n int) []models.Project
	Transactions(projects []models.Project, n int, from, to time.Time) []models.Transaction
	Employees(n int) []models.Employee
	Users(n int) []models.User
}

// Requester identifies the caller behind an audited request
type Requester struct {
	TraceID  string
	ClientIP string
}

// AuditLoggerInterface writes audit events for data leaving the dashboard
type AuditLoggerInterface interface {
	LogExportDownloaded(ctx context.Context, doc *models.ExportDocument, requester Requester)
	LogPreviewSubmitted(ctx context.Context, period models.Period, payloadBytes int, requester Requester, err error)
}

// DemoSeederInterface writes generated demo data into the database sources
type DemoSeederInterface interface {
	SeedIfEmpty(ctx context.Context, counts DemoSeedCounts) (*DemoSeedResult, error)
	GenerateTransactions(ctx context.Context, n, months int) (int, error)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
