package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"construction-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	reportKindMonthly     = "monthly"
	reportKindFinancial   = "financial"
	reportKindUserListing = "users"
	previewSource         = "preview"
)

// DashboardOptions carries the report settings from config
type DashboardOptions struct {
	Currency   string
	ChartScale int64
	ExportTTL  time.Duration
}

type dashboardService struct {
	transactions *SnapshotStore[models.Transaction]
	users        *SnapshotStore[models.User]
	ingest       IngestServiceInterface
	cache        ExportCacheInterface
	metrics      MetricsRecorderInterface
	options      DashboardOptions
}

func NewDashboardService(
	transactions *SnapshotStore[models.Transaction],
	users *SnapshotStore[models.User],
	ingest IngestServiceInterface,
	cache ExportCacheInterface,
	metrics MetricsRecorderInterface,
	options DashboardOptions,
) DashboardServiceInterface {
	if options.ChartScale <= 0 {
		options.ChartScale = models.DefaultChartScale.IntPart()
	}
	return &dashboardService{
		transactions: transactions,
		users:        users,
		ingest:       ingest,
		cache:        cache,
		metrics:      metrics,
		options:      options,
	}
}

func (s *dashboardService) GetMonthlyOverview(ctx context.Context) (*models.MonthlyOverview, error) {
	start := time.Now()

	snapshot, err := s.transactions.Load(ctx)
	if err != nil {
		return nil, err
	}

	series, err := AggregateMonthly(snapshot.Items)
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly series: %w", err)
	}

	s.recordReport(reportKindMonthly, start, series.IgnoredCount)

	return &models.MonthlyOverview{
		Series:   series,
		Chart:    series.Chart(decimal.NewFromInt(s.options.ChartScale)),
		Snapshot: snapshot.Meta(s.transactions.Name()),
	}, nil
}

func (s *dashboardService) GetFinancialReport(ctx context.Context, period models.Period) (*models.FinancialReportResult, error) {
	start := time.Now()

	snapshot, err := s.transactions.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildFinancialReport(snapshot.Items, period)
	s.recordReport(reportKindFinancial, start, report.UnclassifiedCount)

	slog.InfoContext(ctx, "Financial report generated",
		"period", period.Key(),
		"result", report.ResultLabel,
		"net", report.NetResult.StringFixed(2),
		"unclassified", report.UnclassifiedCount,
		"generation", snapshot.Generation)

	return &models.FinancialReportResult{
		Report:   report,
		Snapshot: snapshot.Meta(s.transactions.Name()),
	}, nil
}

// ExportFinancialReport renders the downloadable statement. Documents are
// cached under a digest of the period's transactions, so a changed snapshot
// never serves old text.
func (s *dashboardService) ExportFinancialReport(ctx context.Context, period models.Period) (*models.ExportDocument, error) {
	start := time.Now()

	snapshot, err := s.transactions.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc := &models.ExportDocument{
		Filename: fmt.Sprintf("financial_report_%04d_%02d.txt", period.Year, int(period.Month)),
		Snapshot: snapshot.Meta(s.transactions.Name()),
	}

	key := exportCacheKey(reportKindFinancial, period.Key(), s.options.Currency, transactionDigest(snapshot.Items, period))
	if content, ok := s.cachedExport(ctx, key); ok {
		doc.Content = content
		doc.Cached = true
		return doc, nil
	}

	report := BuildFinancialReport(snapshot.Items, period)
	doc.Content = RenderFinancialReport(report, s.options.Currency)
	s.recordReport(reportKindFinancial+"_export", start, report.UnclassifiedCount)
	s.storeExport(ctx, key, doc.Content)

	return doc, nil
}

// PreviewFinancialReport builds a report over a posted record set instead of
// the stored snapshot. Invalid records fail the whole request.
func (s *dashboardService) PreviewFinancialReport(ctx context.Context, payload []byte, period models.Period) (*models.FinancialReportResult, error) {
	start := time.Now()

	txns, err := s.ingest.DecodeTransactions(payload)
	if err != nil {
		return nil, err
	}

	report := BuildFinancialReport(txns, period)
	s.recordReport(reportKindFinancial+"_preview", start, report.UnclassifiedCount)

	return &models.FinancialReportResult{
		Report: report,
		Snapshot: models.SnapshotMeta{
			Source:   previewSource,
			LoadedAt: start,
		},
	}, nil
}

func (s *dashboardService) GetUserListing(ctx context.Context) (*models.UserListingResult, error) {
	start := time.Now()

	snapshot, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildUserListing(snapshot.Items)
	s.recordReport(reportKindUserListing, start, 0)

	return &models.UserListingResult{
		Report:   report,
		Snapshot: snapshot.Meta(s.users.Name()),
	}, nil
}

func (s *dashboardService) ExportUserListing(ctx context.Context) (*models.ExportDocument, error) {
	start := time.Now()

	snapshot, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc := &models.ExportDocument{
		Filename: "user_listing.txt",
		Snapshot: snapshot.Meta(s.users.Name()),
	}

	key := exportCacheKey(reportKindUserListing, "all", "", userDigest(snapshot.Items))
	if content, ok := s.cachedExport(ctx, key); ok {
		doc.Content = content
		doc.Cached = true
		return doc, nil
	}

	doc.Content = RenderUserListing(BuildUserListing(snapshot.Items))
	s.recordReport(reportKindUserListing+"_export", start, 0)
	s.storeExport(ctx, key, doc.Content)

	return doc, nil
}

func (s *dashboardService) cachedExport(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	content, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Export cache lookup failed", "key", key, "error", err)
		return "", false
	}

	result := "miss"
	if ok {
		result = "hit"
	}
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricExportCacheLookup, map[string]string{"result": result})
	}
	return content, ok
}

func (s *dashboardService) storeExport(ctx context.Context, key, content string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, content, s.options.ExportTTL); err != nil {
		slog.WarnContext(ctx, "Failed to cache export document", "key", key, "error", err)
	}
}

func (s *dashboardService) recordReport(kind string, start time.Time, unclassified int) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"kind": kind})
	s.metrics.RecordProcessingTime(MetricReportDuration, time.Since(start))
	s.metrics.AddCounter(MetricUnclassified, float64(unclassified), nil)
}

func exportCacheKey(kind, scope, currency, digest string) string {
	if currency == "" {
		return fmt.Sprintf("report:%s:%s:%s", kind, scope, digest)
	}
	return fmt.Sprintf("report:%s:%s:%s:%s", kind, scope, currency, digest)
}

// transactionDigest hashes the period's transactions in snapshot order,
// which is everything the rendered statement depends on
func transactionDigest(txns []models.Transaction, period models.Period) string {
	h := sha256.New()
	for _, txn := range txns {
		if !period.Contains(txn.TransactionDate) {
			continue
		}
		fmt.Fprintf(h, "%s\x1f%s\x1f%s\x1f%s\x1f%s\n",
			txn.ProjectID,
			txn.ProjectName,
			txn.TransactionType,
			txn.Amount.String(),
			models.FormatCalendarDate(txn.TransactionDate))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func userDigest(users []models.User) string {
	h := sha256.New()
	for _, u := range users {
		fmt.Fprintf(h, "%s\x1f%s\x1f%s\x1f%s\n", u.Name, u.Email, u.UserType, u.Status)
	}
	return hex.EncodeToString(h.Sum(nil))
}
