package services

import (
	"context"
	"log/slog"
	"time"

	"construction-dashboard/internal/models"
)

// AuditLogger records who pulled which report data out of the dashboard
type AuditLogger struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
		now:    time.Now,
	}
}

func (al *AuditLogger) LogExportDownloaded(ctx context.Context, doc *models.ExportDocument, requester Requester) {
	al.logger.InfoContext(ctx, "report export downloaded",
		slog.String("event_type", "report_export_downloaded"),
		slog.String("filename", doc.Filename),
		slog.String("source", doc.Snapshot.Source),
		slog.Uint64("generation", doc.Snapshot.Generation),
		slog.Bool("stale", doc.Snapshot.Stale),
		slog.Bool("cache_hit", doc.Cached),
		slog.Int("bytes", len(doc.Content)),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", requester.TraceID),
		slog.String("client_ip", requester.ClientIP),
	)
}

// LogPreviewSubmitted records a posted record set. Rejected payloads are logged at Warn.
func (al *AuditLogger) LogPreviewSubmitted(ctx context.Context, period models.Period, payloadBytes int, requester Requester, err error) {
	attrs := []any{
		slog.String("event_type", "report_preview_submitted"),
		slog.String("period", period.Key()),
		slog.Int("bytes", payloadBytes),
		slog.Time("timestamp", al.now()),
		slog.String("trace_id", requester.TraceID),
		slog.String("client_ip", requester.ClientIP),
	}
	if err != nil {
		al.logger.WarnContext(ctx, "report preview rejected", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	al.logger.InfoContext(ctx, "report preview submitted", attrs...)
}
