package models

import "time"

// CircuitBreakerState mirrors the breaker guarding a data source
type CircuitBreakerState int

// SnapshotMeta describes the data a response was computed from.
// Stale is set when the latest refresh failed and an older snapshot was served.
type SnapshotMeta struct {
	Source     string    `json:"source"`
	Generation uint64    `json:"generation"`
	LoadedAt   time.Time `json:"loaded_at"`
	Stale      bool      `json:"stale"`
	Error      string    `json:"error,omitempty"`
}

// MonthlyOverview is the dashboard summary payload
type MonthlyOverview struct {
	Series   *MonthlySeries `json:"series"`
	Chart    []ChartPoint   `json:"chart"`
	Snapshot SnapshotMeta   `json:"snapshot"`
}

// FinancialReportResult pairs a report with the snapshot it was built from
type FinancialReportResult struct {
	Report   *FinancialReport `json:"report"`
	Snapshot SnapshotMeta     `json:"snapshot"`
}

// UserListingResult pairs a listing report with its snapshot
type UserListingResult struct {
	Report   *UserListingReport `json:"report"`
	Snapshot SnapshotMeta       `json:"snapshot"`
}

// ExportDocument is a rendered text report ready for download
type ExportDocument struct {
	Filename string       `json:"filename"`
	Content  string       `json:"content"`
	Cached   bool         `json:"cached"`
	Snapshot SnapshotMeta `json:"snapshot"`
}
