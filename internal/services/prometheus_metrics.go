package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricReportGenerated      = "report.generated"
	MetricReportDuration       = "report.generation"
	MetricUnclassified         = "transactions.unclassified"
	MetricSourceFetch          = "source.fetch"
	MetricSourceFetchDuration  = "source.fetch.duration"
	MetricSourceFetchStale     = "source.fetch.stale"
	MetricCircuitBreakerState  = "circuit_breaker.state"
	MetricListViewRequest      = "list_view.request"
	MetricExportCacheLookup    = "export_cache.lookup"
	MetricSnapshotItemsCurrent = "snapshot.items"
)

type PrometheusMetrics struct {
	reportGenerated     *prometheus.CounterVec
	reportDuration      prometheus.Histogram
	unclassified        prometheus.Counter
	sourceFetch         *prometheus.CounterVec
	sourceFetchDuration prometheus.Histogram
	sourceFetchStale    *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	listViewRequests    *prometheus.CounterVec
	exportCacheLookups  *prometheus.CounterVec
	snapshotItems       *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the dashboard collectors with reg.
// Pass prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		reportGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_generated_total",
				Help: "Total number of reports generated by kind",
			},
			[]string{"kind"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		unclassified: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_unclassified_total",
				Help: "Total number of transactions excluded from reports because of an unknown type",
			},
		),
		sourceFetch: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_fetch_total",
				Help: "Total number of snapshot source fetches",
			},
			[]string{"source", "status"},
		),
		sourceFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "source_fetch_duration_milliseconds",
				Help:    "Snapshot source fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		sourceFetchStale: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_fetch_stale_total",
				Help: "Total number of fetch results discarded because a newer fetch was initiated",
			},
			[]string{"source"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		listViewRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "list_view_requests_total",
				Help: "Total number of list screen requests",
			},
			[]string{"screen"},
		),
		exportCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "export_cache_lookups_total",
				Help: "Export cache lookups by result",
			},
			[]string{"result"},
		),
		snapshotItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "snapshot_items",
				Help: "Number of items held by the current snapshot",
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

// AddCounter adds value to a counter in one step. Counters only grow, so
// non-positive values are ignored.
func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	if value <= 0 {
		return
	}
	switch name {
	case MetricReportGenerated:
		m.reportGenerated.WithLabelValues(tags["kind"]).Add(value)
	case MetricUnclassified:
		m.unclassified.Add(value)
	case MetricSourceFetch:
		m.sourceFetch.WithLabelValues(tags["source"], tags["status"]).Add(value)
	case MetricSourceFetchStale:
		m.sourceFetchStale.WithLabelValues(tags["source"]).Add(value)
	case MetricListViewRequest:
		if screen := tags["screen"]; screen != "" {
			m.listViewRequests.WithLabelValues(screen).Add(value)
		}
	case MetricExportCacheLookup:
		m.exportCacheLookups.WithLabelValues(tags["result"]).Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricReportDuration:
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case MetricSourceFetchDuration:
		m.sourceFetchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricSnapshotItemsCurrent:
		m.snapshotItems.WithLabelValues(tags["source"]).Set(value)
	}
}
