package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestBreaker(t *testing.T, maxFailures int) (*CircuitBreaker, *PrometheusMetrics, *time.Time) {
	t.Helper()
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:         "ledger",
		MaxFailures:  maxFailures,
		ResetTimeout: time.Minute,
	}, metrics).(*CircuitBreaker)

	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }
	return cb, metrics, &now
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, metrics, _ := newTestBreaker(t, 3)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("ledger")))
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _, _ := newTestBreaker(t, 3)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb, metrics, now := newTestBreaker(t, 1)

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	*now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("ledger")))

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, _, now := newTestBreaker(t, 1)

	cb.RecordFailure()
	*now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, metrics, _ := newTestBreaker(t, 1)

	cb.RecordFailure()
	cb.Reset()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("ledger")))
}

func TestDefaultCircuitBreakerConfig(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("users")

	assert.Equal(t, "users", cfg.Name)
	assert.Equal(t, 5, cfg.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.ResetTimeout)
	assert.Equal(t, 1, cfg.HalfOpenMaxSucc)
}
