package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"construction-dashboard/internal/models"
)

var (
	ErrStaleFetch          = errors.New("fetch superseded by a newer fetch")
	ErrSnapshotUnavailable = errors.New("no snapshot available")
)

// Fetcher loads the full source collection
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Snapshot is an immutable copy of a source collection. Err holds the cause
// of the most recent failed refresh while the items are still served.
type Snapshot[T any] struct {
	Items      []T
	Generation uint64
	LoadedAt   time.Time
	Err        error
}

// Loaded reports whether any fetch has ever been applied
func (s Snapshot[T]) Loaded() bool {
	return s.Generation > 0
}

func (s Snapshot[T]) Stale() bool {
	return s.Err != nil
}

func (s Snapshot[T]) Meta(source string) models.SnapshotMeta {
	meta := models.SnapshotMeta{
		Source:     source,
		Generation: s.Generation,
		LoadedAt:   s.LoadedAt,
		Stale:      s.Stale(),
	}
	if s.Err != nil {
		meta.Error = s.Err.Error()
	}
	return meta
}

// Refresher is the element-type independent face of a SnapshotStore
type Refresher interface {
	Name() string
	RefreshMeta(ctx context.Context) (models.SnapshotMeta, error)
}

// SnapshotStore holds the last good snapshot of a source. Every refresh takes
// a new generation number; a result is applied only when no newer refresh was
// started in the meantime, so the last initiated fetch always wins.
type SnapshotStore[T any] struct {
	name    string
	fetch   Fetcher[T]
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	maxAge  time.Duration
	now     func() time.Time

	mu         sync.Mutex
	initiated  uint64
	inFlight   int
	background bool
	settled    chan struct{}
	current    Snapshot[T]
}

type snapshotOptions struct {
	maxAge time.Duration
}

// SnapshotOption tunes a SnapshotStore
type SnapshotOption func(*snapshotOptions)

// WithMaxAge makes Load serve the current snapshot until it is older than d
// and refresh it in the background after that. Zero refreshes on every Load.
func WithMaxAge(d time.Duration) SnapshotOption {
	return func(o *snapshotOptions) {
		o.maxAge = d
	}
}

// NewSnapshotStore creates a store for the named source. breaker and metrics may be nil.
func NewSnapshotStore[T any](name string, fetch Fetcher[T], breaker CircuitBreakerInterface, metrics MetricsRecorderInterface, opts ...SnapshotOption) *SnapshotStore[T] {
	var options snapshotOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &SnapshotStore[T]{
		name:    name,
		fetch:   fetch,
		breaker: breaker,
		metrics: metrics,
		maxAge:  options.maxAge,
		now:     time.Now,
		settled: make(chan struct{}),
	}
}

func (s *SnapshotStore[T]) Name() string {
	return s.name
}

// Current returns the snapshot being served without fetching
func (s *SnapshotStore[T]) Current() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Refresh fetches a new snapshot. On failure the previous snapshot is kept,
// marked with the error, and returned together with that error. A fetch
// overtaken by a newer one returns ErrStaleFetch and changes nothing.
func (s *SnapshotStore[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	s.mu.Lock()
	s.initiated++
	s.inFlight++
	generation := s.initiated
	s.mu.Unlock()

	if s.breaker != nil && s.breaker.IsOpen() {
		s.countFetch("circuit_open")
		return s.fail(ctx, generation, ErrCircuitBreakerOpen)
	}

	start := s.now()
	items, err := s.fetch(ctx)
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricSourceFetchDuration, s.now().Sub(start))
	}

	if err != nil {
		if s.breaker != nil {
			s.breaker.RecordFailure()
		}
		s.countFetch("error")
		return s.fail(ctx, generation, err)
	}
	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.settleLocked()

	if generation != s.initiated {
		s.countStale()
		slog.WarnContext(ctx, "Discarding superseded snapshot fetch",
			"source", s.name,
			"generation", generation,
			"latest_generation", s.initiated)
		return s.current, fmt.Errorf("%s generation %d: %w", s.name, generation, ErrStaleFetch)
	}

	s.current = Snapshot[T]{
		Items:      items,
		Generation: generation,
		LoadedAt:   s.now(),
	}
	s.countFetch("success")
	if s.metrics != nil {
		s.metrics.RecordGauge(MetricSnapshotItemsCurrent, float64(len(items)), map[string]string{"source": s.name})
	}

	slog.InfoContext(ctx, "Snapshot refreshed",
		"source", s.name,
		"generation", generation,
		"items", len(items))

	return s.current, nil
}

func (s *SnapshotStore[T]) fail(ctx context.Context, generation uint64, cause error) (Snapshot[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.settleLocked()

	if generation != s.initiated {
		s.countStale()
		return s.current, fmt.Errorf("%s generation %d: %w: %w", s.name, generation, ErrStaleFetch, cause)
	}

	s.current.Err = cause
	slog.WarnContext(ctx, "Snapshot refresh failed, serving previous snapshot",
		"source", s.name,
		"generation", generation,
		"served_generation", s.current.Generation,
		"error", cause)

	return s.current, cause
}

// settleLocked wakes every Load waiting for a fetch to finish
func (s *SnapshotStore[T]) settleLocked() {
	s.inFlight--
	close(s.settled)
	s.settled = make(chan struct{})
}

// Load returns the snapshot to serve. With a max age, a loaded snapshot is
// served as is and refreshed in the background once it is too old. A cold
// store joins a fetch already in flight instead of starting a competing one.
// A failed or superseded refresh still yields the last good snapshot;
// ErrSnapshotUnavailable is returned only when nothing was ever loaded.
func (s *SnapshotStore[T]) Load(ctx context.Context) (Snapshot[T], error) {
	s.mu.Lock()
	current := s.current
	switch {
	case current.Loaded() && s.maxAge > 0:
		if s.now().Sub(current.LoadedAt) >= s.maxAge && !s.background {
			s.background = true
			go s.refreshInBackground()
		}
		s.mu.Unlock()
		return current, nil
	case !current.Loaded() && s.inFlight > 0:
		s.mu.Unlock()
		return s.awaitLoaded(ctx)
	}
	s.mu.Unlock()

	snapshot, err := s.Refresh(ctx)
	if err == nil {
		return snapshot, nil
	}
	if errors.Is(err, ErrStaleFetch) {
		return s.awaitLoaded(ctx)
	}
	if !snapshot.Loaded() {
		return snapshot, fmt.Errorf("%w: %s: %w", ErrSnapshotUnavailable, s.name, err)
	}
	return snapshot, nil
}

// awaitLoaded waits until a snapshot is applied or no fetch is left running
func (s *SnapshotStore[T]) awaitLoaded(ctx context.Context) (Snapshot[T], error) {
	for {
		s.mu.Lock()
		current, inFlight, settled := s.current, s.inFlight, s.settled
		s.mu.Unlock()

		if current.Loaded() {
			return current, nil
		}
		if inFlight == 0 {
			cause := current.Err
			if cause == nil {
				cause = ErrStaleFetch
			}
			return current, fmt.Errorf("%w: %s: %w", ErrSnapshotUnavailable, s.name, cause)
		}

		select {
		case <-settled:
		case <-ctx.Done():
			return current, fmt.Errorf("%w: %s: %w", ErrSnapshotUnavailable, s.name, ctx.Err())
		}
	}
}

func (s *SnapshotStore[T]) refreshInBackground() {
	defer func() {
		s.mu.Lock()
		s.background = false
		s.mu.Unlock()
	}()
	_, _ = s.Refresh(context.Background())
}

// RefreshMeta refreshes and describes the snapshot now being served
func (s *SnapshotStore[T]) RefreshMeta(ctx context.Context) (models.SnapshotMeta, error) {
	snapshot, err := s.Refresh(ctx)
	return snapshot.Meta(s.name), err
}

func (s *SnapshotStore[T]) countFetch(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricSourceFetch, map[string]string{"source": s.name, "status": status})
}

func (s *SnapshotStore[T]) countStale() {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricSourceFetchStale, map[string]string{"source": s.name})
}
