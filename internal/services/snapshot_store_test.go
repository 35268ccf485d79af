package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"construction-dashboard/internal/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type SnapshotStoreTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  *PrometheusMetrics
	ctx      context.Context
}

func TestSnapshotStoreSuite(t *testing.T) {
	suite.Run(t, new(SnapshotStoreTestSuite))
}

func (s *SnapshotStoreTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetrics(s.registry).(*PrometheusMetrics)
	s.ctx = context.Background()
}

func staticFetcher(items ...string) Fetcher[string] {
	return func(ctx context.Context) ([]string, error) {
		return items, nil
	}
}

// scriptedFetcher returns one queued result per call
type scriptedFetcher struct {
	mu      sync.Mutex
	results []fetchResult
}

type fetchResult struct {
	items []string
	err   error
}

func (f *scriptedFetcher) fetch(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.results[0]
	f.results = f.results[1:]
	return next.items, next.err
}

// gatedFetcher blocks each call until its release channel is closed
type gatedFetcher struct {
	started chan int
	gates   []chan struct{}
	results [][]string
	mu      sync.Mutex
	calls   int
}

func newGatedFetcher(results ...[]string) *gatedFetcher {
	g := &gatedFetcher{started: make(chan int, len(results)), results: results}
	for range results {
		g.gates = append(g.gates, make(chan struct{}))
	}
	return g
}

func (g *gatedFetcher) fetch(ctx context.Context) ([]string, error) {
	g.mu.Lock()
	call := g.calls
	g.calls++
	g.mu.Unlock()

	g.started <- call
	<-g.gates[call]
	return g.results[call], nil
}

func (s *SnapshotStoreTestSuite) TestRefresh_AppliesSnapshot() {
	store := NewSnapshotStore("ledger", staticFetcher("a", "b"), nil, s.metrics)

	snap, err := store.Refresh(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, snap.Items)
	s.Equal(uint64(1), snap.Generation)
	s.True(snap.Loaded())
	s.False(snap.Stale())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.sourceFetch.WithLabelValues("ledger", "success")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.snapshotItems.WithLabelValues("ledger")))
}

func (s *SnapshotStoreTestSuite) TestRefresh_FailureKeepsPreviousSnapshot() {
	boom := errors.New("upstream unavailable")
	fetcher := &scriptedFetcher{results: []fetchResult{
		{items: []string{"kept"}},
		{err: boom},
	}}
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, s.metrics)

	_, err := store.Refresh(s.ctx)
	s.Require().NoError(err)

	snap, err := store.Refresh(s.ctx)
	s.ErrorIs(err, boom)
	s.Equal([]string{"kept"}, snap.Items)
	s.Equal(uint64(1), snap.Generation)
	s.True(snap.Stale())

	meta := snap.Meta(store.Name())
	s.True(meta.Stale)
	s.Equal("upstream unavailable", meta.Error)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.sourceFetch.WithLabelValues("ledger", "error")))
}

func (s *SnapshotStoreTestSuite) TestRefresh_SuccessClearsError() {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{err: errors.New("down")},
		{items: []string{"fresh"}},
	}}
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil)

	_, err := store.Refresh(s.ctx)
	s.Error(err)

	snap, err := store.Refresh(s.ctx)
	s.NoError(err)
	s.False(snap.Stale())
	s.Equal(uint64(2), snap.Generation)
}

func (s *SnapshotStoreTestSuite) TestRefresh_OlderFetchResolvingLastIsDiscarded() {
	fetcher := newGatedFetcher([]string{"old"}, []string{"new"})
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, s.metrics)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = store.Refresh(s.ctx)
	}()
	s.Equal(0, <-fetcher.started)

	done := make(chan error, 1)
	go func() {
		_, err := store.Refresh(s.ctx)
		done <- err
	}()
	s.Equal(1, <-fetcher.started)

	close(fetcher.gates[1])
	s.NoError(<-done)

	close(fetcher.gates[0])
	wg.Wait()

	s.ErrorIs(firstErr, ErrStaleFetch)
	s.Equal([]string{"new"}, store.Current().Items)
	s.Equal(uint64(2), store.Current().Generation)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.sourceFetchStale.WithLabelValues("ledger")))
}

func (s *SnapshotStoreTestSuite) TestRefresh_OlderFetchResolvingFirstIsDiscarded() {
	fetcher := newGatedFetcher([]string{"old"}, []string{"new"})
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil)

	first := make(chan error, 1)
	go func() {
		_, err := store.Refresh(s.ctx)
		first <- err
	}()
	s.Equal(0, <-fetcher.started)

	second := make(chan error, 1)
	go func() {
		_, err := store.Refresh(s.ctx)
		second <- err
	}()
	s.Equal(1, <-fetcher.started)

	close(fetcher.gates[0])
	s.ErrorIs(<-first, ErrStaleFetch)
	s.False(store.Current().Loaded())

	close(fetcher.gates[1])
	s.NoError(<-second)
	s.Equal([]string{"new"}, store.Current().Items)
}

func (s *SnapshotStoreTestSuite) TestRefresh_OpenBreakerFailsFast() {
	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return nil, errors.New("down")
	}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{Name: "ledger", MaxFailures: 2, ResetTimeout: time.Hour}, s.metrics)
	store := NewSnapshotStore("ledger", fetch, breaker, s.metrics)

	for i := 0; i < 2; i++ {
		_, err := store.Refresh(s.ctx)
		s.Error(err)
	}
	s.Equal(StateOpen, breaker.GetState())

	_, err := store.Refresh(s.ctx)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Equal(2, calls)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.sourceFetch.WithLabelValues("ledger", "circuit_open")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.circuitBreakerState.WithLabelValues("ledger")))
}

func (s *SnapshotStoreTestSuite) TestLoad_NothingLoadedIsUnavailable() {
	boom := errors.New("no route to host")
	store := NewSnapshotStore("ledger", func(ctx context.Context) ([]string, error) {
		return nil, boom
	}, nil, nil)

	_, err := store.Load(s.ctx)

	s.ErrorIs(err, ErrSnapshotUnavailable)
	s.ErrorIs(err, boom)
}

func (s *SnapshotStoreTestSuite) TestLoad_FailSoftAfterFirstSuccess() {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{items: []string{"a"}},
		{err: errors.New("timeout")},
	}}
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil)

	_, err := store.Load(s.ctx)
	s.Require().NoError(err)

	snap, err := store.Load(s.ctx)
	s.NoError(err)
	s.Equal([]string{"a"}, snap.Items)
	s.True(snap.Stale())
}

func (s *SnapshotStoreTestSuite) TestRefreshMeta_DescribesServedSnapshot() {
	var refresher Refresher = NewSnapshotStore("employees", staticFetcher("ada", "bo", "cy"), nil, nil)

	meta, err := refresher.RefreshMeta(context.Background())

	s.Require().NoError(err)
	s.Equal("employees", meta.Source)
	s.Equal(uint64(1), meta.Generation)
	s.False(meta.Stale)
}

func (s *SnapshotStoreTestSuite) TestLoad_SupersededColdFetchWaitsForNewerGeneration() {
	fetcher := newGatedFetcher([]string{"old"}, []string{"new"})
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil)

	type loadResult struct {
		snap Snapshot[string]
		err  error
	}
	loaded := make(chan loadResult, 1)
	go func() {
		snap, err := store.Load(s.ctx)
		loaded <- loadResult{snap, err}
	}()
	s.Equal(0, <-fetcher.started)

	refreshed := make(chan error, 1)
	go func() {
		_, err := store.Refresh(s.ctx)
		refreshed <- err
	}()
	s.Equal(1, <-fetcher.started)

	close(fetcher.gates[0])
	select {
	case res := <-loaded:
		s.Failf("load returned before the newer fetch finished", "err: %v", res.err)
	case <-time.After(50 * time.Millisecond):
	}

	close(fetcher.gates[1])
	s.NoError(<-refreshed)

	res := <-loaded
	s.Require().NoError(res.err)
	s.Equal([]string{"new"}, res.snap.Items)
	s.Equal(uint64(2), res.snap.Generation)
}

func (s *SnapshotStoreTestSuite) TestLoad_ConcurrentColdLoadsShareOneFetch() {
	fetcher := newGatedFetcher([]string{"only"})
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil, WithMaxAge(time.Hour))

	const requests = 5
	errs := make(chan error, requests)
	items := make(chan []string, requests)
	go func() {
		snap, err := store.Load(s.ctx)
		errs <- err
		items <- snap.Items
	}()
	s.Equal(0, <-fetcher.started)

	var wg sync.WaitGroup
	for i := 1; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := store.Load(s.ctx)
			errs <- err
			items <- snap.Items
		}()
	}

	close(fetcher.gates[0])
	wg.Wait()

	for i := 0; i < requests; i++ {
		s.NoError(<-errs)
		s.Equal([]string{"only"}, <-items)
	}
	s.Equal(1, fetcher.calls)
}

func (s *SnapshotStoreTestSuite) TestLoad_WaitingColdLoadHonoursContext() {
	fetcher := newGatedFetcher([]string{"late"})
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil)

	go func() { _, _ = store.Load(s.ctx) }()
	s.Equal(0, <-fetcher.started)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := store.Load(ctx)

	s.ErrorIs(err, ErrSnapshotUnavailable)
	s.ErrorIs(err, context.Canceled)
	close(fetcher.gates[0])
}

func (s *SnapshotStoreTestSuite) TestLoad_MaxAgeServesCachedThenRefreshesInBackground() {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{items: []string{"first"}},
		{items: []string{"second"}},
	}}
	store := NewSnapshotStore("ledger", fetcher.fetch, nil, nil, WithMaxAge(time.Minute))
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	snap, err := store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"first"}, snap.Items)

	snap, err = store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), snap.Generation)

	store.mu.Lock()
	clock = clock.Add(2 * time.Minute)
	store.mu.Unlock()

	snap, err = store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"first"}, snap.Items)

	s.Eventually(func() bool {
		return store.Current().Generation == 2
	}, time.Second, 5*time.Millisecond)
	s.Equal([]string{"second"}, store.Current().Items)
}

func (s *SnapshotStoreTestSuite) TestRefresh_LogsRequestTraceID() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(logging.NewContextHandler(slog.NewJSONHandler(&buf, nil))))
	defer slog.SetDefault(previous)

	store := NewSnapshotStore("ledger", staticFetcher("a"), nil, nil)
	_, err := store.Refresh(logging.WithTraceID(s.ctx, "trace-77"))

	s.Require().NoError(err)
	s.Contains(buf.String(), `"msg":"Snapshot refreshed"`)
	s.Contains(buf.String(), `"trace_id":"trace-77"`)
}
