package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenLimits(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(2, 4)
	frozen := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return frozen }
	handler := limiter.Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		rec := serve(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")

	// half a second refills one token at 2 rps
	frozen = frozen.Add(500 * time.Millisecond)
	rec = serve(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(5, 5).Middleware()(okHandler)

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec := serve(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 10).Middleware()(okHandler)

	var (
		wg             sync.WaitGroup
		mu             sync.Mutex
		successCount   int
		rateLimitCount int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serve(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, successCount, 0)
	assert.Greater(t, rateLimitCount, 0)
	assert.Equal(t, 20, successCount+rateLimitCount)
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	current := start
	limiter.now = func() time.Time { return current }

	limiter.allow("old_ip")
	current = start.Add(5 * time.Minute)
	limiter.allow("new_ip")

	limiter.evictIdle()

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "new_ip")
}

func TestRateLimiter_CleanupStops(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		limiter.Cleanup(time.Millisecond, stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For chain uses the client entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.3"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}
