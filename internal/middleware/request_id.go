package middleware

import (
	"net/http"
	"strings"
	"unicode"

	"construction-dashboard/internal/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID tags every request with a trace ID. A well-formed X-Trace-ID from
// the caller is kept, anything else is replaced by a fresh UUID. The ID is
// echoed in the response header, set on the echo context for handlers and
// stored in the request context so service logs carry it too.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := incomingTraceID(req)

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(logging.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

func incomingTraceID(req *http.Request) string {
	traceID := strings.TrimSpace(req.Header.Get(TraceIDHeader))
	if traceID == "" || len(traceID) > maxTraceIDLength || strings.ContainsFunc(traceID, unicode.IsControl) {
		return uuid.NewString()
	}
	return traceID
}

// GetTraceID returns the trace ID set by RequestID, or "" outside of it
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
