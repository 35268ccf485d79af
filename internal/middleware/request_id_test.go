package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"construction-dashboard/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// serve runs RequestID around a handler that records both trace ID carriers
func (s *RequestIDTestSuite) serve(incoming string) (echoTraceID, ctxTraceID string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/financial", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		echoTraceID = GetTraceID(c)
		ctxTraceID = logging.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return echoTraceID, ctxTraceID, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenMissing() {
	echoTraceID, ctxTraceID, rec := s.serve("")

	s.Regexp(uuidPattern, echoTraceID)
	s.Equal(echoTraceID, ctxTraceID)
	s.Equal(echoTraceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestKeepsCallerTraceID() {
	echoTraceID, ctxTraceID, rec := s.serve("  dashboard-7f3a  ")

	s.Equal("dashboard-7f3a", echoTraceID)
	s.Equal("dashboard-7f3a", ctxTraceID)
	s.Equal("dashboard-7f3a", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedTraceID() {
	tests := []struct {
		name     string
		incoming string
	}{
		{"too long", strings.Repeat("a", maxTraceIDLength+1)},
		{"control characters", "abc\tdef"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			echoTraceID, ctxTraceID, _ := s.serve(tt.incoming)

			s.Regexp(uuidPattern, echoTraceID)
			s.Equal(echoTraceID, ctxTraceID)
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyOutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
