package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apierrors "construction-dashboard/internal/errors"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"
	"construction-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockDashboardServiceInterface
	mockAudit   *service_mocks.MockAuditLoggerInterface
	handler     *ReportHandler
	echo        *echo.Echo
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerSuite))
}

func (s *ReportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockService, s.mockAudit, "USD")
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *ReportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *ReportHandlerSuite) decodeError(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var resp apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func snapshotMeta() models.SnapshotMeta {
	return models.SnapshotMeta{
		Source:     "transactions",
		Generation: 3,
		LoadedAt:   time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC),
	}
}

func januaryReport() *models.FinancialReport {
	period, _ := models.NewPeriod(2025, 1)
	return &models.FinancialReport{
		Period: period,
		IncomeLines: []models.Transaction{{
			ProjectID:       "PRJ-001",
			ProjectName:     "Riverside Tower",
			TransactionType: models.TransactionTypeClientPayment,
			Amount:          decimal.NewFromInt(1000),
			TransactionDate: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		}},
		ExpenseLines:  []models.Transaction{},
		TotalIncome:   decimal.NewFromInt(1000),
		TotalExpenses: decimal.Zero,
		NetResult:     decimal.NewFromInt(1000),
		ResultLabel:   models.ResultProfit,
	}
}

func (s *ReportHandlerSuite) TestGetMonthlyOverview_Success() {
	period, _ := models.NewPeriod(2025, 1)
	series := &models.MonthlySeries{Buckets: []models.MonthlyBucket{{
		PeriodKey:    period.Key(),
		DisplayLabel: period.Label(),
		Income:       decimal.NewFromInt(2500),
		Expenses:     decimal.NewFromInt(400),
	}}}
	s.mockService.EXPECT().GetMonthlyOverview(gomock.Any()).Return(&models.MonthlyOverview{
		Series:   series,
		Chart:    series.Chart(decimal.NewFromInt(1000)),
		Snapshot: snapshotMeta(),
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/monthly", "")
	s.Require().NoError(s.handler.GetMonthlyOverview(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Chart   []models.ChartPoint `json:"chart"`
			Buckets []struct {
				Period string `json:"period"`
				Net    string `json:"net"`
			} `json:"buckets"`
		} `json:"data"`
		Meta ResponseMeta `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal([]models.ChartPoint{{Name: "Jan", Income: 3, Expenses: 0}}, body.Data.Chart)
	s.Equal("2100.00", body.Data.Buckets[0].Net)
	s.Equal(uint64(3), body.Meta.Snapshot.Generation)
}

func (s *ReportHandlerSuite) TestGetMonthlyOverview_SourceUnavailable() {
	s.mockService.EXPECT().GetMonthlyOverview(gomock.Any()).
		Return(nil, fmt.Errorf("%w: transactions: connection refused", services.ErrSnapshotUnavailable))

	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/monthly", "")
	s.Require().NoError(s.handler.GetMonthlyOverview(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.SourceUnavailable), resp.Error.Code)
	s.Equal("trace-123", resp.Error.TraceID)
}

func (s *ReportHandlerSuite) TestGetMonthlyOverview_CircuitOpen() {
	s.mockService.EXPECT().GetMonthlyOverview(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", services.ErrSnapshotUnavailable, services.ErrCircuitBreakerOpen))

	c, rec := s.newContext(http.MethodGet, "/api/v1/dashboard/monthly", "")
	s.Require().NoError(s.handler.GetMonthlyOverview(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(string(apierrors.SourceCircuitOpen), s.decodeError(rec).Error.Code)
}

func (s *ReportHandlerSuite) TestGetFinancialReport_Success() {
	period, _ := models.NewPeriod(2025, 1)
	s.mockService.EXPECT().GetFinancialReport(gomock.Any(), period).Return(&models.FinancialReportResult{
		Report:   januaryReport(),
		Snapshot: snapshotMeta(),
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/financial?year=2025&month=1", "")
	s.Require().NoError(s.handler.GetFinancialReport(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Period      string `json:"period"`
			Currency    string `json:"currency"`
			NetResult   string `json:"netResult"`
			ResultLabel string `json:"resultLabel"`
			IncomeLines []struct {
				Amount          string `json:"amount"`
				TransactionDate string `json:"transactionDate"`
			} `json:"incomeLines"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("2025-01", body.Data.Period)
	s.Equal("USD", body.Data.Currency)
	s.Equal("1000.00", body.Data.NetResult)
	s.Equal("PROFIT", body.Data.ResultLabel)
	s.Equal("2025-01-05", body.Data.IncomeLines[0].TransactionDate)
}

func (s *ReportHandlerSuite) TestGetFinancialReport_InvalidPeriod() {
	testCases := []struct {
		name   string
		target string
	}{
		{name: "missing month", target: "/api/v1/reports/financial?year=2025"},
		{name: "month out of range", target: "/api/v1/reports/financial?year=2025&month=13"},
		{name: "non numeric year", target: "/api/v1/reports/financial?year=abc&month=1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodGet, tc.target, "")
			s.Require().NoError(s.handler.GetFinancialReport(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			resp := s.decodeError(rec)
			s.Equal(string(apierrors.ReportInvalidPeriod), resp.Error.Code)
			s.NotEmpty(resp.Error.Details)
		})
	}
}

func (s *ReportHandlerSuite) TestExportFinancialReport_Download() {
	period, _ := models.NewPeriod(2025, 3)
	s.mockService.EXPECT().ExportFinancialReport(gomock.Any(), period).Return(&models.ExportDocument{
		Filename: "financial_report_2025_03.txt",
		Content:  "FINANCIAL REPORT\n",
		Cached:   true,
		Snapshot: models.SnapshotMeta{Generation: 7, Stale: true},
	}, nil)
	s.mockAudit.EXPECT().LogExportDownloaded(gomock.Any(), gomock.Any(), services.Requester{
		TraceID:  "trace-123",
		ClientIP: "203.0.113.9",
	})

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/financial/export?year=2025&month=3", "")
	c.Request().Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	s.Require().NoError(s.handler.ExportFinancialReport(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("FINANCIAL REPORT\n", rec.Body.String())
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/plain")
	s.Equal(`attachment; filename="financial_report_2025_03.txt"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal("HIT", rec.Header().Get("X-Cache"))
	s.Equal("true", rec.Header().Get("X-Snapshot-Stale"))
	s.Equal("7", rec.Header().Get("X-Snapshot-Generation"))
}

func (s *ReportHandlerSuite) TestPreviewFinancialReport_Success() {
	payload := `[{"projectId":"PRJ-001","projectName":"Riverside Tower","transactionType":"Client Payment","amount":1000,"transactionDate":"2025-01-05"}]`
	period, _ := models.NewPeriod(2025, 1)
	s.mockService.EXPECT().PreviewFinancialReport(gomock.Any(), []byte(payload), period).Return(&models.FinancialReportResult{
		Report:   januaryReport(),
		Snapshot: models.SnapshotMeta{Source: "preview"},
	}, nil)
	s.mockAudit.EXPECT().LogPreviewSubmitted(gomock.Any(), period, len(payload), gomock.Any(), nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/reports/financial/preview?year=2025&month=1", payload)
	s.Require().NoError(s.handler.PreviewFinancialReport(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerSuite) TestPreviewFinancialReport_InvalidRecords() {
	s.mockService.EXPECT().PreviewFinancialReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.DataErrors{
		{Index: 0, Field: "amount", Reason: "must not be negative"},
		{Index: 2, Field: "transactionDate", Reason: "must be a calendar date (YYYY-MM-DD)"},
	})
	s.mockAudit.EXPECT().LogPreviewSubmitted(gomock.Any(), gomock.Any(), 2, gomock.Any(), gomock.Not(nil))

	c, rec := s.newContext(http.MethodPost, "/api/v1/reports/financial/preview?year=2025&month=1", `[]`)
	s.Require().NoError(s.handler.PreviewFinancialReport(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.DataInvalidRecord), resp.Error.Code)
	s.Equal([]string{
		"record 0: amount: must not be negative",
		"record 2: transactionDate: must be a calendar date (YYYY-MM-DD)",
	}, resp.Error.Details)
}

func (s *ReportHandlerSuite) TestPreviewFinancialReport_NotAnArray() {
	s.mockService.EXPECT().PreviewFinancialReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.DataErrors{
		{Index: -1, Reason: "payload must be a JSON array of transaction records"},
	})
	s.mockAudit.EXPECT().LogPreviewSubmitted(gomock.Any(), gomock.Any(), 2, gomock.Any(), gomock.Any())

	c, rec := s.newContext(http.MethodPost, "/api/v1/reports/financial/preview?year=2025&month=1", `{}`)
	s.Require().NoError(s.handler.PreviewFinancialReport(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.DataInvalidPayload), s.decodeError(rec).Error.Code)
}

func (s *ReportHandlerSuite) TestPreviewFinancialReport_OversizedBodyIsRejected() {
	s.handler.maxPreviewBytes = 64
	body := `[` + strings.Repeat(`{"projectId": "PRJ-001"},`, 10) + `{}]`

	c, rec := s.newContext(http.MethodPost, "/api/v1/reports/financial/preview?year=2025&month=1", body)
	s.Require().NoError(s.handler.PreviewFinancialReport(c))

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.DataPayloadTooLarge), resp.Error.Code)
	s.Equal([]string{"Request body exceeds 64 bytes"}, resp.Error.Details)
}

func (s *ReportHandlerSuite) TestPreviewFinancialReport_BodyAtLimitIsAccepted() {
	body := `[]`
	s.handler.maxPreviewBytes = int64(len(body))
	s.mockService.EXPECT().PreviewFinancialReport(gomock.Any(), []byte(body), gomock.Any()).
		Return(&models.FinancialReportResult{Report: januaryReport(), Snapshot: snapshotMeta()}, nil)
	s.mockAudit.EXPECT().LogPreviewSubmitted(gomock.Any(), gomock.Any(), len(body), gomock.Any(), nil)

	c, rec := s.newContext(http.MethodPost, "/api/v1/reports/financial/preview?year=2025&month=1", body)
	s.Require().NoError(s.handler.PreviewFinancialReport(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerSuite) TestGetUserListing() {
	s.mockService.EXPECT().GetUserListing(gomock.Any()).Return(&models.UserListingResult{
		Report: &models.UserListingReport{
			Groups: []models.UserTypeGroup{{
				UserType:     models.UserTypeAdmin,
				Users:        []models.User{{Name: "Ana Costa", Email: "ana@example.com", UserType: models.UserTypeAdmin}},
				Count:        1,
				RunningTotal: 1,
			}},
			GrandTotal: 1,
		},
		Snapshot: models.SnapshotMeta{Source: "users", Generation: 1},
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/users", "")
	s.Require().NoError(s.handler.GetUserListing(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"grandTotal":1`)
	s.Contains(rec.Body.String(), `"userType":"Admin"`)
}

func (s *ReportHandlerSuite) TestExportUserListing_UnexpectedError() {
	s.mockService.EXPECT().ExportUserListing(gomock.Any()).Return(nil, errors.New("boom"))

	c, rec := s.newContext(http.MethodGet, "/api/v1/reports/users/export", "")
	s.Require().NoError(s.handler.ExportUserListing(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.SystemInternalError), resp.Error.Code)
	s.NotContains(rec.Body.String(), "boom")
}
