package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"construction-dashboard/internal/dto"
	"construction-dashboard/internal/errors"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const maxPreviewBytes = 8 << 20

// ReportHandler serves the dashboard summary and the reports screen
type ReportHandler struct {
	dashboardService services.DashboardServiceInterface
	auditLogger      services.AuditLoggerInterface
	currency         string
	maxPreviewBytes  int64
}

func NewReportHandler(dashboardService services.DashboardServiceInterface, auditLogger services.AuditLoggerInterface, currency string) *ReportHandler {
	return &ReportHandler{
		dashboardService: dashboardService,
		auditLogger:      auditLogger,
		currency:         currency,
		maxPreviewBytes:  maxPreviewBytes,
	}
}

// GetMonthlyOverview returns the chart series and the exact monthly buckets
// @Summary Monthly income and expenses
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.MonthlyOverviewResponse}
// @Failure 503 {object} errors.ErrorResponse "SOURCE_001 - Data source unavailable"
// @Router /dashboard/monthly [get]
func (h *ReportHandler) GetMonthlyOverview(c echo.Context) error {
	overview, err := h.dashboardService.GetMonthlyOverview(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, dto.NewMonthlyOverviewResponse(overview), overview.Snapshot)
}

// GetFinancialReport returns the income statement for one month
// @Summary Financial report
// @Tags Reports
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Success 200 {object} SuccessResponse{data=dto.FinancialReportResponse}
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Invalid period"
// @Failure 503 {object} errors.ErrorResponse "SOURCE_001 - Data source unavailable"
// @Router /reports/financial [get]
func (h *ReportHandler) GetFinancialReport(c echo.Context) error {
	period, err := bindPeriod(c)
	if err != nil {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(validationDetails(err)...))
	}

	result, err := h.dashboardService.GetFinancialReport(c.Request().Context(), period)
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, dto.NewFinancialReportResponse(result.Report, h.currency), result.Snapshot)
}

// ExportFinancialReport downloads the fixed-width text statement
// @Summary Export financial report
// @Tags Reports
// @Produce plain
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Success 200 {string} string "Report document"
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Invalid period"
// @Router /reports/financial/export [get]
func (h *ReportHandler) ExportFinancialReport(c echo.Context) error {
	period, err := bindPeriod(c)
	if err != nil {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(validationDetails(err)...))
	}

	doc, err := h.dashboardService.ExportFinancialReport(c.Request().Context(), period)
	if err != nil {
		return handleServiceError(c, err)
	}

	h.auditLogger.LogExportDownloaded(c.Request().Context(), doc, requesterOf(c))
	return sendDocument(c, doc)
}

// PreviewFinancialReport builds a report over a posted JSON array of records
// instead of the stored ledger
// @Summary Preview financial report
// @Tags Reports
// @Accept json
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Success 200 {object} SuccessResponse{data=dto.FinancialReportResponse}
// @Failure 400 {object} errors.ErrorResponse "DATA_001 - Invalid records or DATA_002 - Invalid payload"
// @Failure 413 {object} errors.ErrorResponse "DATA_003 - Payload too large"
// @Router /reports/financial/preview [post]
func (h *ReportHandler) PreviewFinancialReport(c echo.Context) error {
	period, err := bindPeriod(c)
	if err != nil {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(validationDetails(err)...))
	}

	payload, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.maxPreviewBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return SendError(c, errors.DataPayloadTooLarge,
				errors.WithDetails(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)))
		}
		return SendError(c, errors.DataInvalidPayload, errors.WithDetails("Failed to read request body"))
	}

	result, err := h.dashboardService.PreviewFinancialReport(c.Request().Context(), payload, period)
	h.auditLogger.LogPreviewSubmitted(c.Request().Context(), period, len(payload), requesterOf(c), err)
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, dto.NewFinancialReportResponse(result.Report, h.currency), result.Snapshot)
}

// GetUserListing returns users grouped by type with running totals
// @Summary User listing report
// @Tags Reports
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserListingResponse}
// @Router /reports/users [get]
func (h *ReportHandler) GetUserListing(c echo.Context) error {
	result, err := h.dashboardService.GetUserListing(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, dto.NewUserListingResponse(result.Report), result.Snapshot)
}

// ExportUserListing downloads the user listing as text
// @Summary Export user listing
// @Tags Reports
// @Produce plain
// @Success 200 {string} string "Report document"
// @Router /reports/users/export [get]
func (h *ReportHandler) ExportUserListing(c echo.Context) error {
	doc, err := h.dashboardService.ExportUserListing(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	h.auditLogger.LogExportDownloaded(c.Request().Context(), doc, requesterOf(c))
	return sendDocument(c, doc)
}

func bindPeriod(c echo.Context) (models.Period, error) {
	var query dto.PeriodQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return models.Period{}, fmt.Errorf("year and month must be integers")
	}
	if err := c.Validate(query); err != nil {
		return models.Period{}, err
	}
	return query.Period()
}

func sendDocument(c echo.Context, doc *models.ExportDocument) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	header.Set("X-Snapshot-Generation", fmt.Sprintf("%d", doc.Snapshot.Generation))
	if doc.Snapshot.Stale {
		header.Set("X-Snapshot-Stale", "true")
	}
	if doc.Cached {
		header.Set("X-Cache", "HIT")
	} else {
		header.Set("X-Cache", "MISS")
	}
	return c.String(http.StatusOK, doc.Content)
}
