package handlers

import (
	stderrors "errors"
	"log/slog"

	"construction-dashboard/internal/errors"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"
	"construction-dashboard/internal/viewstate"

	"github.com/labstack/echo/v4"
)

// handleServiceError maps service and domain errors onto API error codes.
// Anything unrecognised is a system error.
func handleServiceError(c echo.Context, err error) error {
	var dataErrs models.DataErrors
	var dataErr *models.DataError

	switch {
	case stderrors.As(err, &dataErrs):
		if len(dataErrs) == 1 && dataErrs[0].Index < 0 {
			return SendError(c, errors.DataInvalidPayload, errors.WithDetails(dataErrs.Details()...))
		}
		return SendError(c, errors.DataInvalidRecord, errors.WithDetails(dataErrs.Details()...))
	case stderrors.As(err, &dataErr):
		return SendError(c, errors.DataInvalidRecord, errors.WithDetails(dataErr.Error()))

	case stderrors.Is(err, models.ErrInvalidPeriod):
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(err.Error()))

	case stderrors.Is(err, viewstate.ErrUnknownField):
		return SendError(c, errors.ViewUnknownField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, viewstate.ErrInvalidPageSize):
		return SendError(c, errors.ViewInvalidPageSize, errors.WithDetails(err.Error()))
	case stderrors.Is(err, viewstate.ErrInvalidDirection):
		return SendError(c, errors.ViewInvalidDirection, errors.WithDetails(err.Error()))

	case stderrors.Is(err, services.ErrCircuitBreakerOpen):
		slog.Warn("Source circuit open", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SourceCircuitOpen)
	case stderrors.Is(err, services.ErrSnapshotUnavailable):
		slog.Warn("Source unavailable", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SourceUnavailable)
	}

	slog.Error("Unhandled service error",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"error", err)
	return SendSystemError(c, err)
}
