package handlers

import (
	"net/http"

	"construction-dashboard/internal/errors"
	"construction-dashboard/internal/models"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and data source errors (4xx and 503 responses)
//    Use cases:
//    - Query validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Malformed transaction records: SendError(c, errors.DataInvalidRecord, errors.WithDetails(...))
//    - List view errors: SendError(c, errors.ViewUnknownField)
//    - Source outages: SendError(c, errors.SourceUnavailable)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Unexpected errors from services
//    - Errors that should not expose internal details to client
//
// Service errors should go through handleServiceError, which applies both.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ResponseMeta tells the client which snapshot the data was derived from
type ResponseMeta struct {
	Snapshot models.SnapshotMeta `json:"snapshot"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendData wraps data in the success envelope with its snapshot metadata
func sendData(c echo.Context, data interface{}, snapshot models.SnapshotMeta) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: ResponseMeta{Snapshot: snapshot},
	})
}
