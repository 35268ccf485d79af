package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Data error codes (DATA_*) for malformed transaction records
const (
	DataInvalidRecord   ErrorCode = "DATA_001"
	DataInvalidPayload  ErrorCode = "DATA_002"
	DataPayloadTooLarge ErrorCode = "DATA_003"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod ErrorCode = "REPORT_001"
	ReportNotFound      ErrorCode = "REPORT_002"
)

// View state error codes (VIEW_*)
const (
	ViewUnknownField     ErrorCode = "VIEW_001"
	ViewInvalidPageSize  ErrorCode = "VIEW_002"
	ViewInvalidDirection ErrorCode = "VIEW_003"
	ViewUnknownScreen    ErrorCode = "VIEW_004"
)

// Data source error codes (SOURCE_*)
const (
	SourceUnavailable ErrorCode = "SOURCE_001"
	SourceCircuitOpen ErrorCode = "SOURCE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Data errors
	DataInvalidRecord:   "One or more transaction records are invalid",
	DataInvalidPayload:  "Transaction payload must be a JSON array of records",
	DataPayloadTooLarge: "Transaction payload exceeds the maximum allowed size",

	// Report errors
	ReportInvalidPeriod: "Invalid report period",
	ReportNotFound:      "Report not found",

	// View state errors
	ViewUnknownField:     "Unknown list field",
	ViewInvalidPageSize:  "Page size must be at least 1",
	ViewInvalidDirection: "Sort direction must be asc or desc",
	ViewUnknownScreen:    "Unknown list screen",

	// Source errors
	SourceUnavailable: "Data source is unavailable and no previous data is loaded",
	SourceCircuitOpen: "Data source is temporarily disabled after repeated failures",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
