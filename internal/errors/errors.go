// Package errors provides custom error types for the bond desk API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrRateLimited    = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrPayloadTooBig  = &AppError{Code: "PAYLOAD_TOO_LARGE", Message: "Uploaded file is too large", StatusCode: http.StatusRequestEntityTooLarge}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Security catalog errors.
var (
	ErrSecurityNotFound    = &AppError{Code: "SECURITY_NOT_FOUND", Message: "Security not found", StatusCode: http.StatusNotFound}
	ErrInvalidIdentifier   = &AppError{Code: "INVALID_IDENTIFIER", Message: "Identifier must be a full ISIN (CC0000000000) or a short code (CC0000)", StatusCode: http.StatusBadRequest}
	ErrSecurityInactive    = &AppError{Code: "SECURITY_INACTIVE", Message: "Security is no longer active", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidImportFile   = &AppError{Code: "INVALID_IMPORT_FILE", Message: "Import file could not be parsed", StatusCode: http.StatusBadRequest}
	ErrEmptyImport         = &AppError{Code: "EMPTY_IMPORT", Message: "Import contains no securities", StatusCode: http.StatusBadRequest}
	ErrInvalidCountryCode  = &AppError{Code: "INVALID_COUNTRY_CODE", Message: "Unknown UMOA country code", StatusCode: http.StatusBadRequest}
)

// Yield curve errors.
var (
	ErrCurveNotFound = &AppError{Code: "CURVE_NOT_FOUND", Message: "No yield curve for this country", StatusCode: http.StatusNotFound}
	ErrEmptyCurve    = &AppError{Code: "EMPTY_CURVE", Message: "Yield curve contains no points", StatusCode: http.StatusBadRequest}
)

// Pricing errors.
var (
	ErrInvalidPrice       = &AppError{Code: "INVALID_PRICE", Message: "Price must be greater than 0 and at most 200", StatusCode: http.StatusBadRequest}
	ErrInvalidDateRange   = &AppError{Code: "INVALID_DATE_RANGE", Message: "Invalid settlement or security dates", StatusCode: http.StatusBadRequest}
	ErrSecurityMatured    = &AppError{Code: "SECURITY_MATURED", Message: "Security has matured at the settlement date", StatusCode: http.StatusUnprocessableEntity}
	ErrYieldNotConvergent = &AppError{Code: "YIELD_NOT_CONVERGENT", Message: "Yield could not be computed for this price", StatusCode: http.StatusUnprocessableEntity}
)
