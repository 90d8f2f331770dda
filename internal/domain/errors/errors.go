// Package errors defines the application-level error taxonomy. Every
// failure a use case can produce is one of the predeclared values below;
// the delivery layer translates them into HTTP statuses and user-safe
// messages without ever echoing internal details.
package errors

import (
	"net/http"

	"farmgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The wire messages match the boundary contract
// the front end was built against.
var (
	// ErrValidation is returned when client input is incomplete.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"All fields are required",
		"",
	)

	// ErrDuplicateAccount is returned when the signup email already exists.
	ErrDuplicateAccount = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_ACCOUNT",
		"User already exists",
		"",
	)

	// ErrInvalidCredentials merges "no such account" and "wrong password"
	// into one externally observable outcome.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// ErrMissingToken is returned when a protected request carries no
	// session cookie.
	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Unauthorized",
		"",
	)

	// ErrInvalidToken covers signature mismatch, malformed structure and
	// expiry.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid Token",
		"",
	)

	// ErrAccountNotFound is returned when a gate-resolved identity no
	// longer matches any stored record.
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"User not found",
		"",
	)

	// ErrStoreUnavailable signals an I/O failure on the credential store.
	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"Service temporarily unavailable",
		"",
	)

	// ErrInternalError is the catch-all for unclassified failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
