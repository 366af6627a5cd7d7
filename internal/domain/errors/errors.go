// Package errors defines the application error taxonomy shared between the
// usecase layer and the HTTP delivery.
package errors

import (
	"net/http"

	"cofipos/internal/errors"
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

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductInvalid = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_INVALID",
		"Product data failed validation",
		"",
	)

	// Cart-related errors
	ErrCartSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_SESSION_NOT_FOUND",
		"Cart session not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_EMPTY",
		"Cart has no items",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough stock for this product",
		"",
	)

	ErrPoolDepleted = NewBaseError(
		http.StatusConflict,
		"POOL_DEPLETED",
		"Event cup pool is depleted",
		"",
	)

	// Event pool errors
	ErrEventConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_CONFIG_NOT_FOUND",
		"No event has been configured",
		"",
	)

	ErrEventCapacityInvalid = NewBaseError(
		http.StatusBadRequest,
		"EVENT_CAPACITY_INVALID",
		"Event capacity must be a positive number of cups",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrCustomerNameRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"CUSTOMER_NAME_REQUIRED",
		"Customer name must not be blank",
		"",
	)

	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid credentials",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Email address has not been verified",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Insight errors
	ErrInsightsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"INSIGHTS_UNAVAILABLE",
		"Insight generation is not configured",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// StoreExecuteError represents a document store failure, implementing the
// AppError interface. Persistence failures propagate to the caller; the core
// never retries on its own.
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a document-store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Document store operation failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}
