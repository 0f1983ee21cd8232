package errors

import (
	"fmt"
	"net/http"

	"foodlink/internal/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so values produced by
// WithDetails still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"donation not found",
		"",
	)

	ErrOrganizationNotFound = NewBaseError(
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"organization not found",
		"",
	)

	// ErrInvalidTransition covers both transitions missing from the lifecycle table
	// and transitions that lost a race against a concurrent update.
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"donation status does not allow this action",
		"",
	)

	ErrOrganizationIneligible = NewBaseError(
		http.StatusForbidden,
		"ORGANIZATION_INELIGIBLE",
		"organization cannot accept this donation",
		"",
	)

	ErrNotAssignedOrganization = NewBaseError(
		http.StatusForbidden,
		"NOT_ASSIGNED_ORGANIZATION",
		"donation is not assigned to this organization",
		"",
	)

	ErrNotDonationOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_DONATION_OWNER",
		"only the donor can modify this donation",
		"",
	)

	ErrPickupWindowClosed = NewBaseError(
		http.StatusConflict,
		"PICKUP_WINDOW_CLOSED",
		"pickup deadline has passed",
		"",
	)

	ErrInvalidHandoffToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_HANDOFF_TOKEN",
		"handoff code is invalid or expired",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// NewInvalidTransitionError names the current status and the rejected target.
func NewInvalidTransitionError(current, target string) *BaseError {
	return ErrInvalidTransition.WithDetails(fmt.Sprintf("cannot move donation from %s to %s", current, target))
}

// ShelfLifeViolationError rejects a donation whose timing breaks food-safety rules.
type ShelfLifeViolationError struct {
	reason string
}

// NewShelfLifeViolation creates a shelf-life violation with a human-readable reason.
func NewShelfLifeViolation(reason string) AppError {
	return &ShelfLifeViolationError{reason: reason}
}

// Error implements the error interface
func (e *ShelfLifeViolationError) Error() string {
	return "shelf-life violation: " + e.reason
}

// Reason returns the violated rule.
func (e *ShelfLifeViolationError) Reason() string {
	return e.reason
}

// HTTPCode returns the HTTP status code
func (e *ShelfLifeViolationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ShelfLifeViolationError) ErrorCode() string {
	return "SHELF_LIFE_VIOLATION"
}

// Message returns the user-friendly error message
func (e *ShelfLifeViolationError) Message() string {
	return e.reason
}

// Details returns detailed error information
func (e *ShelfLifeViolationError) Details() string {
	return e.reason
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
