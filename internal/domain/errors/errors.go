package errors

import (
	"net/http"

	"notekeeper/internal/errors"
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

// Predefined error types
var (
	// Auth gate errors
	ErrAuthMissing = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_MISSING",
		"Unauthorized",
		"",
	)

	ErrAuthInvalid = NewBaseError(
		http.StatusForbidden,
		"AUTH_INVALID",
		"Forbidden",
		"",
	)

	// Account errors
	ErrDuplicateUsername = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		"Username already exists!",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password",
		"",
	)

	// ErrUserNotExists is returned when a still-valid token refers to a deleted account.
	ErrUserNotExists = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_EXISTS",
		"User not exists!",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_HASH_FAILED",
		"Error executing registration",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_ISSUE_FAILED",
		"Error issuing token",
		"",
	)

	// Note errors
	ErrNoteNotExists = NewBaseError(
		http.StatusBadRequest,
		"NOTE_NOT_EXISTS",
		"Note not exists!",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// PersistenceError represents a storage failure, implementing the AppError interface.
// Transient and permanent failures are not distinguished.
type PersistenceError struct {
	err     error
	message string
}

// NewPersistenceError creates a storage error carrying the client-facing message.
func NewPersistenceError(err error, message string) AppError {
	return &PersistenceError{
		err:     err,
		message: message,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.err == nil {
		return e.message
	}

	return errors.Wrap(e.err, e.message).Error()
}

// Unwrap exposes the underlying storage error.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_ERROR"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return e.message
}

// Details is always empty so storage internals never reach the client.
func (e *PersistenceError) Details() string {
	return ""
}
