// Package errors defines the application error model shared by all layers.
package errors

import (
	"net/http"

	"tavolo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Redirecter is implemented by errors that should be recovered at the HTTP
// boundary into a redirect instead of an error payload. Guard and ownership
// failures carry their destination this way.
type Redirecter interface {
	Location() string
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

// RedirectError is an AppError that additionally carries a redirect location.
// The HTTP layer answers these with 303 See Other instead of an error body,
// matching the recover-into-redirect behavior the application exposes.
type RedirectError struct {
	*BaseError
	location string
}

// NewRedirectError creates an error that redirects to location at the boundary.
func NewRedirectError(errorCode, message, location string) *RedirectError {
	return &RedirectError{
		BaseError: NewBaseError(http.StatusSeeOther, errorCode, message, ""),
		location:  location,
	}
}

// Location returns the redirect destination.
func (e *RedirectError) Location() string {
	return e.location
}

// Redirect destinations used by guards and ownership checks.
const (
	MemberLoginPath        = "/auth/login"
	AdminLoginPath         = "/admin/auth/login"
	AdminHomePath          = "/admin"
	SubscriptionCreatePath = "/subscription/create"
	SubscriptionEditPath   = "/subscription/edit"
	ReservationIndexPath   = "/reservations"
	MemberProfilePath      = "/user"
)

// Predefined error types
var (
	// Admission failures. Each resolves into a redirect at the boundary.
	ErrAuthenticationRequired = NewRedirectError(
		"AUTHENTICATION_REQUIRED",
		"please log in to continue",
		MemberLoginPath,
	)

	ErrAdminAuthenticationRequired = NewRedirectError(
		"ADMIN_AUTHENTICATION_REQUIRED",
		"please log in as an administrator to continue",
		AdminLoginPath,
	)

	ErrWrongPrincipalKind = NewRedirectError(
		"WRONG_PRINCIPAL_KIND",
		"this area is not available for your account",
		AdminHomePath,
	)

	ErrSubscriptionRequired = NewRedirectError(
		"SUBSCRIPTION_REQUIRED",
		"a paid subscription is required",
		SubscriptionCreatePath,
	)

	ErrAlreadySubscribed = NewRedirectError(
		"ALREADY_SUBSCRIBED",
		"you already hold an active subscription",
		SubscriptionEditPath,
	)

	// Record-level failures.
	ErrReservationOwnership = NewRedirectError(
		"OWNERSHIP_VIOLATION",
		"invalid access",
		ReservationIndexPath,
	)

	ErrProfileOwnership = NewRedirectError(
		"OWNERSHIP_VIOLATION",
		"invalid access",
		MemberProfilePath,
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Member-related errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"member not found",
		"",
	)

	ErrMemberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MEMBER_ALREADY_EXISTS",
		"this email address is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Billing-collaborator failures must surface as hard errors, never as a
	// silent "not subscribed": masking them would grant or deny access wrongly.
	ErrBillingUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BILLING_UNAVAILABLE",
		"the billing provider could not be reached",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// ReviewOwnership returns the ownership-violation error for a review, which
// redirects back to the restaurant's review index with no mutation performed.
func ReviewOwnership(restaurantPath string) *RedirectError {
	return NewRedirectError("OWNERSHIP_VIOLATION", "invalid access", restaurantPath)
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
