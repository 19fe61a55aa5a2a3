package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Content errors
var (
	ErrRealmNotFound        = errors.New("realm not found")
	ErrSectionNotFound      = errors.New("section not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryExists       = errors.New("category already exists")
	ErrDefaultCategory      = errors.New("the default category cannot be removed")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrStorageUnavailable   = errors.New("content storage unavailable")
	ErrUpstreamUnavailable  = errors.New("upstream API unavailable")
	ErrImageRejected        = errors.New("image rejected")
)

// Edit flow errors
var (
	ErrNotEditing          = errors.New("page is not in edit mode")
	ErrEditSessionNotFound = errors.New("edit session not found")
	ErrInvalidTransition   = errors.New("invalid edit state transition")
	ErrPasswordMismatch    = errors.New("incorrect password")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
