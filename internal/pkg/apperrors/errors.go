package apperrors

import (
	"errors"
	"fmt"
)

// Code is the machine-checkable classification of a failed operation
type Code string

const (
	CodeValidation   Code = "VALIDATION"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeInvalidState Code = "INVALID_STATE"
	// CodeStatusSync marks the distinct partial-update condition of the
	// verification decide flow: the decision could not be synced onto the
	// owning profile.
	CodeStatusSync Code = "STATUS_SYNC_FAILED"
	CodeInternal   Code = "INTERNAL"
)

// AppError carries a code for callers and a message for humans
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with the given code and message
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap builds an AppError around an underlying cause
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation reports malformed or illegal-combination input
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Validationf reports malformed input with a formatted message
func Validationf(format string, args ...interface{}) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

// NotFound reports an unknown identity or record
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// Conflict reports a uniqueness or duplicate-pending violation
func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

// Unauthorized reports a missing or invalid identity credential
func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

// InvalidState reports an operation against a record in a terminal state
func InvalidState(message string) *AppError {
	return New(CodeInvalidState, message)
}

// StatusSync reports the verification-decided-but-profile-not-synced
// condition so operators can reconcile it
func StatusSync(message string, err error) *AppError {
	return Wrap(CodeStatusSync, message, err)
}

// Internal wraps a storage or infrastructure failure
func Internal(message string, err error) *AppError {
	return Wrap(CodeInternal, message, err)
}

// CodeOf extracts the code from err, or CodeInternal when err carries none
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message from err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// IsCode reports whether err carries the given code
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
