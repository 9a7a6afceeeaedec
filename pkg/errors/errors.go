package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store errors
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrPermission       ErrorCode = "PERMISSION"
	ErrStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrEncoding         ErrorCode = "ENCODING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// UserenvError represents a structured error with code and details
type UserenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UserenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UserenvError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a UserenvError with the same code
func (e *UserenvError) Is(target error) bool {
	var targetErr *UserenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UserenvError with the given code and message
func New(code ErrorCode, message string) *UserenvError {
	return &UserenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UserenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UserenvError {
	return &UserenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UserenvError
func Wrap(err error, code ErrorCode, message string) *UserenvError {
	if err == nil {
		return nil
	}
	return &UserenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UserenvError {
	if err == nil {
		return nil
	}
	return &UserenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UserenvError) WithDetail(key string, value interface{}) *UserenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *UserenvError) WithDetails(details map[string]interface{}) *UserenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var uerr *UserenvError
	if errors.As(err, &uerr) {
		return uerr.Code == code
	}
	return false
}

// IsNotFound is shorthand for IsErrorCode(err, ErrNotFound)
func IsNotFound(err error) bool {
	return IsErrorCode(err, ErrNotFound)
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a UserenvError
func GetErrorCode(err error) ErrorCode {
	var uerr *UserenvError
	if errors.As(err, &uerr) {
		return uerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a UserenvError
func GetErrorDetails(err error) map[string]interface{} {
	var uerr *UserenvError
	if errors.As(err, &uerr) {
		return uerr.Details
	}
	return nil
}
