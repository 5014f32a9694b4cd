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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Resource errors
	ErrUnknownKind ErrorCode = "UNKNOWN_KIND"
	ErrCSLParse    ErrorCode = "CSL_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// PandocError represents a structured error with code and details
type PandocError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PandocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PandocError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *PandocError carrying the same code
func (e *PandocError) Is(target error) bool {
	var targetErr *PandocError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PandocError with the given code and message
func New(code ErrorCode, message string) *PandocError {
	return &PandocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PandocError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PandocError {
	return &PandocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PandocError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PandocError {
	if err == nil {
		return nil
	}
	return &PandocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PandocError {
	if err == nil {
		return nil
	}
	return &PandocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PandocError) WithDetail(key string, value interface{}) *PandocError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pandocErr *PandocError
	if errors.As(err, &pandocErr) {
		return pandocErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PandocError
func GetErrorCode(err error) ErrorCode {
	var pandocErr *PandocError
	if errors.As(err, &pandocErr) {
		return pandocErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PandocError
func GetErrorDetails(err error) map[string]interface{} {
	var pandocErr *PandocError
	if errors.As(err, &pandocErr) {
		return pandocErr.Details
	}
	return nil
}
