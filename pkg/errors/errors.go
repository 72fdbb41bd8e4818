// Package errors defines the structured error type shared by every
// slideshow component and the mapping from error codes to process exit
// codes.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Templates
	ErrUnknownManifest ErrorCode = "UNKNOWN_MANIFEST"
	ErrFetch           ErrorCode = "FETCH"

	// Plugins
	ErrPluginLoad    ErrorCode = "PLUGIN_LOAD"
	ErrPluginInvalid ErrorCode = "PLUGIN_INVALID"

	// Build
	ErrNoRenderer ErrorCode = "NO_RENDERER"
	ErrBuild      ErrorCode = "BUILD"

	// Filesystem
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// Process exit codes
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUnknownManifest = 2
	ExitFetch           = 3
	ExitUsage           = 64
)

// SlideshowError is a structured error with a stable code and details
type SlideshowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SlideshowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SlideshowError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SlideshowError carrying the same code
func (e *SlideshowError) Is(target error) bool {
	var targetErr *SlideshowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SlideshowError with the given code and message
func New(code ErrorCode, message string) *SlideshowError {
	return &SlideshowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SlideshowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SlideshowError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *SlideshowError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SlideshowError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SlideshowError) WithDetail(key string, value interface{}) *SlideshowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var slideErr *SlideshowError
	if errors.As(err, &slideErr) {
		return slideErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SlideshowError
func GetErrorCode(err error) ErrorCode {
	var slideErr *SlideshowError
	if errors.As(err, &slideErr) {
		return slideErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SlideshowError
func GetErrorDetails(err error) map[string]interface{} {
	var slideErr *SlideshowError
	if errors.As(err, &slideErr) {
		return slideErr.Details
	}
	return nil
}

// ExitCode maps an error returned by a run to the process exit code.
// An unknown template manifest always exits with 2 so scripts can rely on it.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrUnknownManifest:
		return ExitUnknownManifest
	case ErrFetch:
		return ExitFetch
	case ErrInvalidInput:
		return ExitUsage
	default:
		return ExitFailure
	}
}
