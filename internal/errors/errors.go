package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error codes. IngestFailed is the single fatal taxonomy entry: it halts a
// run. ColumnMissing is non-fatal and surfaces as an informational notice.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeIngestFailed  = "INGEST_FAILED"
	CodeColumnMissing = "COLUMN_MISSING"
	CodeRenderFailed  = "RENDER_FAILED"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func IngestFailed(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeIngestFailed,
		Message: message,
		Cause:   cause,
	}
}

func ColumnMissing(column string) *AppError {
	return New(CodeColumnMissing, fmt.Sprintf("column %q not found", column))
}

func RenderFailed(chartName string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("failed to render %s chart", chartName),
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IsColumnMissing reports whether err is the non-fatal missing-column signal
func IsColumnMissing(err error) bool {
	return GetCode(err) == CodeColumnMissing
}

// IsIngestFailed reports whether err is a fatal ingestion failure
func IsIngestFailed(err error) bool {
	return GetCode(err) == CodeIngestFailed
}
