// Package errors carries coded application errors for the adapter and app
// layers. The pure domain core does not use it: malformed survey data
// degrades to empty variables there, never to errors.
package errors

import (
	"fmt"
)

// Error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeBundleInvalid = "BUNDLE_INVALID"
	CodeRenderFailed  = "RENDER_FAILED"
	CodeReportFailed  = "REPORT_FAILED"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError is a structured application error with a stable code.
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

// New creates an AppError with a code.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap adds context to an error, preserving an existing code.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	if appErr, ok := err.(*AppError); ok {
		code = appErr.Code
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps with formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode re-codes an error.
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: code, Message: appErr.Message, Cause: appErr.Cause}
	}
	return &AppError{Code: code, Message: err.Error(), Cause: err}
}

// Code returns the error code, or CodeInternal for uncoded errors.
func Code(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// ConfigInvalid builds a configuration error.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InvalidInput builds an input error.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
