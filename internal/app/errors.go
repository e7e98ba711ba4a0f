package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// TemplateFetchFailed indicates the template could not be read.
	TemplateFetchFailed AppErrorType = iota
	// ParseFailed indicates the template structure is invalid.
	ParseFailed
	// TransformFailed indicates the transformation failed.
	TransformFailed
	// WriteFailed indicates the output could not be written.
	WriteFailed
	// ValidationFailed indicates invalid generation options.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(message string, cause error) *AppError {
	return NewAppError(TemplateFetchFailed, message, cause)
}

// NewParseError creates a template parse error.
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ParseFailed, message, cause)
}

// NewTransformError creates a transform error.
func NewTransformError(message string, cause error) *AppError {
	return NewAppError(TransformFailed, message, cause)
}

// NewWriteError creates an output write error.
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(WriteFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
