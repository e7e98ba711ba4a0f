package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file doesn't exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a configuration value is invalid.
	ConfigValidationFailed
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Path is the configuration file path.
	Path string
	// Field is the offending field (for validation errors).
	Field string
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigErrorWithCause creates a ConfigError wrapping an underlying error.
func NewConfigErrorWithCause(typ ConfigErrorType, path, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Message: message, Cause: cause}
}

// NewConfigErrorWithField creates a validation ConfigError for a field.
func NewConfigErrorWithField(typ ConfigErrorType, path, field, message string) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Field: field, Message: message}
}
