package generator

import "fmt"

// GeneratorError represents an output write error.
type GeneratorError struct {
	// Path is the output path that failed.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("failed to write output: %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a write-failure error.
func NewWriteError(path string, cause error) *GeneratorError {
	return &GeneratorError{Path: path, Cause: cause}
}
