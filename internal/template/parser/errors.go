package parser

import "fmt"

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// UnclosedBlock indicates an install block with no closing fi.
	UnclosedBlock ParseErrorType = iota
	// DuplicateAssignment indicates the same ARG key appears twice.
	DuplicateAssignment
	// MalformedAssignment indicates a known ARG key without a value.
	MalformedAssignment
	// InvalidRegion indicates a region span that doesn't fit the document.
	InvalidRegion
)

// ParseError represents a template structure error with line context.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// Line is the 1-indexed line number where the error occurred.
	Line int
	// Marker is the offending line text.
	Marker string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s (marker: %s)", e.Line, e.Message, e.Marker)
	}
	return e.Message
}

// newParseError creates a ParseError with line context.
func newParseError(typ ParseErrorType, message string, line int, marker string) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		Line:    line,
		Marker:  marker,
	}
}
