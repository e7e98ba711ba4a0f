package provider

import "fmt"

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// TemplateNotFound indicates the template doesn't exist at the location.
	TemplateNotFound ProviderErrorType = iota
	// TemplateReadFailed indicates the template exists but could not be read.
	TemplateReadFailed
	// FetchFailed indicates a remote fetch failed.
	FetchFailed
	// InvalidLocation indicates a malformed template location.
	InvalidLocation
)

// ProviderError represents a template source error.
type ProviderError struct {
	// Type is the error type.
	Type ProviderErrorType
	// Provider is the provider name.
	Provider string
	// Location is the template location that failed.
	Location string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	var what string
	switch e.Type {
	case TemplateNotFound:
		what = "template not found"
	case TemplateReadFailed:
		what = "failed to read template"
	case FetchFailed:
		what = "failed to fetch template"
	case InvalidLocation:
		what = "invalid template location"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", what, e.Location, e.Cause)
	}
	return fmt.Sprintf("%s: %s", what, e.Location)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a template-not-found error.
func NewNotFoundError(provider, location string, cause error) *ProviderError {
	return &ProviderError{Type: TemplateNotFound, Provider: provider, Location: location, Cause: cause}
}

// NewReadError creates a read-failure error.
func NewReadError(provider, location string, cause error) *ProviderError {
	return &ProviderError{Type: TemplateReadFailed, Provider: provider, Location: location, Cause: cause}
}

// NewFetchError creates a remote-fetch error.
func NewFetchError(provider, location string, cause error) *ProviderError {
	return &ProviderError{Type: FetchFailed, Provider: provider, Location: location, Cause: cause}
}

// NewInvalidLocationError creates an invalid-location error.
func NewInvalidLocationError(provider, location string, cause error) *ProviderError {
	return &ProviderError{Type: InvalidLocation, Provider: provider, Location: location, Cause: cause}
}
