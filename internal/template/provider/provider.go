package provider

import (
	"context"
	"strings"
)

// Provider abstracts template source locations (local filesystem, HTTP).
type Provider interface {
	// Fetch reads the full template text from the given location.
	Fetch(ctx context.Context, location string) ([]byte, error)

	// Name returns the provider name (e.g. "local", "http").
	Name() string
}

// ForLocation returns the provider that handles the given template
// location. http:// and https:// locations go to the HTTP provider,
// everything else is treated as a local file path.
func ForLocation(location string) Provider {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPProvider()
	}
	return NewLocalProvider()
}
