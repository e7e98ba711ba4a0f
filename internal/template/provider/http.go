package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tacogips/dockergen/internal/debug"
)

// maxTemplateSize caps remote template downloads.
const maxTemplateSize = 4 << 20

// HTTPProvider implements Provider for templates served over http(s).
type HTTPProvider struct {
	// Client is the HTTP client used for fetches.
	Client *http.Client
}

// NewHTTPProvider creates a new HTTP provider with a default timeout.
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider name.
func (p *HTTPProvider) Name() string {
	return "http"
}

// Fetch downloads the template text from the given URL.
func (p *HTTPProvider) Fetch(ctx context.Context, location string) ([]byte, error) {
	debug.Debug("[http] Fetching template: %s", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, NewInvalidLocationError(p.Name(), location, err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, NewFetchError(p.Name(), location, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NewNotFoundError(p.Name(), location, fmt.Errorf("HTTP %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewFetchError(p.Name(), location, fmt.Errorf("unexpected status: HTTP %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateSize))
	if err != nil {
		return nil, NewFetchError(p.Name(), location, err)
	}

	debug.Debug("[http] Fetched %d bytes from %s", len(data), location)
	return data, nil
}
