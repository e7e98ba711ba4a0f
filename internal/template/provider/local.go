package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tacogips/dockergen/internal/debug"
)

// LocalProvider implements Provider for local filesystem templates.
type LocalProvider struct {
	// BaseDir is the base directory for resolving relative paths.
	// If empty, uses current working directory.
	BaseDir string
}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// NewLocalProviderWithBase creates a new local provider with a base directory.
func NewLocalProviderWithBase(baseDir string) *LocalProvider {
	return &LocalProvider{
		BaseDir: baseDir,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Fetch reads the template file from disk.
func (p *LocalProvider) Fetch(ctx context.Context, location string) ([]byte, error) {
	path := location
	if p.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(p.BaseDir, path)
	}
	debug.Debug("[local] Reading template: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(p.Name(), location, err)
		}
		return nil, NewReadError(p.Name(), location, err)
	}

	debug.Debug("[local] Read %d bytes from %s", len(data), path)
	return data, nil
}
