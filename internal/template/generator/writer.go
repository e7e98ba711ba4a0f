package generator

import (
	"os"
	"path/filepath"

	"github.com/tacogips/dockergen/internal/debug"
)

// Writer persists generated Dockerfile text.
type Writer interface {
	// WriteFile writes content to path, truncating any existing file.
	WriteFile(path string, content []byte) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem output.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to path with 0644 permissions, creating
// parent directories as needed. The write truncates and rewrites the
// file in place; a failed write can leave partial output behind, and
// the recovery path is simply re-running the generation.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[generator] Writing output: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewWriteError(path, err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return NewWriteError(path, err)
	}

	debug.Debug("[generator] Output written: %s", path)
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
