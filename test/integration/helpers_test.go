package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// copyFixtureToTemp copies a fixture template file to a temp directory
// and returns the path to the copy.
func copyFixtureToTemp(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	fixturePath, err := filepath.Abs(filepath.Join("../fixtures/templates", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	destPath := filepath.Join(tempDir, fixtureName)
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	return destPath
}

// readOutput reads a generated Dockerfile.
func readOutput(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated output: %v", err)
	}
	return string(data)
}

// assertContains fails the test when the output is missing a line.
func assertContains(t *testing.T, output, want string) {
	t.Helper()

	if !strings.Contains(output, want) {
		t.Errorf("output missing %q:\n%s", want, output)
	}
}

// assertNotContains fails the test when the output has an unwanted line.
func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()

	if strings.Contains(output, unwanted) {
		t.Errorf("output must not contain %q:\n%s", unwanted, output)
	}
}
