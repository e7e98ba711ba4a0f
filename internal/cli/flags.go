package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagBase        = "base"
	FlagGolang      = "golang"
	FlagGoVersion   = "go-version"
	FlagRust        = "rust"
	FlagPython      = "python"
	FlagNodeJS      = "nodejs"
	FlagNodeVersion = "node-version"
	FlagJava        = "java"
	FlagJavaVersion = "java-version"
	FlagAll         = "all"
	FlagTemplate    = "template"
	FlagOutput      = "output"
	FlagConfig      = "config"
	FlagInteractive = "interactive"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescBase        = "Base OS for the Dockerfile (ubuntu or alpine)"
	DescGolang      = "Include Golang"
	DescGoVersion   = "Golang version to install"
	DescRust        = "Include Rust"
	DescPython      = "Include Python"
	DescNodeJS      = "Include Node.js"
	DescNodeVersion = "Node.js major version to install"
	DescJava        = "Include Java"
	DescJavaVersion = "Java version to install"
	DescAll         = "Include all programming languages"
	DescTemplate    = "Template location (file path or http(s) URL)"
	DescOutput      = "Output file path"
	DescConfig      = "Path to config file"
	DescInteractive = "Choose options interactively"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)

// versionPattern matches version tokens like 1.22.2, 20, 17-ea, v1.2.3
var versionPattern = regexp.MustCompile(`^v?[0-9]+(\.[0-9]+)*(-[a-zA-Z0-9\-\.]+)?$`)

// ValidateOutputPath validates an output file path
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	// Reject ".." path segments only; filenames merely containing dots
	// (my..Dockerfile) are fine
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return fmt.Errorf("output path contains invalid traversal: %s", path)
		}
	}

	return nil
}

// ValidateVersion validates a component version token
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	if !versionPattern.MatchString(version) {
		return fmt.Errorf("invalid version: %s", version)
	}

	return nil
}
