package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{
			Path: "templates/Dockerfile-Template",
		},
		Defaults: DefaultsConfig{
			Base:        "ubuntu",
			Output:      "Dockerfile",
			GoVersion:   "1.22.2",
			NodeMajor:   "20",
			JavaVersion: "17",
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "dockergen", "config.json")
}
