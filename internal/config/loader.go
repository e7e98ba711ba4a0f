package config

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/tacogips/dockergen/internal/template/model"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	// Restore defaults for fields the file left empty
	mergeConfig(cfg, DefaultConfig())

	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if _, err := model.ParseProfile(config.Defaults.Base); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.base", err.Error())
	}
	if config.Template.Path == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "template.path", "template path cannot be empty")
	}
	if config.Defaults.Output == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "defaults.output", "output path cannot be empty")
	}
	return nil
}

// mergeConfig fills empty string fields in cfg from the defaults.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Template.Path == "" {
		cfg.Template.Path = defaults.Template.Path
	}
	if cfg.Defaults.Base == "" {
		cfg.Defaults.Base = defaults.Defaults.Base
	}
	if cfg.Defaults.Output == "" {
		cfg.Defaults.Output = defaults.Defaults.Output
	}
	if cfg.Defaults.GoVersion == "" {
		cfg.Defaults.GoVersion = defaults.Defaults.GoVersion
	}
	if cfg.Defaults.NodeMajor == "" {
		cfg.Defaults.NodeMajor = defaults.Defaults.NodeMajor
	}
	if cfg.Defaults.JavaVersion == "" {
		cfg.Defaults.JavaVersion = defaults.Defaults.JavaVersion
	}
}

// VersionFor returns the configured default version for a component,
// or an empty string for components without a version parameter.
func (c *Config) VersionFor(component model.Component) string {
	switch component {
	case model.ComponentGolang:
		return c.Defaults.GoVersion
	case model.ComponentNodeJS:
		return c.Defaults.NodeMajor
	case model.ComponentJava:
		return c.Defaults.JavaVersion
	}
	return ""
}
