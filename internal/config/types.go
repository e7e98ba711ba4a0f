package config

// Config represents the global dockergen configuration.
type Config struct {
	// Template configuration for template locations.
	Template TemplateConfig `json:"template"`
	// Defaults configuration for generation defaults.
	Defaults DefaultsConfig `json:"defaults"`
	// Output configuration for display settings.
	Output OutputConfig `json:"output"`
}

// TemplateConfig represents template source settings.
type TemplateConfig struct {
	// Path is the default template location (file path or http(s) URL).
	Path string `json:"path"`
}

// DefaultsConfig represents default generation values.
type DefaultsConfig struct {
	// Base is the default base profile (ubuntu or alpine).
	Base string `json:"base"`
	// Output is the default output file path.
	Output string `json:"output"`
	// GoVersion is the default Go version.
	GoVersion string `json:"go_version"`
	// NodeMajor is the default Node.js major version.
	NodeMajor string `json:"node_major"`
	// JavaVersion is the default Java version.
	JavaVersion string `json:"java_version"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}
