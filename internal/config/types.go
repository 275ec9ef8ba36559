package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete wave.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Portal  PortalConfig  `yaml:"portal" mapstructure:"portal"`
	Project ProjectConfig `yaml:"project" mapstructure:"project"`
	Panel   PanelConfig   `yaml:"panel" mapstructure:"panel"`
}

// PortalConfig holds the connection settings for the Wave portal API.
type PortalConfig struct {
	// BaseURL is the portal root, e.g. http://localhost:3000.
	// API paths like /api/connections/detect are resolved against it.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Token is an optional bearer token sent with every request.
	Token string `yaml:"token,omitempty" mapstructure:"token"`
}

// ProjectConfig identifies the project the portal inspects.
type ProjectConfig struct {
	// Path is the project directory sent to the portal for detection.
	// Supports ~ and environment variable expansion. Relative paths
	// resolve against the directory containing the config file.
	Path string `yaml:"path" mapstructure:"path"`
}

// PanelConfig controls the connections panel behavior.
type PanelConfig struct {
	// PollInterval is how often the panel refreshes all connection
	// statuses. Minimum 1s.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// RequestTimeout bounds each portal API request.
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// MarshalYAML writes the durations in their string form so generated
// configs read "30s" instead of nanosecond integers.
func (p PanelConfig) MarshalYAML() (interface{}, error) {
	return struct {
		PollInterval   string `yaml:"poll_interval"`
		RequestTimeout string `yaml:"request_timeout"`
	}{
		PollInterval:   p.PollInterval.String(),
		RequestTimeout: p.RequestTimeout.String(),
	}, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Portal: PortalConfig{
			BaseURL: "http://localhost:3000",
		},
		Project: ProjectConfig{
			Path: ".",
		},
		Panel: PanelConfig{
			PollInterval:   30 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
	}
}
