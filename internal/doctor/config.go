package doctor

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
)

// ConfigFileCheck verifies that a config file exists.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'wavectl init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No config file found",
			Suggestion: "Run 'wavectl init' to create a wave.yaml config file",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

func (c *ConfigFileCheck) Fix() error {
	return nil // Config creation is init's job, not doctor's
}

// ConfigSchemaCheck verifies that the config file has valid schema. An
// empty project path is allowed here so doctor can diagnose a half-finished
// setup instead of rejecting it.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return "CONFIG" }

func (c *ConfigSchemaCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		// ConfigFileCheck should catch this
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot validate schema: no config file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	err = config.Validate(cfg, config.AllowEmptyProject())
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Schema error: %v", err),
			Suggestion: "Fix the configuration errors in your wave.yaml",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Schema valid",
	}
}

func (c *ConfigSchemaCheck) Fix() error {
	return nil // Schema issues require manual intervention
}

// ConfigTokenCheck reports whether a portal token is configured. Local dev
// portals run without auth, so a missing token only warns when the base URL
// points somewhere remote.
type ConfigTokenCheck struct {
	ConfigPath string
}

func (c *ConfigTokenCheck) Name() string     { return "config_token" }
func (c *ConfigTokenCheck) Category() string { return "CONFIG" }

func (c *ConfigTokenCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // Not applicable without config
			Message: "No config to check",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // Schema check catches this
			Message: "Config load error",
		}
	}

	if cfg.Portal.Token != "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Portal token set",
		}
	}

	if isLoopbackURL(cfg.Portal.BaseURL) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Portal token not set (local portal)",
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "Portal token not set for a remote portal",
		Suggestion: "Set portal.token in your wave.yaml if the portal requires authentication",
	}
}

func (c *ConfigTokenCheck) Fix() error {
	return nil
}

// isLoopbackURL reports whether the URL points at this machine.
func isLoopbackURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
		&ConfigTokenCheck{ConfigPath: configPath},
	}
}
