package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
)

// MinPollInterval is the floor for panel.poll_interval. Anything faster
// hammers the portal without making the panel feel more live.
const MinPollInterval = time.Second

// ValidationOption controls validation behavior.
type ValidationOption func(*validationContext)

type validationContext struct {
	allowEmptyProject bool
}

// AllowEmptyProject skips the project path requirement. Used by commands
// like 'wavectl doctor' that should diagnose an incomplete config rather
// than reject it.
func AllowEmptyProject() ValidationOption {
	return func(ctx *validationContext) {
		ctx.allowEmptyProject = true
	}
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config, opts ...ValidationOption) error {
	ctx := &validationContext{}
	for _, opt := range opts {
		opt(ctx)
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but wavectl only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest wavectl: https://github.com/Boomerang-Apps/wave-sub012/releases")
	}

	// Validate portal settings
	if err := validatePortal(cfg.Portal); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'portal' section in your wave.yaml.")
	}

	// Validate panel settings
	if err := validatePanel(cfg.Panel); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'panel' section in your wave.yaml.")
	}

	// Validate project path
	if cfg.Project.Path == "" && !ctx.allowEmptyProject {
		return errors.New(errors.ErrConfig,
			"No project path configured",
			"Set project.path in wave.yaml, or run 'wavectl init' to set one up.")
	}

	return nil
}

// validatePortal checks that the base URL is a usable http(s) URL.
func validatePortal(portal PortalConfig) error {
	if portal.BaseURL == "" {
		return fmt.Errorf("portal.base_url is empty")
	}

	u, err := url.Parse(portal.BaseURL)
	if err != nil {
		return fmt.Errorf("portal.base_url %q is not a valid URL", portal.BaseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("portal.base_url must use http or https, got %q", portal.BaseURL)
	}

	if u.Host == "" {
		return fmt.Errorf("portal.base_url %q has no host", portal.BaseURL)
	}

	return nil
}

// validatePanel checks the polling interval and request timeout.
func validatePanel(panel PanelConfig) error {
	if panel.PollInterval < MinPollInterval {
		return fmt.Errorf("panel.poll_interval %s is below the minimum of %s", panel.PollInterval, MinPollInterval)
	}

	if panel.RequestTimeout <= 0 {
		return fmt.Errorf("panel.request_timeout must be positive, got %s", panel.RequestTimeout)
	}

	return nil
}
