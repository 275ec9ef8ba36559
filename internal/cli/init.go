package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
)

// initProbeTimeout bounds the portal reachability check during init.
const initProbeTimeout = 5 * time.Second

// InitOptions holds options for the init command.
type InitOptions struct {
	Portal         string // Pre-specified portal base URL
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// initDefaults carries environment-derived defaults for the init wizard.
type initDefaults struct {
	Portal         string
	NonInteractive bool
}

// getInitDefaults reads init defaults from the environment. CI environments
// get non-interactive mode automatically so init never hangs on a prompt.
func getInitDefaults() initDefaults {
	return initDefaults{
		Portal:         os.Getenv("WAVE_PORTAL_URL"),
		NonInteractive: os.Getenv("WAVE_NON_INTERACTIVE") == "true" || os.Getenv("CI") != "",
	}
}

// mergeInitOptions fills unset options from environment defaults. Explicit
// flags win over the environment.
func mergeInitOptions(opts InitOptions) InitOptions {
	defaults := getInitDefaults()
	if opts.Portal == "" {
		opts.Portal = defaults.Portal
	}
	if defaults.NonInteractive {
		opts.NonInteractive = true
	}
	return opts
}

// Init creates a new wave.yaml configuration file.
func Init(opts InitOptions) error {
	// Can't show interactive prompts without a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.NonInteractive = true
	}

	configPath := Config()
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", filepath.Base(configPath))).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	portalURL := opts.Portal
	token := ""
	projectPath := "."

	if opts.NonInteractive {
		if portalURL == "" {
			portalURL = config.DefaultConfig().Portal.BaseURL
		}
	} else {
		if portalURL == "" {
			portalURL = config.DefaultConfig().Portal.BaseURL
		}

		// Interactive prompts using huh
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Portal URL").
					Description("Where the Wave portal is running").
					Placeholder("http://localhost:3000").
					Value(&portalURL).
					Validate(validatePortalURL),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Portal token (optional)").
					Description("Bearer token, for portals that require authentication").
					Placeholder("leave empty for local portals").
					Value(&token),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Project path").
					Description("The project directory the portal inspects (supports ~ and $VARS)").
					Placeholder(".").
					Value(&projectPath).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("project path is required")
						}
						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pass --portal to skip prompts")
		}
	}

	// Verify the portal is reachable before saving
	fmt.Println()
	spinner := ui.NewSpinner("Checking portal at " + portalURL)
	spinner.Start()

	client := connections.NewClient(portalURL, token, initProbeTimeout)
	_, err := client.Ping(context.Background())
	if err != nil {
		spinner.Fail()

		// Portal unreachable, but still offer to save config
		var saveAnyway bool
		if !opts.NonInteractive {
			fmt.Printf("\n%s Portal at '%s' is unreachable: %v\n\n", ui.SymbolFail, portalURL, err)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Save config anyway? (You can start the portal later)").
						Value(&saveAnyway),
				),
			)

			if formErr := form.Run(); formErr != nil {
				return errors.WrapWithCode(err, errors.ErrAPI,
					fmt.Sprintf("Portal at '%s' is unreachable", portalURL),
					"Start the portal, or double-check the URL")
			}

			if !saveAnyway {
				return errors.WrapWithCode(err, errors.ErrAPI,
					fmt.Sprintf("Portal at '%s' is unreachable", portalURL),
					"Start the portal, or double-check the URL")
			}
		} else {
			return errors.WrapWithCode(err, errors.ErrAPI,
				fmt.Sprintf("Portal at '%s' is unreachable", portalURL),
				"Start the portal, or double-check the URL")
		}
	} else {
		spinner.Success()
		fmt.Println()
	}

	// Build config
	cfg := config.DefaultConfig()
	cfg.Portal.BaseURL = portalURL
	cfg.Portal.Token = token
	cfg.Project.Path = projectPath

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# Wave project configuration
# Run 'wavectl panel' for a live view of your connections
# See: https://github.com/Boomerang-Apps/wave-sub012 for documentation

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  wavectl panel   - Live connections panel")
	fmt.Println("  wavectl status  - One-shot connection check")
	fmt.Println("  wavectl doctor  - Check configuration")

	return nil
}

// validatePortalURL rejects anything that isn't a full http(s) URL.
func validatePortalURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("portal URL is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("URL is missing a host")
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(portalFlag string, force bool) error {
	return Init(mergeInitOptions(InitOptions{
		Portal:    portalFlag,
		Overwrite: force,
	}))
}
