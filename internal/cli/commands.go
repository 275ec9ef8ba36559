package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
)

// Command-specific flags
var (
	panelIntervalFlag string
	initPortalFlag    string
	initForce         bool
)

// panelCmd starts the interactive connections panel
var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Live panel of project connections",
	Long: `Start an interactive panel showing the project's integration connections.

The panel polls the Wave portal's detection API and shows a card per
integration (Local Folder, GitHub, Supabase, Vercel) with its connection
badge. Expanding a card fetches integration details from the portal.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh now
  up/k        Select previous card
  down/j      Select next card
  Enter       Expand or collapse selected card
  Esc         Collapse
  ?           Show help

Examples:
  wavectl panel
  wavectl panel --interval 10s
  wavectl panel --config ./wave.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parsePanelInterval(panelIntervalFlag)
		if err != nil {
			return err
		}
		return panelCommand(interval)
	},
}

// parsePanelInterval parses the --interval flag value. Empty means use the
// configured poll interval; anything below the config minimum is rejected.
func parsePanelInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 10s, 30s, or 1m")
	}
	if parsed < config.MinPollInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum poll interval is %s to avoid hammering the portal", config.MinPollInterval))
	}

	return parsed, nil
}

// statusCmd checks every connection once and prints the results.
// Its RunE lives in status.go.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project connection status",
	Long: `Check every integration once and print the results.

Shows:
  - Connection badge per integration
  - What each integration points at (repo, project ref, folder)
  - When the portal last verified each connection

Examples:
  wavectl status
  wavectl status --json
  wavectl status --strict`,
}

// initCmd creates a new wave.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create wave.yaml configuration",
	Long: `Initialize a new wavectl configuration file.

Creates a wave.yaml file in the current directory with sensible defaults.
Guides you through portal and project configuration with interactive
prompts, then verifies the portal is reachable.

Examples:
  wavectl init
  wavectl init --portal http://localhost:3000
  wavectl init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initPortalFlag, initForce)
	},
}

// doctorCmd diagnoses configuration and portal issues.
// Its RunE lives in doctor.go.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config and portal issues",
	Long: `Run diagnostic checks to identify and fix common issues.

Checks:
  - Config file presence and schema
  - Portal token for remote portals
  - Project path and git repository
  - Portal reachability and detection

Examples:
  wavectl doctor
  wavectl doctor --fix
  wavectl doctor --json`,
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for wavectl.

Examples:
  # Bash
  wavectl completion bash > /etc/bash_completion.d/wavectl

  # Zsh
  wavectl completion zsh > "${fpath[1]}/_wavectl"

  # Fish
  wavectl completion fish > ~/.config/fish/completions/wavectl.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	// panel command flags
	panelCmd.Flags().StringVar(&panelIntervalFlag, "interval", "", "poll interval override (e.g., 10s, 30s, 1m)")

	// init command flags
	initCmd.Flags().StringVar(&initPortalFlag, "portal", "", "pre-specify portal base URL")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
