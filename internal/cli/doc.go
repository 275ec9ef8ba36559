// Package cli implements the wavectl command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command workflows (panelCommand, statusCommand, doctorCommand)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "wavectl" with subcommands for different operations:
//
//	wavectl panel       - Live connections panel (interactive TUI)
//	wavectl status      - One-shot connection check
//	wavectl init        - Create wave.yaml config
//	wavectl doctor      - Diagnose setup issues
//	wavectl version     - Print version information
//
// # Command Workflow
//
// Commands that talk to the portal share the same phases:
//
//  1. Find and load the config file (wave.yaml)
//  2. Validate the config
//  3. Build a portal client from portal.base_url and portal.token
//  4. Run the command-specific logic
//
// The panel command hands the client to a Bubble Tea program; status and
// doctor make one-shot requests and print the results.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --quiet, --no-color) are defined on
// the root command and available to all subcommands. Command-specific
// flags like --json and --fix are defined on individual commands.
//
// Machine-readable output uses a consistent JSON envelope; see json.go.
package cli
