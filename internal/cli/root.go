package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave-sub012/internal/logger"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
)

// Global flag values, shared by all subcommands.
var (
	configFlag  string
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
)

// rootCmd is the base command for wavectl.
var rootCmd = &cobra.Command{
	Use:   "wavectl",
	Short: "Wave project connections from the terminal",
	Long: `wavectl shows which integrations your Wave project is connected to.

It talks to the Wave portal's detection API and renders the results as a
live panel (wavectl panel) or a one-shot table (wavectl status).

Run 'wavectl init' to create a wave.yaml config, and 'wavectl doctor' when
something misbehaves.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: wave.yaml discovery)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// applyGlobalFlags wires the global flags into the logger and UI state.
// Quiet wins when both --quiet and --verbose are set.
func applyGlobalFlags() {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}

	switch {
	case quietFlag:
		logger.SetDefault(logger.Noop())
	case verboseFlag:
		// The debug gate is read at logger construction, so set the env
		// var before replacing the default logger.
		os.Setenv("WAVE_DEBUG", "1")
		logger.SetDefault(logger.New(""))
	}
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if MachineMode() {
			_ = WriteJSONFromError(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Config returns the --config flag value. Empty means discovery.
func Config() string {
	return configFlag
}
