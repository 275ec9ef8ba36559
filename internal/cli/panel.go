package cli

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
	"github.com/Boomerang-Apps/wave-sub012/internal/panel"
)

// panelCommand starts the connections panel TUI. A zero interval means use
// the configured panel.poll_interval.
func panelCommand(interval time.Duration) error {
	// Load config
	cfgPath, err := config.Find(Config())
	if err != nil {
		return err
	}
	if cfgPath == "" {
		return errors.New(errors.ErrConfig,
			"No config file found",
			"Looks like you haven't set up shop here yet. Run 'wavectl init' to get started.")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if interval == 0 {
		interval = cfg.Panel.PollInterval
	}

	projectPath := config.ResolveProjectPath(cfg, cfgPath)
	if projectPath == "" {
		return errors.New(errors.ErrProject,
			"No project path configured",
			"Set project.path in your wave.yaml, or run 'wavectl init'.")
	}

	client := connections.NewClient(cfg.Portal.BaseURL, cfg.Portal.Token, cfg.Panel.RequestTimeout)

	// Non-TTY (piped, redirected, CI): fall back to the one-shot table
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		snapshot, err := client.Detect(context.Background(), projectPath)
		if err != nil {
			return err
		}
		return outputStatusText(snapshot, cfg.Portal.BaseURL)
	}

	model := panel.NewModel(client, projectPath, cfg.Portal.BaseURL, interval, cfg.Panel.RequestTimeout)

	// Run the TUI program
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
