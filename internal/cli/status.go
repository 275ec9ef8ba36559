package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
)

var (
	statusJSON   bool
	statusStrict bool
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")
	statusCmd.Flags().BoolVar(&statusStrict, "strict", false, "exit non-zero unless every integration is connected")
	statusCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if statusJSON {
			machineMode = true
		}
		return statusCommand()
	}
}

// StatusOutput represents the JSON output for status command.
type StatusOutput struct {
	Portal      string             `json:"portal"`
	Project     string             `json:"project"`
	FetchedAt   time.Time          `json:"fetched_at"`
	Connections []ConnectionStatus `json:"connections"`
	Summary     ConnectionSummary  `json:"summary"`
}

// ConnectionStatus represents a single integration's detection result.
type ConnectionStatus struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Badge       string    `json:"badge"`
	Status      string    `json:"status"`
	Connected   bool      `json:"connected"`
	Target      string    `json:"target,omitempty"`
	Guidance    string    `json:"guidance,omitempty"`
	LastChecked time.Time `json:"last_checked"`
}

// ConnectionSummary counts connected integrations.
type ConnectionSummary struct {
	Connected    int  `json:"connected"`
	Total        int  `json:"total"`
	AllConnected bool `json:"all_connected"`
}

// statusCommand implements the status command logic.
func statusCommand() error {
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

	projectPath := config.ResolveProjectPath(cfg, cfgPath)
	if projectPath == "" {
		return errors.New(errors.ErrProject,
			"No project path configured",
			"Set project.path in your wave.yaml, or run 'wavectl init'.")
	}

	client := connections.NewClient(cfg.Portal.BaseURL, cfg.Portal.Token, cfg.Panel.RequestTimeout)

	snapshot, err := client.Detect(context.Background(), projectPath)
	if err != nil {
		return err
	}

	if statusJSON {
		err = outputStatusJSON(snapshot, cfg.Portal.BaseURL, projectPath)
	} else {
		err = outputStatusText(snapshot, cfg.Portal.BaseURL)
	}
	if err != nil {
		return err
	}

	// Strict mode: non-zero exit when anything is not connected
	if statusStrict && snapshot.ConnectedCount() < len(orderedIDs(snapshot)) {
		os.Exit(1)
	}

	return nil
}

// orderedIDs returns the integrations to display: the known set in its
// fixed order, then any extra ids the portal reported, sorted.
func orderedIDs(snapshot *connections.Snapshot) []connections.ID {
	ids := make([]connections.ID, 0, len(connections.All))
	seen := make(map[connections.ID]bool)

	for _, id := range connections.All {
		ids = append(ids, id)
		seen[id] = true
	}

	var extras []connections.ID
	for id := range snapshot.Statuses {
		if !seen[id] {
			extras = append(extras, id)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })

	return append(ids, extras...)
}

// statusFor returns the status to display for an integration. Ids missing
// from the snapshot show as still checking.
func statusFor(snapshot *connections.Snapshot, id connections.ID) connections.Status {
	if st, ok := snapshot.Get(id); ok {
		return st
	}
	return connections.Status{Status: connections.StatusChecking}
}

// outputStatusJSON outputs status in JSON format.
func outputStatusJSON(snapshot *connections.Snapshot, portalURL, projectPath string) error {
	ids := orderedIDs(snapshot)

	output := StatusOutput{
		Portal:      portalURL,
		Project:     projectPath,
		FetchedAt:   snapshot.FetchedAt,
		Connections: make([]ConnectionStatus, 0, len(ids)),
	}

	connected := 0
	for _, id := range ids {
		st := statusFor(snapshot, id)
		if st.Connected {
			connected++
		}

		output.Connections = append(output.Connections, ConnectionStatus{
			ID:          string(id),
			Name:        id.DisplayName(),
			Badge:       connections.Badge(st).String(),
			Status:      st.Status,
			Connected:   st.Connected,
			Target:      connections.Target(id, st),
			Guidance:    connections.Guidance(id, st),
			LastChecked: st.LastChecked,
		})
	}

	output.Summary = ConnectionSummary{
		Connected:    connected,
		Total:        len(ids),
		AllConnected: connected == len(ids),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputStatusText outputs status in human-readable format using a table.
func outputStatusText(snapshot *connections.Snapshot, portalURL string) error {
	mutedStyle := ui.MutedStyle()
	now := time.Now()

	ids := orderedIDs(snapshot)

	// Build table rows
	rows := make([]ui.ConnectionRow, 0, len(ids))
	connected := 0
	for _, id := range ids {
		st := statusFor(snapshot, id)
		if st.Connected {
			connected++
		}

		rows = append(rows, ui.ConnectionRow{
			Badge:   connections.Badge(st).String(),
			Name:    id.DisplayName(),
			Target:  connections.Target(id, st),
			Checked: connections.TimeAgo(st.LastChecked, now),
			Note:    connections.Guidance(id, st),
		})
	}

	// Render the table
	fmt.Println(ui.RenderConnectionTable(rows))

	// Show connection summary
	summary := fmt.Sprintf("%d of %d connected", connected, len(ids))
	if connected == len(ids) {
		fmt.Printf("%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), summary)
	} else {
		fmt.Printf("%s %s\n", ui.WarningStyle().Render(ui.SymbolWarning), summary)
	}
	fmt.Printf("Portal: %s\n", mutedStyle.Render(portalURL))

	return nil
}
