package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/doctor"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
)

var (
	doctorJSON bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")

	doctorCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if doctorJSON {
			machineMode = true
		}
		return doctorCommand()
	}
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	// Load config if it exists. Load errors are ignored here because the
	// config checks report them with suggestions.
	cfgPath, err := config.Find(Config())
	var cfg *config.Config
	if err == nil && cfgPath != "" {
		cfg, _ = config.Load(cfgPath)
	}

	checks := collectChecks(cfgPath, cfg)
	results := doctor.RunAll(checks)

	// Try to fix issues if requested
	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}

	return outputDoctorText(checks, results)
}

// collectChecks gathers all diagnostic checks based on available config.
func collectChecks(cfgPath string, cfg *config.Config) []doctor.Check {
	var checks []doctor.Check

	// Config and project checks (always run)
	checks = append(checks, doctor.NewConfigChecks(Config())...)
	checks = append(checks, doctor.NewProjectChecks(Config())...)

	// Portal checks need a loaded config for the base URL and token
	if cfg != nil {
		projectPath := config.ResolveProjectPath(cfg, cfgPath)
		client := connections.NewClient(cfg.Portal.BaseURL, cfg.Portal.Token, cfg.Panel.RequestTimeout)
		checks = append(checks, doctor.NewPortalChecks(client, projectPath)...)
	}

	return checks
}

// attemptFixes tries to fix issues where possible.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && (result.Status == doctor.StatusFail || result.Status == doctor.StatusWarn) {
			if err := checks[i].Fix(); err == nil {
				// Re-run the check to see if it's fixed
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	// Group by category
	grouped := make(map[string][]doctor.CheckResult)
	categoryOrder := []string{}

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	// Build output
	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}

	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	// Summary
	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
//
//nolint:unparam // error return reserved for future use
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := ui.SuccessStyle()
	errorStyle := ui.ErrorStyle()
	mutedStyle := ui.MutedStyle()

	fmt.Println()
	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "Diagnostic report",
	})
	fmt.Println()

	// Render checks grouped by category
	rows := make([]ui.DoctorCheckRow, 0, len(results))
	for i, check := range checks {
		rows = append(rows, ui.DoctorCheckRow{
			Status:     results[i].Status.String(),
			Category:   check.Category(),
			Message:    results[i].Message,
			Suggestion: results[i].Suggestion,
		})
	}
	fmt.Print(ui.RenderDoctorTable(rows))

	// Render summary divider
	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	// Summary
	counts := doctor.CountByStatus(results)
	if !doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), "Everything looks good")
	} else {
		total := counts[doctor.StatusFail] + counts[doctor.StatusWarn]
		fmt.Printf("%s %d issue%s found\n",
			errorStyle.Render(ui.SymbolFail),
			total,
			pluralSuffix(total),
		)

		fixable := doctor.FixableCount(results)
		if fixable > 0 && !doctorFix {
			fmt.Println()
			fmt.Printf("  Run with %s to attempt automatic fixes where possible.\n",
				mutedStyle.Render("--fix"))
		}
	}

	fmt.Println()
	return nil
}

// pluralSuffix returns "s" for counts other than one.
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
