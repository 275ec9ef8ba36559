package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Badge labels shared between the status table and the panel.
const (
	BadgeConnected    = "connected"
	BadgeConfigFound  = "config found"
	BadgeNotConnected = "not connected"
	BadgeChecking     = "checking"
)

// ConnectionRow represents one integration in the status table.
type ConnectionRow struct {
	Badge   string // one of the Badge* labels
	Name    string // integration display name
	Target  string // what it points at (repo, project ref, folder)
	Checked string // relative time of the last check
	Note    string // guidance shown under the row when not connected
}

// BadgeSymbol returns the status glyph and its style for a badge label.
func BadgeSymbol(badge string) (string, lipgloss.Style) {
	switch badge {
	case BadgeConnected:
		return SymbolComplete, SuccessStyle()
	case BadgeConfigFound:
		return SymbolProgress, WarningStyle()
	case BadgeChecking:
		return SymbolPending, MutedStyle()
	default:
		return SymbolFail, ErrorStyle()
	}
}

// badgeStyle returns the text style for a badge label.
func badgeStyle(badge string) lipgloss.Style {
	switch badge {
	case BadgeConnected:
		return SuccessStyle()
	case BadgeConfigFound:
		return WarningStyle()
	case BadgeChecking:
		return MutedStyle()
	default:
		return ErrorStyle()
	}
}

// RenderConnectionTable renders integration statuses as a formatted table
// for one-shot CLI output.
func RenderConnectionTable(rows []ConnectionRow) string {
	if len(rows) == 0 {
		return "No connections detected"
	}

	mutedStyle := MutedStyle()
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorGlassBorder)

	var b strings.Builder
	b.WriteString(headerStyle.Render("  CONNECTION       STATUS           TARGET                    CHECKED"))
	b.WriteString("\n")

	for _, row := range rows {
		symbol, symbolStyle := BadgeSymbol(row.Badge)

		target := row.Target
		if target == "" {
			target = "-"
		}

		line := "  " +
			padRight(row.Name, 17) +
			symbolStyle.Render(symbol) + " " +
			padRight(badgeStyle(row.Badge).Render(row.Badge), 15) +
			padRight(mutedStyle.Render(target), 26) +
			mutedStyle.Render(row.Checked)
		b.WriteString(line)
		b.WriteString("\n")

		if row.Note != "" {
			b.WriteString("    " + mutedStyle.Render(row.Note))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// DoctorCheckRow represents a row in the doctor diagnostic table.
type DoctorCheckRow struct {
	Status     string // "pass", "warn", "fail"
	Category   string // Check category
	Message    string // Check result message
	Suggestion string // Suggestion for fixing (if failed)
}

// RenderDoctorTable renders doctor check results grouped by category.
func RenderDoctorTable(rows []DoctorCheckRow) string {
	if len(rows) == 0 {
		return "No checks to display"
	}

	successStyle := SuccessStyle()
	errorStyle := ErrorStyle()
	warnStyle := WarningStyle()
	mutedStyle := MutedStyle()
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	categories := make(map[string][]DoctorCheckRow)
	categoryOrder := []string{}
	for _, row := range rows {
		if _, exists := categories[row.Category]; !exists {
			categoryOrder = append(categoryOrder, row.Category)
		}
		categories[row.Category] = append(categories[row.Category], row)
	}

	var b strings.Builder
	for _, cat := range categoryOrder {
		b.WriteString(headerStyle.Render(cat))
		b.WriteString("\n")

		for _, row := range categories[cat] {
			var statusIcon string
			switch row.Status {
			case "pass":
				statusIcon = successStyle.Render(SymbolComplete)
			case "warn":
				statusIcon = warnStyle.Render(SymbolWarning)
			case "fail":
				statusIcon = errorStyle.Render(SymbolFail)
			default:
				statusIcon = mutedStyle.Render(SymbolPending)
			}

			b.WriteString("  " + statusIcon + " " + row.Message + "\n")

			if row.Suggestion != "" && row.Status != "pass" {
				b.WriteString("    " + mutedStyle.Render(row.Suggestion) + "\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads a string with spaces to the given visible width.
// ANSI escape codes are not counted toward the width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
