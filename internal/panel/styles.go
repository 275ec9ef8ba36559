package panel

import (
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Base styles for the panel, built on the shared synthwave palette.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	FooterErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError).
				Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(0, 1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ui.ColorNeonPink)

	NameStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	GuidanceStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonAmber)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorGlassBorder)
)

// Badge text styles per variant.
var (
	badgeConnectedStyle    = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	badgeConfigFoundStyle  = lipgloss.NewStyle().Foreground(ui.ColorWarning)
	badgeNotConnectedStyle = lipgloss.NewStyle().Foreground(ui.ColorError)
	badgeCheckingStyle     = lipgloss.NewStyle().Foreground(ui.ColorSecondary)
)

// checkingSpinnerFrames animate the badge glyph while an integration is
// being checked.
var checkingSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// badgeGlyph returns the status glyph and its style for a badge variant.
// frame drives the checking animation.
func badgeGlyph(variant connections.BadgeVariant, frame int) (string, lipgloss.Style) {
	switch variant {
	case connections.BadgeConnected:
		return ui.SymbolComplete, badgeConnectedStyle
	case connections.BadgeConfigFound:
		return ui.SymbolProgress, badgeConfigFoundStyle
	case connections.BadgeChecking:
		return checkingSpinnerFrames[frame%len(checkingSpinnerFrames)], badgeCheckingStyle
	default:
		return ui.SymbolFail, badgeNotConnectedStyle
	}
}

// badgeText returns the rendered badge label for a variant.
func badgeText(variant connections.BadgeVariant) string {
	switch variant {
	case connections.BadgeConnected:
		return badgeConnectedStyle.Render(variant.String())
	case connections.BadgeConfigFound:
		return badgeConfigFoundStyle.Render(variant.String())
	case connections.BadgeChecking:
		return badgeCheckingStyle.Render(variant.String())
	default:
		return badgeNotConnectedStyle.Render(variant.String())
	}
}

// deploymentStateStyle colors a deployment state label.
func deploymentStateStyle(state string) lipgloss.Style {
	switch state {
	case "READY":
		return badgeConnectedStyle
	case "ERROR", "CANCELED":
		return badgeNotConnectedStyle
	default:
		return badgeConfigFoundStyle
	}
}
