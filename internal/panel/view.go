package panel

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/ui"
)

// renderPanel renders the complete connections panel.
func (m Model) renderPanel() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderCards())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the panel header with summary stats.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("wavectl panel")

	var parts []string
	if m.projectPath != "" {
		parts = append(parts, filepath.Base(m.projectPath))
	}
	parts = append(parts, fmt.Sprintf("%d/%d connected", m.ConnectedCount(), len(connections.All)))
	if m.lastUpdate.IsZero() {
		parts = append(parts, "checking")
	} else {
		parts = append(parts, "updated "+m.updatedText())
	}

	stats := lipgloss.NewStyle().
		Foreground(ui.ColorSecondary).
		Render(" | " + strings.Join(parts, " | "))

	return HeaderStyle.Render(title + stats)
}

// updatedText formats how long ago the last successful refresh was.
func (m Model) updatedText() string {
	secs := m.SecondsSinceUpdate()
	switch secs {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", secs)
	}
}

// renderFooter renders the status line and keyboard hints. It is always two
// lines tall so the viewport height stays stable.
func (m Model) renderFooter() string {
	var status string
	if m.lastErr != "" {
		status = FooterErrorStyle.Render(ui.SymbolWarning + " refresh failed: " + m.lastErr)
	} else {
		status = FooterStyle.Render(fmt.Sprintf("polling every %s", m.interval))
	}

	hints := []string{
		"q quit",
		"r refresh",
		"↑↓ select",
		"enter expand",
		"? help",
	}

	return status + "\n" + FooterStyle.Render(strings.Join(hints, " | "))
}

// refreshFailureSummary reduces a refresh error to a short footer note.
func refreshFailureSummary(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *connections.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Reason.String()
	}

	var apiErr *connections.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return truncate(err.Error(), 60)
}
