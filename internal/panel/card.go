package panel

import (
	"strings"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/charmbracelet/lipgloss"
)

// Card layout constants
const (
	defaultCardWidth = 72
	minCardWidth     = 40
)

// cardWidth fits cards to the terminal, staying readable on wide screens.
func (m Model) cardWidth() int {
	if m.width == 0 {
		return defaultCardWidth
	}
	w := m.width - 2
	if w > 100 {
		w = 100
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// renderCards renders the accordion column, one card per integration.
func (m Model) renderCards() string {
	width := m.cardWidth()

	cards := make([]string, 0, len(connections.All))
	for i, id := range connections.All {
		cards = append(cards, m.renderCard(id, width, i == m.selected))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a single integration card, expanded or collapsed.
func (m Model) renderCard(id connections.ID, width int, selected bool) string {
	st := m.statusFor(id)
	variant := connections.Badge(st)

	style := CardStyle.Width(width)
	if selected {
		style = CardSelectedStyle.Width(width)
	}

	// Inner width for content (account for border padding)
	innerWidth := width - 4

	var lines []string
	lines = append(lines, m.renderTitleLine(id, st, variant, innerWidth))
	lines = append(lines, m.renderSummaryLine(id, st, innerWidth))

	if m.expanded == id {
		lines = append(lines, renderDivider(innerWidth))
		lines = append(lines, m.renderExpandedBody(id, st, innerWidth)...)
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderTitleLine renders the glyph, display name, and right-aligned badge.
func (m Model) renderTitleLine(id connections.ID, st connections.Status, variant connections.BadgeVariant, width int) string {
	glyph, glyphStyle := badgeGlyph(variant, m.spinnerFrame)
	left := glyphStyle.Render(glyph) + " " + NameStyle.Render(id.DisplayName())
	return padBetween(left, badgeText(variant), width)
}

// renderSummaryLine renders the target identifier and the last-checked time.
func (m Model) renderSummaryLine(id connections.ID, st connections.Status, width int) string {
	target := connections.Target(id, st)
	if target == "" {
		target = "-"
	}

	checked := connections.TimeAgo(st.LastChecked, time.Now())
	var right string
	if checked != "" {
		right = MutedStyle.Render("checked " + checked)
	}

	return padBetween("  "+MutedStyle.Render(target), right, width)
}

// renderExpandedBody renders the guidance and detail section of an open card.
func (m Model) renderExpandedBody(id connections.ID, st connections.Status, width int) []string {
	var lines []string

	if guidance := connections.Guidance(id, st); guidance != "" {
		lines = append(lines, wrapIndented(guidance, GuidanceStyle, width)...)
		lines = append(lines, "")
	}

	lines = append(lines, m.renderDetail(id, st, width)...)
	return lines
}

// renderDivider draws a thin separator inside a card.
func renderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return dividerStyle.Render(strings.Repeat("─", width))
}

// padBetween joins left and right content with padding so right is
// right-aligned within width. Overflowing content is left untouched.
func padBetween(left, right string, width int) string {
	if right == "" {
		return left
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// wrapIndented word-wraps text to the width with a two-space indent,
// rendering each line with the given style.
func wrapIndented(text string, style lipgloss.Style, width int) []string {
	limit := width - 2
	if limit < 10 {
		limit = 10
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= limit:
			current += " " + word
		default:
			lines = append(lines, "  "+style.Render(current))
			current = word
		}
	}
	if current != "" {
		lines = append(lines, "  "+style.Render(current))
	}
	return lines
}

// truncate shortens a string to maxLen, adding an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
