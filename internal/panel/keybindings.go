package panel

import (
	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyToggle      = "enter"
	KeyToggleAlt   = " "
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input. Returns true if the key was
// handled, along with any command to run.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.startRefresh()

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
			m.refreshViewportContent()
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(connections.All)-1 {
			m.selected++
			m.refreshViewportContent()
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		m.refreshViewportContent()
		return true, nil

	case KeySelectLast:
		m.selected = len(connections.All) - 1
		m.refreshViewportContent()
		return true, nil

	case KeyToggle, KeyToggleAlt:
		return true, m.toggleExpand()

	case KeyCollapse:
		if m.expanded != "" {
			m.expanded = ""
			m.refreshViewportContent()
		}
		return true, nil
	}

	return false, nil
}
