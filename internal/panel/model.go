package panel

import (
	"context"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/logger"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher is the slice of the portal client the panel depends on.
// *connections.Client satisfies it; tests substitute a fake.
type Fetcher interface {
	Detect(ctx context.Context, projectPath string) (*connections.Snapshot, error)
	Status(ctx context.Context, id connections.ID, projectPath string) (*connections.Detail, error)
}

// Default timings, used when the caller passes zero values.
const (
	DefaultPollInterval   = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// spinnerInterval is the animation frame rate for the checking spinner.
const spinnerInterval = 150 * time.Millisecond

// Model is the Bubble Tea model for the connection status panel.
type Model struct {
	fetcher     Fetcher
	log         logger.Logger
	projectPath string
	portalURL   string

	// Snapshot state. A refresh replaces the snapshot wholesale; on failure
	// the previous one is retained and lastErr carries the reason.
	snapshot   *connections.Snapshot
	loading    bool
	lastErr    string
	lastUpdate time.Time

	// Accordion state. expanded is empty when no card is open. details is
	// the per-integration cache: populated on first expand, kept across
	// collapse/re-expand, discarded when the panel exits.
	expanded connections.ID
	details  map[connections.ID]*connections.Detail
	fetching map[connections.ID]bool

	selected int
	interval time.Duration
	timeout  time.Duration

	width    int
	height   int
	quitting bool
	showHelp bool

	// Animation state
	spinnerFrame int

	// Scrollable card column
	viewport      viewport.Model
	viewportReady bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// snapshotMsg carries the result of a detect call.
type snapshotMsg struct {
	snapshot *connections.Snapshot
	err      error
}

// detailMsg carries the result of a per-integration status call.
type detailMsg struct {
	id     connections.ID
	detail *connections.Detail
	err    error
}

// NewModel creates a panel model polling the given project through fetcher.
// portalURL is display-only. Zero interval/timeout fall back to the defaults.
func NewModel(fetcher Fetcher, projectPath, portalURL string, interval, timeout time.Duration) Model {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return Model{
		fetcher:     fetcher,
		log:         logger.Default(),
		projectPath: projectPath,
		portalURL:   portalURL,
		details:     make(map[connections.ID]*connections.Detail),
		fetching:    make(map[connections.ID]bool),
		interval:    interval,
		timeout:     timeout,
		loading:     projectPath != "",
	}
}

// WithLogger replaces the model's logger. Only useful before the program
// starts.
func (m Model) WithLogger(log logger.Logger) Model {
	m.log = log
	return m
}

// Init starts the tick timer, the spinner, and the initial detect.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), m.spinnerTickCmd()}
	if m.projectPath != "" {
		cmds = append(cmds, m.detectCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Unhandled keys scroll the card column
		var cmd2 tea.Cmd
		m.viewport, cmd2 = m.viewport.Update(msg)
		return m, cmd2

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshViewportContent()

	case tickMsg:
		cmds := []tea.Cmd{m.tickCmd()}
		if cmd := m.startRefresh(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		if m.anyChecking() {
			m.refreshViewportContent()
		}
		return m, m.spinnerTickCmd()

	case snapshotMsg:
		m.loading = false
		if msg.err != nil {
			// Stale snapshot stays on screen; only the footer changes.
			m.lastErr = refreshFailureSummary(msg.err)
			m.refreshViewportContent()
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.lastUpdate = msg.snapshot.FetchedAt
		m.lastErr = ""
		m.refreshViewportContent()

	case detailMsg:
		delete(m.fetching, msg.id)
		if msg.err == nil && msg.detail != nil {
			m.details[msg.id] = msg.detail
		}
		m.refreshViewportContent()
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderPanel()
}

// startRefresh marks a refresh as in flight and returns its command.
// Returns nil when no project path is configured. Concurrent refreshes are
// not deduplicated; a manual refresh may race a poll tick and whichever
// snapshot lands last wins.
func (m *Model) startRefresh() tea.Cmd {
	if m.projectPath == "" {
		return nil
	}
	m.loading = true
	return m.detectCmd()
}

// toggleExpand flips the expansion state of the integration under the
// cursor. Expanding a non-local integration with no cached detail kicks off
// a detail fetch.
func (m *Model) toggleExpand() tea.Cmd {
	id := m.SelectedID()
	if id == "" {
		return nil
	}

	if m.expanded == id {
		m.expanded = ""
		m.refreshViewportContent()
		return nil
	}

	m.expanded = id
	var cmd tea.Cmd
	if id != connections.Local && m.details[id] == nil && !m.fetching[id] {
		m.fetching[id] = true
		cmd = m.detailCmd(id)
	}
	m.refreshViewportContent()
	return cmd
}

// tickCmd returns a command that sends a tick after the poll interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner animation tick.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// detectCmd fetches a full snapshot in the background.
func (m Model) detectCmd() tea.Cmd {
	fetcher := m.fetcher
	path := m.projectPath
	timeout := m.timeout
	log := m.log

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := fetcher.Detect(ctx, path)
		if err != nil {
			log.Warn("connection detect failed: %v", err)
			return snapshotMsg{err: err}
		}
		return snapshotMsg{snapshot: snap}
	}
}

// detailCmd fetches one integration's detail in the background.
func (m Model) detailCmd(id connections.ID) tea.Cmd {
	fetcher := m.fetcher
	path := m.projectPath
	timeout := m.timeout
	log := m.log

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := fetcher.Status(ctx, id, path)
		if err != nil {
			log.Warn("fetch %s detail failed: %v", id, err)
			return detailMsg{id: id, err: err}
		}
		return detailMsg{id: id, detail: detail}
	}
}

// statusFor returns the snapshot entry for an integration, or a synthetic
// checking placeholder before the first snapshot lands.
func (m Model) statusFor(id connections.ID) connections.Status {
	if m.snapshot != nil {
		if st, ok := m.snapshot.Get(id); ok {
			return st
		}
	}
	return connections.Status{Status: connections.StatusChecking}
}

// anyChecking reports whether any card currently animates.
func (m Model) anyChecking() bool {
	if m.loading {
		return true
	}
	for _, id := range connections.All {
		if m.fetching[id] {
			return true
		}
		if connections.Badge(m.statusFor(id)) == connections.BadgeChecking {
			return true
		}
	}
	return false
}

// SelectedID returns the integration under the cursor.
func (m Model) SelectedID() connections.ID {
	if m.selected >= 0 && m.selected < len(connections.All) {
		return connections.All[m.selected]
	}
	return ""
}

// ExpandedID returns the currently expanded integration, or "".
func (m Model) ExpandedID() connections.ID {
	return m.expanded
}

// ConnectedCount returns how many of the panel's integrations are
// currently connected.
func (m Model) ConnectedCount() int {
	count := 0
	for _, id := range connections.All {
		if m.statusFor(id).Connected {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns how long ago the last successful refresh was.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// resizeViewport fits the card column between the header and footer.
func (m *Model) resizeViewport() {
	headerHeight := 2
	footerHeight := 2
	viewportHeight := m.height - headerHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}
}

// refreshViewportContent re-renders the card column into the viewport.
func (m *Model) refreshViewportContent() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderCards())
}
