// Package panel implements the interactive connection status panel.
//
// The panel is a Bubble Tea program that polls the portal's detect endpoint
// on an interval, renders one summary card per integration, and expands a
// single card at a time into a richer detail view fetched lazily from the
// per-integration status endpoint.
//
// # Model
//
// Model holds the latest connections.Snapshot, a detail cache keyed by
// integration, the expansion state (at most one integration expanded), and
// the selection cursor. Snapshot refreshes replace the whole snapshot or
// leave it untouched on failure; detail entries are fetched on first expand
// and cached for the lifetime of the panel.
//
// # Message flow
//
//	tickMsg        -> schedule the next tick, start a refresh if none running
//	snapshotMsg    -> apply (or on error: discard) a detect result
//	detailMsg      -> cache (or on error: drop) one integration's detail
//	spinnerTickMsg -> advance the checking animation
//
// Fetches run as tea.Cmds so the panel stays responsive while they are in
// flight. Fetch failures are logged and otherwise invisible: the previous
// data stays on screen.
package panel
