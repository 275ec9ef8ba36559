package ui

// Unicode symbols for status indicators - cyber glyphs matching the
// synthwave palette.
const (
	SymbolSuccess  = "◉" // Check completed successfully
	SymbolFail     = "✕" // Check failed
	SymbolPending  = "◇" // Not yet started
	SymbolProgress = "◆" // In progress
	SymbolComplete = "●" // Done (alternative to success)
	SymbolSkipped  = "⊖" // Skipped
	SymbolWarning  = "⚠" // Needs attention
)
