// Package ui provides terminal UI components for wavectl's CLI output.
//
// The package includes spinners, status tables, and styled text output
// using the Lip Gloss library for consistent terminal styling across all
// commands.
//
// # Color Scheme
//
// Colors are hex values from a shared synthwave palette:
//
//	ColorSuccess   (neon green)  - Connected integrations, passing checks
//	ColorError     (red-pink)    - Failures and errors
//	ColorWarning   (amber)       - Config-only states, warnings
//	ColorInfo      (neon cyan)   - Informational messages
//	ColorMuted     (purple-gray) - Secondary text, timing info
//	ColorSecondary (lavender)    - Taglines and labels
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator for operations like
// probing the portal:
//
//	s := ui.NewSpinner("Checking portal")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// The spinner handles terminal output, clearing lines, and timing display.
//
// # Tables
//
// RenderConnectionTable renders integration statuses for one-shot output,
// and RenderDoctorTable renders diagnostic check results grouped by
// category. Both are plain string renderers, not interactive components;
// the interactive panel lives in the panel package.
package ui
