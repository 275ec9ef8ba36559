package connections

import (
	"fmt"
	"path/filepath"
	"time"
)

// BadgeVariant is the visual state of a connection card badge.
type BadgeVariant int

const (
	BadgeChecking BadgeVariant = iota
	BadgeConnected
	BadgeConfigFound
	BadgeNotConnected
)

// String returns the badge label shown on the card.
func (v BadgeVariant) String() string {
	switch v {
	case BadgeChecking:
		return "checking"
	case BadgeConnected:
		return "connected"
	case BadgeConfigFound:
		return "config found"
	case BadgeNotConnected:
		return "not connected"
	default:
		return "unknown"
	}
}

// Badge derives the badge variant for a status. An in-flight check wins
// over everything, then the portal's connected verdict; config_only gets
// its own variant, and every other state collapses to not connected.
func Badge(st Status) BadgeVariant {
	switch {
	case st.Status == StatusChecking:
		return BadgeChecking
	case st.Connected:
		return BadgeConnected
	case st.Status == StatusConfigOnly:
		return BadgeConfigFound
	default:
		return BadgeNotConnected
	}
}

// Guidance returns the actionable hint rendered under a card that isn't
// connected. Connected and in-flight states have no guidance. Unknown
// statuses fall back to the portal's message so new portal states still
// say something useful.
func Guidance(id ID, st Status) string {
	if st.Connected || st.Status == StatusChecking {
		return ""
	}

	switch st.Status {
	case StatusNoGit:
		return "No repository initialized. Run 'git init' to create one."
	case StatusNoRemote:
		return "No remote configured. Add one with 'git remote add origin <url>'."
	case StatusNotLinked:
		switch id {
		case Supabase:
			return "Project not linked. Run 'supabase link --project-ref <ref>' to connect it."
		case Vercel:
			return "Project not linked. Run 'vercel link' to connect it."
		}
		return "Project not linked."
	case StatusConfigOnly:
		return "Configuration found, but the connection hasn't been verified yet."
	case StatusNotFound:
		return fmt.Sprintf("%s was not detected for this project.", id.DisplayName())
	case StatusError:
		return orDefault(st.Message, "Something went wrong while checking this connection.")
	}

	return st.Message
}

// Target returns the short identifier shown next to an integration's name:
// folder name, repository, project ref, or project id. Empty when the
// status doesn't carry one.
func Target(id ID, st Status) string {
	switch id {
	case Local:
		if st.Path == "" {
			return ""
		}
		return filepath.Base(st.Path)
	case GitHub:
		return st.Repo
	case Supabase:
		return st.ProjectRef
	case Vercel:
		return st.ProjectID
	}
	return ""
}

// TimeAgo formats how long ago t was, relative to now:
//
//	under a minute   "Just now"
//	under an hour    "12m ago"
//	under a day      "3h ago"
//	otherwise        "2d ago"
//
// A zero t returns "" so callers can omit the line entirely.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
