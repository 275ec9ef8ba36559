// Package connections models the integration connection state reported by
// the Wave portal, the client that fetches it, and the pure derivations the
// panel renders from it.
package connections

import "time"

// ID identifies an integration shown in the connections panel.
type ID string

// The integrations the panel knows about.
const (
	Local    ID = "local"
	GitHub   ID = "github"
	Supabase ID = "supabase"
	Vercel   ID = "vercel"
)

// All lists the integrations in panel display order.
var All = []ID{Local, GitHub, Supabase, Vercel}

// Valid reports whether id is a known integration.
func (id ID) Valid() bool {
	switch id {
	case Local, GitHub, Supabase, Vercel:
		return true
	}
	return false
}

// DisplayName returns the human-readable name for an integration.
// Unknown ids fall back to their raw value so newer portal responses
// still render.
func (id ID) DisplayName() string {
	switch id {
	case Local:
		return "Local Folder"
	case GitHub:
		return "GitHub"
	case Supabase:
		return "Supabase"
	case Vercel:
		return "Vercel"
	}
	return string(id)
}

// Status values reported by the portal. The set is open: values this
// version doesn't know about flow through untouched so an older CLI keeps
// working against a newer portal.
const (
	StatusChecking   = "checking"
	StatusConnected  = "connected"
	StatusConfigOnly = "config_only"
	StatusNotFound   = "not_found"
	StatusNoGit      = "no_git"
	StatusNoRemote   = "no_remote"
	StatusNotLinked  = "not_linked"
	StatusError      = "error"
)

// Status is one integration's connection state as reported by the portal's
// detect endpoint.
type Status struct {
	// Connected is the portal's overall verdict for this integration.
	Connected bool `json:"connected"`

	// Status is a machine-readable state like "connected" or "no_git".
	Status string `json:"status"`

	// Message is an optional human-readable note from the portal.
	Message string `json:"message,omitempty"`

	// Path is the resolved project directory (local only).
	Path string `json:"path,omitempty"`

	// Repo and Branch describe the linked repository (github only).
	Repo   string `json:"repo,omitempty"`
	Branch string `json:"branch,omitempty"`

	// ProjectRef is the linked Supabase project reference (supabase only).
	ProjectRef string `json:"projectRef,omitempty"`

	// ProjectID is the linked Vercel project id (vercel only).
	ProjectID string `json:"projectId,omitempty"`

	// LastChecked is when the portal last verified this connection.
	// Zero when the portal didn't report it.
	LastChecked time.Time `json:"lastChecked"`
}

// Snapshot is the full set of connection statuses from one detect call.
// A refresh replaces the snapshot wholesale; a failed refresh keeps the
// previous one.
type Snapshot struct {
	// Statuses is keyed by integration id. Ids this version doesn't know
	// are kept so machine output can surface them.
	Statuses map[ID]Status

	// FetchedAt is when this snapshot was received.
	FetchedAt time.Time
}

// Get returns the status for an integration, if present.
func (s *Snapshot) Get(id ID) (Status, bool) {
	if s == nil {
		return Status{}, false
	}
	st, ok := s.Statuses[id]
	return st, ok
}

// ConnectedCount returns how many integrations report connected.
func (s *Snapshot) ConnectedCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, st := range s.Statuses {
		if st.Connected {
			count++
		}
	}
	return count
}

// Detail is the integration-specific payload from the status endpoint,
// shown when a card is expanded. Exactly one section is set, matching the
// integration it describes. Local has no detail endpoint.
type Detail struct {
	ID       ID
	GitHub   *GitHubDetail
	Supabase *SupabaseDetail
	Vercel   *VercelDetail
}

// GitHubDetail describes the linked repository.
type GitHubDetail struct {
	Repo       string  `json:"repo"`
	Branch     string  `json:"branch"`
	RemoteURL  string  `json:"remoteUrl,omitempty"`
	LastCommit *Commit `json:"lastCommit,omitempty"`
	Ahead      int     `json:"ahead"`
	Behind     int     `json:"behind"`
}

// Commit is a single commit reference in a GitHub detail payload.
type Commit struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author,omitempty"`
	Time    time.Time `json:"time"`
}

// SupabaseDetail describes the linked Supabase project.
type SupabaseDetail struct {
	ProjectRef     string `json:"projectRef"`
	Region         string `json:"region,omitempty"`
	MigrationCount int    `json:"migrationCount"`
	LastMigration  string `json:"lastMigration,omitempty"`
}

// VercelDetail describes the linked Vercel project and its recent deployments.
type VercelDetail struct {
	ProjectID   string       `json:"projectId"`
	ProjectName string       `json:"projectName,omitempty"`
	Deployments []Deployment `json:"deployments,omitempty"`
}

// Deployment is one entry in a Vercel detail payload.
type Deployment struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
