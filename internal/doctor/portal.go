package doctor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/util"
)

// PortalReachableCheck verifies the portal answers HTTP at all. Any status
// code counts; only transport failures flag the portal as unreachable.
type PortalReachableCheck struct {
	Client *connections.Client
}

func (c *PortalReachableCheck) Name() string     { return "portal_reachable" }
func (c *PortalReachableCheck) Category() string { return "PORTAL" }

func (c *PortalReachableCheck) Run() CheckResult {
	if c.Client == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Portal check: no client",
		}
	}

	latency, err := c.Client.Ping(context.Background())
	if err != nil {
		var reqErr *connections.RequestError
		if errors.As(err, &reqErr) {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusFail,
				Message:    fmt.Sprintf("Portal unreachable: %s", reqErr.Reason),
				Suggestion: reasonSuggestion(reqErr.Reason, c.Client.BaseURL()),
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Portal unreachable: %v", err),
			Suggestion: "Check portal.base_url in your wave.yaml",
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Portal reachable: %s (%s)",
			c.Client.BaseURL(), latency.Round(time.Millisecond)),
	}
}

func (c *PortalReachableCheck) Fix() error {
	return nil
}

// PortalDetectCheck runs a full detect round trip against the portal.
type PortalDetectCheck struct {
	Client      *connections.Client
	ProjectPath string
}

func (c *PortalDetectCheck) Name() string     { return "portal_detect" }
func (c *PortalDetectCheck) Category() string { return "PORTAL" }

func (c *PortalDetectCheck) Run() CheckResult {
	if c.Client == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Detect check: no client",
		}
	}

	if c.ProjectPath == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // ProjectPathCheck reports the root cause
			Message: "Detect skipped: no project path",
		}
	}

	snapshot, err := c.Client.Detect(context.Background(), c.ProjectPath)
	if err != nil {
		return detectFailure(c.Name(), c.Client.BaseURL(), err)
	}

	names := make([]string, 0, len(snapshot.Statuses))
	for id, st := range snapshot.Statuses {
		if st.Connected {
			names = append(names, string(id))
		}
	}
	sort.Strings(names)

	total := len(snapshot.Statuses)
	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Detect OK: %d of %d integration%s connected (%s)",
			snapshot.ConnectedCount(), total, pluralize(total), util.JoinOrDefault(names, "none")),
	}
}

func (c *PortalDetectCheck) Fix() error {
	return nil
}

// detectFailure turns a detect error into a failed result with a suggestion
// matched to the failure kind.
func detectFailure(name, baseURL string, err error) CheckResult {
	var apiErr *connections.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return CheckResult{
				Name:       name,
				Status:     StatusFail,
				Message:    fmt.Sprintf("Portal rejected the request (status %d)", apiErr.StatusCode),
				Suggestion: "Set portal.token in your wave.yaml to a valid portal token",
			}
		}
		return CheckResult{
			Name:       name,
			Status:     StatusFail,
			Message:    fmt.Sprintf("Detect failed: %v", apiErr),
			Suggestion: "The portal answered but detection failed. Check the portal logs.",
		}
	}

	var reqErr *connections.RequestError
	if errors.As(err, &reqErr) {
		return CheckResult{
			Name:       name,
			Status:     StatusFail,
			Message:    fmt.Sprintf("Detect failed: %s", reqErr.Reason),
			Suggestion: reasonSuggestion(reqErr.Reason, baseURL),
		}
	}

	return CheckResult{
		Name:    name,
		Status:  StatusFail,
		Message: fmt.Sprintf("Detect failed: %v", err),
	}
}

// reasonSuggestion maps a transport failure reason to a next step.
func reasonSuggestion(reason connections.FailReason, baseURL string) string {
	switch reason {
	case connections.FailTimeout:
		return "The portal did not answer in time. Check that it is running and not stuck starting up."
	case connections.FailRefused:
		return fmt.Sprintf("Nothing is listening at %s. Start the portal and retry.", baseURL)
	case connections.FailUnreachable:
		return "Check your network connection and portal.base_url in your wave.yaml"
	case connections.FailDNS:
		return "The portal hostname does not resolve. Check portal.base_url for typos."
	case connections.FailTLS:
		return "TLS handshake failed. Local portals usually want an http:// base URL."
	default:
		return "Check portal.base_url in your wave.yaml"
	}
}

// NewPortalChecks creates the portal connectivity checks. The caller
// supplies the client so doctor probes use the same portal settings as
// every other command.
func NewPortalChecks(client *connections.Client, projectPath string) []Check {
	return []Check{
		&PortalReachableCheck{Client: client},
		&PortalDetectCheck{Client: client, ProjectPath: projectPath},
	}
}
