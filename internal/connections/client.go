package connections

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/logger"
)

const (
	// DefaultTimeout bounds portal requests when the config doesn't say
	// otherwise.
	DefaultTimeout = 10 * time.Second

	// errorBodyLimit caps how much of an error response body we read.
	errorBodyLimit = 4096
)

// Client talks to the Wave portal's connections API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a portal client. A trailing slash on baseURL is trimmed
// so endpoint paths can be joined naively. A zero timeout falls back to
// DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     logger.Default(),
	}
}

// WithLogger sets the logger used for request tracing.
func (c *Client) WithLogger(log logger.Logger) *Client {
	c.log = log
	return c
}

// BaseURL returns the normalized portal base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type detectRequest struct {
	ProjectPath string `json:"projectPath"`
}

type detectResponse struct {
	Success     bool          `json:"success"`
	Connections map[ID]Status `json:"connections"`
	Error       string        `json:"error,omitempty"`
}

// Detect asks the portal to detect all integration connections for the
// project. The returned snapshot replaces any previous one wholesale.
func (c *Client) Detect(ctx context.Context, projectPath string) (*Snapshot, error) {
	var payload detectResponse
	err := c.post(ctx, "/api/connections/detect", "detect",
		detectRequest{ProjectPath: projectPath}, &payload)
	if err != nil {
		return nil, err
	}

	if !payload.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: orDefault(payload.Error, "detect failed")}
	}

	c.log.Debug("detect returned %d connections", len(payload.Connections))

	return &Snapshot{
		Statuses:  payload.Connections,
		FetchedAt: time.Now(),
	}, nil
}

type statusRequest struct {
	ProjectPath string `json:"projectPath"`
}

type statusResponse struct {
	Success bool            `json:"success"`
	Status  json.RawMessage `json:"status"`
	Error   string          `json:"error,omitempty"`
}

// Status fetches the expanded detail for one integration. Local has no
// status endpoint; callers must not ask for it.
func (c *Client) Status(ctx context.Context, id ID, projectPath string) (*Detail, error) {
	if id == Local {
		return nil, fmt.Errorf("%s has no status endpoint", Local)
	}
	if !id.Valid() {
		return nil, fmt.Errorf("unknown integration %q", id)
	}

	endpoint := string(id) + " status"
	var payload statusResponse
	err := c.post(ctx, "/api/connections/"+string(id)+"/status", endpoint,
		statusRequest{ProjectPath: projectPath}, &payload)
	if err != nil {
		return nil, err
	}

	if !payload.Success {
		return nil, &APIError{StatusCode: http.StatusOK, Message: orDefault(payload.Error, "status fetch failed")}
	}

	detail := &Detail{ID: id}
	switch id {
	case GitHub:
		detail.GitHub = &GitHubDetail{}
		err = json.Unmarshal(payload.Status, detail.GitHub)
	case Supabase:
		detail.Supabase = &SupabaseDetail{}
		err = json.Unmarshal(payload.Status, detail.Supabase)
	case Vercel:
		detail.Vercel = &VercelDetail{}
		err = json.Unmarshal(payload.Status, detail.Vercel)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s status payload: %w", id, err)
	}

	return detail, nil
}

// Ping checks that the portal answers HTTP at all and returns the request
// latency. Any HTTP response counts as reachable; only transport failures
// are errors.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return 0, err
	}
	c.authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, categorizeRequestError("ping", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyLimit))

	return time.Since(start), nil
}

// post sends a JSON body and decodes a JSON response, mapping transport
// failures and error responses onto this package's error types.
func (c *Client) post(ctx context.Context, path, endpoint string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	c.log.Debug("POST %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return categorizeRequestError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	return nil
}

// authorize attaches the bearer token when one is configured.
func (c *Client) authorize(req *http.Request) {
	if token := strings.TrimSpace(c.token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// readErrorMessage extracts a useful message from an error response body.
// Portal errors arrive as {"error": "..."}; anything else falls back to the
// raw body or the HTTP status line.
func readErrorMessage(resp *http.Response) string {
	limited := io.LimitReader(resp.Body, errorBodyLimit)
	data, err := io.ReadAll(limited)
	if err != nil || len(data) == 0 {
		return strings.TrimSpace(resp.Status)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(data))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
