// Package seated fetches the followed-artist list from the Seated platform.
//
// This is the only network boundary in the system. The reconciliation engine
// never sees it: a fetch produces the same plain list of names as the cache
// file, and timeout and retry policy live here.
package seated

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/melodex/melodex/pkg/errors"
)

// DefaultBaseURL is the Seated notifications endpoint.
const DefaultBaseURL = "https://go.seated.com"

// DefaultTimeout bounds a fetch; a stuck fetch should fail, not hang a batch run.
const DefaultTimeout = 30 * time.Second

// followingHeaderRe marks where the followed-artist section starts in the
// notifications page text.
var followingHeaderRe = regexp.MustCompile(`Following \(\d+\)`)

// Client fetches the followed-artist list for a logged-in session.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the platform base URL, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Seated client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FollowedArtists fetches the artist names the session's account follows.
// The session token is required; it identifies an already-authenticated login.
func (c *Client) FollowedArtists(ctx context.Context, session string) ([]string, error) {
	if session == "" {
		return nil, errors.ErrSessionRequired
	}

	url := c.baseURL + "/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", url, err)
	}
	req.Header.Set("Authorization", "Bearer "+session)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.FetchError{Service: "seated", Endpoint: url, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.FetchError{
			Service:    "seated",
			StatusCode: resp.StatusCode,
			Endpoint:   url,
			Message:    "unexpected status",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}

	return parseFollowedArtists(string(body)), nil
}

// parseFollowedArtists extracts artist names from the notifications page
// text: everything after the "Following (N)" header, one name per line, with
// stray "Following" button labels dropped.
func parseFollowedArtists(body string) []string {
	if loc := followingHeaderRe.FindStringIndex(body); loc != nil {
		body = body[loc[1]:]
	}

	var names []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "Following" {
			continue
		}
		names = append(names, line)
	}
	return names
}
