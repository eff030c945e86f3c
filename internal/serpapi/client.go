// Package serpapi looks up Google result counts through the SerpAPI
// search endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/resolve"
)

// DefaultEndpoint is the SerpAPI JSON search endpoint.
const DefaultEndpoint = "https://serpapi.com/search.json"

// Client implements resolve.Lookup.
type Client struct {
	httpClient *http.Client
	endpoint   string
	delay      time.Duration
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithEndpoint overrides the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(cl *Client) { cl.endpoint = endpoint }
}

// WithRequestDelay waits d before every request.
func WithRequestDelay(d time.Duration) Option {
	return func(cl *Client) { cl.delay = d }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) { cl.log = l }
}

// New returns a Client with a 30 second timeout unless overridden.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   DefaultEndpoint,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Error             string `json:"error"`
	SearchInformation *struct {
		TotalResults *int64 `json:"total_results"`
	} `json:"search_information"`
}

// Lookup runs a Google search for q and returns its total result count.
func (c *Client) Lookup(ctx context.Context, q resolve.Query) (resolve.Result, error) {
	if q.APIKey == "" {
		return resolve.Result{}, resolve.ErrMissingCredential
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return resolve.Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return resolve.Result{}, fmt.Errorf("invalid endpoint: %w", err)
	}
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", q.Q)
	params.Set("api_key", q.APIKey)
	if q.Domain != "" {
		params.Set("google_domain", q.Domain)
	}
	if q.Language != "" {
		params.Set("hl", q.Language)
	}
	if q.Country != "" {
		params.Set("gl", q.Country)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return resolve.Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	c.log.Debug("serpapi request", zap.String("q", q.Q), zap.String("domain", q.Domain))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resolve.Result{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resolve.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var sr searchResponse
	decodeErr := json.Unmarshal(body, &sr)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resolve.Result{}, fmt.Errorf("status %d: %w", resp.StatusCode, resolve.ErrMissingCredential)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		if decodeErr == nil && sr.Error != "" {
			return resolve.Result{}, fmt.Errorf("status %d: %s", resp.StatusCode, sr.Error)
		}
		return resolve.Result{}, fmt.Errorf("status %d", resp.StatusCode)
	case decodeErr != nil:
		return resolve.Result{}, fmt.Errorf("decode response: %w", decodeErr)
	case sr.Error != "":
		return resolve.Result{}, fmt.Errorf("api: %s", sr.Error)
	}

	if sr.SearchInformation == nil {
		return resolve.Result{}, nil
	}
	return resolve.Result{TotalResults: sr.SearchInformation.TotalResults}, nil
}
