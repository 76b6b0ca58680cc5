// Package apify wraps the one outbound call this server makes: running
// the LinkedIn profile scraper actor synchronously and fetching its
// dataset items.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linkscout/linkedin-mcp-server/internal/linkedin"
)

const (
	defaultTimeout = 4 * time.Minute

	// maxResponseBytes bounds how much of the dataset we read; a single
	// profile record stays far below this.
	maxResponseBytes = 8 << 20

	// excerptBytes bounds the upstream body carried in error diagnostics.
	excerptBytes = 2048
)

// Client calls the Apify run-sync-get-dataset-items endpoint. The token
// is injected at construction; nothing here reads the environment.
type Client struct {
	baseURL string
	actor   string
	token   string
	client  *http.Client
}

// NewClient builds a fetcher for the given actor. Scraping runs take tens
// of seconds, so the timeout defaults generously when unset.
func NewClient(baseURL, actor, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		actor:   actor,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// StatusError reports a non-2xx scraper response. Body holds a bounded
// excerpt surfaced as diagnostic data in the JSON-RPC error payload.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scraper returned status %d", e.Status)
}

type runInput struct {
	ProfileURLs []string `json:"profileUrls"`
}

// FetchProfile normalizes the given profile URL, runs the scraper
// synchronously for it, and returns the raw dataset items: a JSON array
// of one profile record, consumed as opaque JSON.
func (c *Client) FetchProfile(ctx context.Context, profileURL string) ([]byte, error) {
	if c.token == "" {
		return nil, fmt.Errorf("apify token is not configured")
	}

	canonical, err := linkedin.NormalizeURL(profileURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, url.PathEscape(c.actor), url.QueryEscape(c.token))

	body, err := json.Marshal(runInput{ProfileURLs: []string{canonical}})
	if err != nil {
		return nil, fmt.Errorf("encode run input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call scraper: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read scraper response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Body: excerpt(data)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("scraper returned an empty body")
	}

	return data, nil
}

func excerpt(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > excerptBytes {
		return s[:excerptBytes]
	}
	return s
}
