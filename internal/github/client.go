// Package github collects verifiable evidence from a GitHub profile's
// public repositories via the REST v3 API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the GitHub REST API base endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout bounds every individual GitHub request.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies this collector to the GitHub API.
const DefaultUserAgent = "claim-verifier-evidence-collector"

// perPage is the page size used for all paginated listings.
const perPage = 100

// acceptHeader pins responses to the v3 JSON media type.
const acceptHeader = "application/vnd.github.v3+json"

// Options configures the API client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// DefaultOptions returns sensible defaults for talking to api.github.com.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client is a minimal GitHub REST API client. An empty token is allowed:
// unauthenticated requests work against a lower quota.
type Client struct {
	baseURL    string
	userAgent  string
	token      string
	httpClient *http.Client
}

// NewClient creates a GitHub API client. A nil opts uses DefaultOptions.
func NewClient(token string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		token:      token,
		httpClient: httpClient,
	}
}

// getJSON performs a GET against an API endpoint (path beginning with "/")
// and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GitHub request failed for %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp, endpoint); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// fetchRaw downloads a file's raw content from an absolute download URL.
// GitHub serves these from a separate host, so no API headers apply.
func (c *Client) fetchRaw(ctx context.Context, downloadURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", downloadURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed for %s: %w", downloadURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Endpoint: downloadURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body from %s: %w", downloadURL, err)
	}
	return string(body), nil
}

// listAll fetches every page of a paginated endpoint. A page shorter than
// the page size (including an empty one) is the end-of-data sentinel.
func (c *Client) listAll(ctx context.Context, endpoint string) ([]json.RawMessage, error) {
	var all []json.RawMessage
	for page := 1; ; page++ {
		separator := "?"
		if strings.Contains(endpoint, "?") {
			separator = "&"
		}
		paginated := fmt.Sprintf("%s%spage=%d&per_page=%d", endpoint, separator, page, perPage)

		var items []json.RawMessage
		if err := c.getJSON(ctx, paginated, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
		if len(items) < perPage {
			break
		}
	}
	return all, nil
}

// checkStatus maps non-2xx responses onto the collector error taxonomy.
func checkStatus(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return &NotFoundError{Endpoint: endpoint}
	case http.StatusForbidden:
		return &RateLimitError{
			Endpoint:  endpoint,
			Remaining: resp.Header.Get("X-RateLimit-Remaining"),
			Reset:     resp.Header.Get("X-RateLimit-Reset"),
		}
	default:
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
}
