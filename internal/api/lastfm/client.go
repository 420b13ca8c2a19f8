// Package lastfm implements a minimal client for the Last.fm web API,
// covering the artist.getTopTags method used for genre lookups.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"djtagger/internal/shared"
)

const (
	defaultBaseURL = "http://ws.audioscrobbler.com/2.0/"
	defaultTimeout = 5 * time.Second

	// outerSlack pads the per-request context so the HTTP client timeout
	// fires first and produces a cleaner error.
	outerSlack = 3 * time.Second
)

// Config holds the Last.fm client configuration
type Config struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key"`
	Timeout time.Duration `json:"timeout"`
	Debug   bool          `json:"debug"`
}

// Tag is a single crowd-sourced tag with its usage count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Client handles Last.fm API interactions
type Client struct {
	httpClient *http.Client
	config     Config
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// NewClient creates a client for the given API key using default settings
func NewClient(apiKey string) *Client {
	config := DefaultConfig()
	config.APIKey = apiKey
	return NewClientWithConfig(config)
}

// NewClientWithConfig creates a client with custom configuration
func NewClientWithConfig(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}
}

// Enabled reports whether the client has an API key to work with.
func (c *Client) Enabled() bool {
	return c.config.APIKey != ""
}

// topTagsResponse keeps the tag list raw so a scalar or missing value can
// be treated as "no tags" instead of a decode failure.
type topTagsResponse struct {
	TopTags struct {
		Tag json.RawMessage `json:"tag"`
	} `json:"toptags"`
}

// TopTags fetches the most used tags for an artist, ordered by count.
// A missing or non-list tag payload yields an empty result, not an error.
func (c *Client) TopTags(ctx context.Context, artist string) ([]Tag, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("last.fm API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout+outerSlack)
	defer cancel()

	params := url.Values{}
	params.Set("method", "artist.getTopTags")
	params.Set("artist", artist)
	params.Set("api_key", c.config.APIKey)
	params.Set("format", "json")

	requestURL := c.config.BaseURL + "?" + params.Encode()
	shared.DebugPrint(c.config.Debug, "Last.fm request: %s", requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("last.fm request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(body)
		if len(message) > 200 {
			message = message[:200]
		}
		return nil, &shared.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    message,
		}
	}

	var decoded topTagsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode top tags: %w", err)
	}
	if len(decoded.TopTags.Tag) == 0 {
		return nil, nil
	}

	var tags []Tag
	if err := json.Unmarshal(decoded.TopTags.Tag, &tags); err != nil {
		// A single tag comes back as an object rather than a list; the
		// unknown-artist error payload is a string. Neither is useful.
		var single Tag
		if err := json.Unmarshal(decoded.TopTags.Tag, &single); err == nil && single.Name != "" {
			return []Tag{single}, nil
		}
		return nil, nil
	}
	return tags, nil
}
