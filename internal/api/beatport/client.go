package beatport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"djtagger/internal/shared"
)

// ErrThrottled means the request was given up before it was ever sent,
// because the rate limiter could not grant a slot within the deadline.
// Callers should not treat this as an answer from the catalog.
var ErrThrottled = errors.New("beatport: rate limit wait aborted")

const (
	defaultBaseURL   = "https://www.beatport.com"
	defaultUserAgent = "Mozilla/5.0"
	defaultTimeout   = 8 * time.Second
	// Beatport is a scrape target, not an API partner; stay well under
	// anything that could look like hammering.
	defaultRateLimit  = 1 * time.Second
	defaultBurstLimit = 2

	// outerSlack pads the wall-clock deadline past the transport timeout so
	// connection setup overhead cannot stall the caller indefinitely.
	outerSlack = 2 * time.Second
)

// Config holds configuration for the Beatport search client
type Config struct {
	BaseURL    string        `json:"base_url"`
	UserAgent  string        `json:"user_agent"`
	Timeout    time.Duration `json:"timeout"`
	RateLimit  time.Duration `json:"rate_limit"`
	BurstLimit int           `json:"burst_limit"`
	Debug      bool          `json:"debug"`
}

// DefaultConfig returns sensible defaults for the Beatport search client
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		UserAgent:  defaultUserAgent,
		Timeout:    defaultTimeout,
		RateLimit:  defaultRateLimit,
		BurstLimit: defaultBurstLimit,
		Debug:      false,
	}
}

// Client searches tracks on the Beatport web catalog by scraping the search
// results page.
type Client struct {
	httpClient  *http.Client
	config      Config
	rateLimiter *rate.Limiter
}

// NewClient creates a new Beatport client with default configuration
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new Beatport client with custom configuration
func NewClientWithConfig(config Config) *Client {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.RateLimit <= 0 {
		config.RateLimit = defaults.RateLimit
	}
	if config.BurstLimit <= 0 {
		config.BurstLimit = defaults.BurstLimit
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		config:      config,
		rateLimiter: rate.NewLimiter(rate.Every(config.RateLimit), config.BurstLimit),
	}
}

// GetConfig returns the current client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// SearchTracks runs a track search and returns the parsed candidates. One
// request per call, no retries: a miss degrades to the next genre source,
// and retrying a scrape target risks getting rate-limited.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout+outerSlack)
	defer cancel()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThrottled, err)
	}

	reqURL := fmt.Sprintf("%s/search/tracks?q=%s", c.config.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	shared.DebugPrint(c.config.Debug, "beatport search: %s", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := string(body)
		if len(message) > 200 {
			message = message[:200] + "..."
		}
		return nil, &shared.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    message,
		}
	}

	return ParseSearchPage(string(body))
}
