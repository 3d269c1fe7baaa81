package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/config"
	"github.com/screenscout/screenscout/internal/retry"
	"github.com/screenscout/screenscout/internal/schema"
)

var (
	ErrAPIKeyMissing = errors.New("OMDb API key is not configured")
	ErrNotFound      = errors.New("not found on OMDb")
	ErrAPIError      = errors.New("OMDb API error")
	ErrServerError   = errors.New("OMDb API unavailable")
)

// NotFoundError is a logical not-found reported by OMDb. The upstream
// message is preserved because the title lookup retry strategy inspects it
// to guess the opposite media type.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found on OMDb: %s", e.Message)
}

// Is makes errors.Is(err, ErrNotFound) hold for NotFoundError values.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Client is an OMDb API client.
type Client struct {
	httpClient *http.Client
	config     config.OMDBConfig
	retryCfg   retry.Config
	logger     zerolog.Logger
}

// NewClient creates a new OMDb client.
func NewClient(cfg config.OMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config:   cfg,
		retryCfg: retry.DefaultConfig().WithAttempts(cfg.MaxRetries),
		logger:   logger.With().Str("component", "omdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "omdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// Test verifies connectivity to the OMDb API.
func (c *Client) Test(ctx context.Context) error {
	if !c.IsConfigured() {
		return ErrAPIKeyMissing
	}

	// Try to fetch data for a known movie
	_, err := c.ByIMDbID(ctx, "tt0133093") // The Matrix
	return err
}

// ByIMDbID fetches a title by IMDb ID. Logical not-found is returned as
// *NotFoundError.
func (c *Client) ByIMDbID(ctx context.Context, imdbID string) (*Response, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	if imdbID == "" {
		return nil, &NotFoundError{Message: "empty IMDb ID"}
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("i", imdbID)
	params.Set("plot", "full")

	return c.fetch(ctx, params)
}

// ByTitle fetches a title by name. mediaType may be "movie", "series", or
// empty to let OMDb pick. Logical not-found is returned as *NotFoundError
// with the upstream message preserved.
func (c *Client) ByTitle(ctx context.Context, title, mediaType string) (*Response, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	if title == "" {
		return nil, &NotFoundError{Message: "empty title"}
	}

	params := url.Values{}
	params.Set("apikey", c.config.APIKey)
	params.Set("t", title)
	params.Set("plot", "full")
	if mediaType != "" {
		params.Set("type", mediaType)
	}

	return c.fetch(ctx, params)
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*Response, error) {
	var omdbResp Response
	err := retry.Do(ctx, c.config.BaseURL, c.retryCfg, c.logger, isRetryable, func() error {
		return c.fetchOnce(ctx, params, &omdbResp)
	})
	if err != nil {
		return nil, err
	}

	if omdbResp.Response == "False" {
		return nil, &NotFoundError{Message: omdbResp.Error}
	}

	if err := validate(&omdbResp); err != nil {
		return nil, err
	}

	return &omdbResp, nil
}

func (c *Client) fetchOnce(ctx context.Context, params url.Values, out *Response) error {
	reqURL := fmt.Sprintf("%s?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// validate checks a logically successful payload against the declared shape.
func validate(resp *Response) error {
	if resp.Title == "" {
		return schema.Violation("Title", "non-empty string")
	}
	if resp.ImdbID == "" {
		return schema.Violation("imdbID", "non-empty string")
	}
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrServerError)
}
