package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/config"
	"github.com/screenscout/screenscout/internal/retry"
)

var (
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")
	ErrNotFound      = errors.New("not found on TMDB")
	ErrAPIError      = errors.New("TMDB API error")
	ErrRateLimited   = errors.New("TMDB API rate limited")
	ErrServerError   = errors.New("TMDB API unavailable")
)

// Client is a TMDB API client. Methods return validated raw payloads;
// normalization into canonical items happens in the catalog package.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	retryCfg   retry.Config
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config:   cfg,
		retryCfg: retry.DefaultConfig().WithAttempts(cfg.MaxRetries),
		logger:   logger.With().Str("component", "tmdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// Test verifies connectivity to the TMDB API by making a configuration request.
func (c *Client) Test(ctx context.Context) error {
	if !c.IsConfigured() {
		return ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/configuration", c.config.BaseURL)

	var result struct {
		Images struct {
			BaseURL string `json:"base_url"`
		} `json:"images"`
	}

	return c.doRequest(ctx, endpoint, c.baseParams(), &result)
}

// SearchMovies searches for movies by query.
func (c *Client) SearchMovies(ctx context.Context, query string) (*SearchMoviesResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/movie", c.config.BaseURL)
	params := c.baseParams()
	params.Set("query", query)
	params.Set("include_adult", "false")

	var response SearchMoviesResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("Movie search completed")

	return &response, nil
}

// SearchTV searches for TV series by query.
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchTVResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/tv", c.config.BaseURL)
	params := c.baseParams()
	params.Set("query", query)
	params.Set("include_adult", "false")

	var response SearchTVResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("TV search completed")

	return &response, nil
}

// GetMovieDetails gets detailed movie info by TMDB ID. The IMDb ID is a
// direct field on the payload.
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/movie/%d", c.config.BaseURL, id)

	var details MovieDetails
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &details); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("title", details.Title).
		Msg("Got movie details")

	return &details, nil
}

// GetTVDetails gets detailed TV series info by TMDB ID, including the
// external_ids sub-resource the IMDb ID nests under.
func (c *Client) GetTVDetails(ctx context.Context, id int) (*TVDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/tv/%d", c.config.BaseURL, id)
	params := c.baseParams()
	params.Set("append_to_response", "external_ids")

	var details TVDetails
	if err := c.doRequest(ctx, endpoint, params, &details); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("name", details.Name).
		Msg("Got TV details")

	return &details, nil
}

// Trending returns trending titles. mediaType may be "movie", "tv", or
// "all"; window may be "day" or "week".
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*ListResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/trending/%s/%s", c.config.BaseURL, mediaType, window)

	var response ListResponse
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("mediaType", mediaType).
		Str("window", window).
		Int("results", len(response.Results)).
		Msg("Got trending titles")

	return &response, nil
}

// Popular returns popular titles for the given media type.
func (c *Client) Popular(ctx context.Context, mediaType string) (*ListResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/%s/popular", c.config.BaseURL, mediaType)

	var response ListResponse
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("mediaType", mediaType).
		Int("results", len(response.Results)).
		Msg("Got popular titles")

	return &response, nil
}

// GenreList returns the genre lookup table for the given media type.
func (c *Client) GenreList(ctx context.Context, mediaType string) (*GenreListResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/genre/%s/list", c.config.BaseURL, mediaType)

	var response GenreListResponse
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// DiscoverByGenre returns titles for the given media type filtered by
// numeric genre id, sorted by popularity.
func (c *Client) DiscoverByGenre(ctx context.Context, mediaType string, genreID int) (*ListResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/discover/%s", c.config.BaseURL, mediaType)
	params := c.baseParams()
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")

	var response ListResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("mediaType", mediaType).
		Int("genreId", genreID).
		Int("results", len(response.Results)).
		Msg("Discover by genre completed")

	return &response, nil
}

// DiscoverByCast returns movies featuring the given person, sorted by
// popularity. The discover endpoint only supports cast filters for movies.
func (c *Client) DiscoverByCast(ctx context.Context, personID int) (*ListResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/discover/movie", c.config.BaseURL)
	params := c.baseParams()
	params.Set("with_cast", strconv.Itoa(personID))
	params.Set("sort_by", "popularity.desc")

	var response ListResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("personId", personID).
		Int("results", len(response.Results)).
		Msg("Discover by cast completed")

	return &response, nil
}

// SearchPeople searches for people by name.
func (c *Client) SearchPeople(ctx context.Context, query string) (*SearchPersonResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/person", c.config.BaseURL)
	params := c.baseParams()
	params.Set("query", query)
	params.Set("include_adult", "false")

	var response SearchPersonResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("Person search completed")

	return &response, nil
}

// SearchCollections searches for collections by name.
func (c *Client) SearchCollections(ctx context.Context, query string) (*SearchCollectionResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/collection", c.config.BaseURL)
	params := c.baseParams()
	params.Set("query", query)

	var response SearchCollectionResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("Collection search completed")

	return &response, nil
}

// GetCollectionDetails gets a collection with its constituent parts.
func (c *Client) GetCollectionDetails(ctx context.Context, id int) (*CollectionDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/collection/%d", c.config.BaseURL, id)

	var details CollectionDetails
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &details); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("name", details.Name).
		Int("parts", len(details.Parts)).
		Msg("Got collection details")

	return &details, nil
}

// WatchProviders returns region-keyed streaming availability for a title.
func (c *Client) WatchProviders(ctx context.Context, mediaType string, id int) (*WatchProvidersResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/%s/%d/watch/providers", c.config.BaseURL, mediaType, id)

	var response WatchProvidersResponse
	if err := c.doRequest(ctx, endpoint, c.baseParams(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetImageURL returns a full image URL for a given path and size.
// Size options: "w92", "w154", "w185", "w342", "w500", "w780", "original"
func (c *Client) GetImageURL(path string, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.config.ImageBaseURL, size, path)
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	return params
}

// doRequest performs an HTTP GET with bounded retry, decodes the JSON
// response, and validates it against the declared shape when the target
// type declares one.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	return retry.Do(ctx, endpoint, c.retryCfg, c.logger, isRetryable, func() error {
		return c.doRequestOnce(ctx, endpoint, params, result)
	})
}

func (c *Client) doRequestOnce(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.StatusMessage != "" {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return ErrNotFound
		case resp.StatusCode == http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		case resp.StatusCode == http.StatusTooManyRequests:
			return ErrRateLimited
		case resp.StatusCode >= 500:
			return fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode)
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if v, ok := result.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// isRetryable reports whether a request should go through another backoff
// attempt. Not-found, auth, and schema failures never retry.
func isRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServerError)
}
