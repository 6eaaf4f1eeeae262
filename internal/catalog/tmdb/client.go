package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/moviehouse/internal/domain"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
)

// Config holds the client settings
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64 // <= 0 disables rate limiting
}

// Client implements domain.Catalog for the TMDB v3 API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = max(1, int(cfg.RequestsPerSecond))
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(limit, burst),
		retryDelay: baseRetryDelay,
		logger:     logger,
	}
}

// doRequest performs an authenticated GET against the API.
// Includes retry logic with exponential backoff for 5xx server errors.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Wait before retry (exponential backoff)
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1))
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "path", path)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("tmdb request", "path", path, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Error("tmdb request failed", "path", path, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNetwork, err)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, domain.ErrAuthFailed
		}

		// Retry on 5xx server errors
		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			lastErr = fmt.Errorf("%w: server error %d", domain.ErrNetwork, resp.StatusCode)
			c.logger.Warn("tmdb server error, will retry",
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", maxRetries,
				"path", path,
			)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			msg := statusMessage(body)
			c.logger.Error("tmdb request error", "status", resp.StatusCode, "path", path, "message", msg)
			return nil, fmt.Errorf("%w: unexpected status %d: %s", domain.ErrNetwork, resp.StatusCode, msg)
		}

		return body, nil
	}

	c.logger.Error("tmdb request failed after retries", "error", lastErr, "path", path)
	return nil, lastErr
}

// statusMessage extracts the API's status_message, falling back to the raw body
func statusMessage(body []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.StatusMessage != "" {
		return apiErr.StatusMessage
	}
	return strings.TrimSpace(string(body))
}

// Discover returns one page of movies for the given criteria.
// The free-text query is passed through as-is; with_genres is omitted when no genre is set.
func (c *Client) Discover(ctx context.Context, criteria domain.Criteria, page int) ([]domain.Movie, error) {
	if page < 1 {
		page = 1
	}
	sortKey := criteria.SortKey
	if !sortKey.Valid() {
		sortKey = domain.DefaultSortKey
	}

	query := url.Values{}
	query.Set("sort_by", string(sortKey))
	query.Set("page", strconv.Itoa(page))
	if criteria.HasGenre() {
		query.Set("with_genres", strconv.Itoa(criteria.GenreID))
	}
	query.Set("query", criteria.SearchText)

	return c.fetchMovies(ctx, "/discover/movie", query)
}

// Search returns movies matching the query
func (c *Client) Search(ctx context.Context, q string) ([]domain.Movie, error) {
	query := url.Values{}
	query.Set("query", q)
	return c.fetchMovies(ctx, "/search/movie", query)
}

func (c *Client) fetchMovies(ctx context.Context, path string, query url.Values) ([]domain.Movie, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var resp MovieListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results field", domain.ErrMalformedResponse)
	}

	return MapMovies(resp.Results), nil
}

// Genres returns the full movie genre list
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	body, err := c.doRequest(ctx, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}

	var resp GenreListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if resp.Genres == nil {
		return nil, fmt.Errorf("%w: missing genres field", domain.ErrMalformedResponse)
	}

	return MapGenres(resp.Genres), nil
}

// MoviePageURL returns the public web page for a movie
func MoviePageURL(id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", id)
}
