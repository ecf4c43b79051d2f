package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/manuaishika/researchrepo/internal/config"
	"github.com/manuaishika/researchrepo/internal/debuglog"
)

// Endpoint paths on the backend.
const (
	pathSearch      = "/api/search"
	pathSuggestions = "/api/search-suggestions"
	pathCategories  = "/api/categories"
	pathYears       = "/api/years"
	pathPapers      = "/api/popular-papers"
)

// Client talks to the paper-search backend over HTTP GET + JSON. It is
// safe for concurrent use. Requests pass through a token-bucket rate
// limiter and a bounded retry on HTTP 429.
type Client struct {
	baseURL    string
	userAgent  string
	maxRetries int
	client     *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client from the api section of the config. The
// base URL is used as-is; validate it before constructing the client.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		userAgent:  cfg.API.UserAgent,
		maxRetries: cfg.API.MaxRetries,
		client:     &http.Client{Timeout: cfg.API.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.API.RequestsPerSecond), cfg.API.Burst),
	}
}

// Search runs the main search. category is omitted from the request
// when empty; year is never sent to this endpoint.
func (c *Client) Search(ctx context.Context, query, category string) (*SearchResult, error) {
	params := url.Values{"q": {query}}
	if category != "" {
		params.Set("category", category)
	}
	var resp searchResponse
	if err := c.getJSON(ctx, pathSearch, params, &resp); err != nil {
		return nil, err
	}
	return &SearchResult{Videos: resp.Videos, Repos: resp.Repos}, nil
}

// Suggestions fetches autocomplete rows for query.
func (c *Client) Suggestions(ctx context.Context, query string) ([]Suggestion, error) {
	var resp suggestionsResponse
	if err := c.getJSON(ctx, pathSuggestions, url.Values{"q": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// Categories lists the sidebar categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := c.getJSON(ctx, pathCategories, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Years lists the selectable publication years.
func (c *Client) Years(ctx context.Context) ([]int, error) {
	var resp yearsResponse
	if err := c.getJSON(ctx, pathYears, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Years, nil
}

// PopularPapers fetches the popular-papers panel for a category and,
// when year is nonzero, a publication year.
func (c *Client) PopularPapers(ctx context.Context, category string, year int) ([]PopularPaper, error) {
	params := url.Values{"category": {category}}
	if year != 0 {
		params.Set("year", strconv.Itoa(year))
	}
	var resp papersResponse
	if err := c.getJSON(ctx, pathPapers, params, &resp); err != nil {
		return nil, err
	}
	return resp.Papers, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, Code: resp.StatusCode, Message: errorBody(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// doWithRetry waits for the rate limiter, executes the request, and
// retries on HTTP 429 up to maxRetries times, honoring Retry-After.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := retryAfter(resp, time.Duration(1<<attempt)*time.Second)
		debuglog.WithFields(map[string]any{
			"path":    req.URL.Path,
			"attempt": attempt + 1,
			"backoff": backoff.String(),
		}).Warnf("rate limited by backend, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// retryAfter parses a Retry-After header expressed in seconds, falling
// back to def.
func retryAfter(resp *http.Response, def time.Duration) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}

// errorBody pulls an {"error": "..."} message out of a failure body, if
// one exists. Reads are capped; failures here are not worth reporting.
func errorBody(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}
