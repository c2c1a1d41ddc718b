package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meet1785/youtube-next/internal/platform/httpx"
	"github.com/meet1785/youtube-next/internal/search"
)

// ErrFetchFailed is shown for any non-2xx answer from the proxy.
var ErrFetchFailed = errors.New("Failed to fetch videos") //nolint:staticcheck // user-facing text

const defaultClientTimeout = 20 * time.Second

// Searcher is the part of the proxy contract the UI needs.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.VideoSummary, error)
}

// Client calls GET /api/search on a running proxy.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the proxy at baseURL. A nil httpClient
// selects the hardened default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httpx.NewClient("ytnext-tui", defaultClientTimeout)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Search performs one search. The raw query is URL-encoded exactly once.
func (c *Client) Search(ctx context.Context, query string) ([]search.VideoSummary, error) {
	target := c.baseURL + "/api/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrFetchFailed
	}

	var body search.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return body.Items, nil
}
