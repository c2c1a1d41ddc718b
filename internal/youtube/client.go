// Package youtube is a thin client for the YouTube Data API v3 search call.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/metrics"
	"github.com/meet1785/youtube-next/internal/platform/httpx"
)

// DefaultBaseURL is the public Data API root.
const DefaultBaseURL = "https://youtube.googleapis.com/"

// HeaderAPIKey carries the credential. Keeping it out of the query string
// keeps it out of url.Error text and client span attributes.
const HeaderAPIKey = "X-Goog-Api-Key"

// Config configures a Client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the hardened default transport.
	HTTPClient *http.Client
}

// Client issues search.list calls. It is safe for concurrent use.
type Client struct {
	svc    *ytapi.Service
	apiKey string
	logger zerolog.Logger
}

// New builds a client. The credential is attached per call, so the
// underlying service never looks for ambient Google credentials.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("youtube: api key is required")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("youtube: invalid base url: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpx.NewClient("youtube", cfg.Timeout)
	}

	svc, err := ytapi.NewService(ctx,
		option.WithHTTPClient(hc),
		option.WithEndpoint(base),
	)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}

	return &Client{
		svc:    svc,
		apiKey: cfg.APIKey,
		logger: log.WithComponent("youtube"),
	}, nil
}

// Search runs one search.list call restricted to videos and returns the raw
// items in relevance order. It never retries.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]*ytapi.SearchResult, error) {
	start := time.Now()
	call := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)
	call.Header().Set(HeaderAPIKey, c.apiKey)
	resp, err := call.Do()
	elapsed := time.Since(start)

	if err != nil {
		err = classify(err)
		outcome := "transport_error"
		var se *StatusError
		switch {
		case errors.As(err, &se):
			outcome = "http_error"
			metrics.IncUpstreamStatus(strconv.Itoa(se.Code))
		case errors.Is(err, ErrBadResponse):
			outcome = "decode_error"
		}
		metrics.ObserveUpstream(outcome, elapsed)
		logger := log.WithComponentFromContext(ctx, "youtube")
		logger.Warn().
			Err(err).
			Str("outcome", outcome).
			Int64(log.FieldDurationMS, elapsed.Milliseconds()).
			Msg("youtube search failed")
		return nil, err
	}

	metrics.IncUpstreamStatus(strconv.Itoa(resp.HTTPStatusCode))
	metrics.ObserveUpstream("success", elapsed)
	c.logger.Debug().
		Int(log.FieldResultCount, len(resp.Items)).
		Int64(log.FieldDurationMS, elapsed.Milliseconds()).
		Msg("youtube search completed")
	return resp.Items, nil
}

// classify maps client library errors onto this package's error types.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return newStatusError(gerr.Code, gerr.Message)
	}
	var uerr *url.Error
	if errors.As(err, &uerr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return fmt.Errorf("%w: %w", ErrBadResponse, err)
}
