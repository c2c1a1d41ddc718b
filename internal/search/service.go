package search

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/metrics"
	"github.com/meet1785/youtube-next/internal/telemetry"
	"github.com/meet1785/youtube-next/internal/youtube"
)

const tracerName = "github.com/meet1785/youtube-next/internal/search"

// Upstream performs one video search call against the Data API.
type Upstream interface {
	Search(ctx context.Context, query string, maxResults int64) ([]*ytapi.SearchResult, error)
}

// Searcher is the contract consumed by the HTTP layer and the CLI.
type Searcher interface {
	Search(ctx context.Context, query string) ([]VideoSummary, error)
	Mode() string
}

// Service answers searches. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	upstream Upstream
	now      func() time.Time
	tracer   trace.Tracer
}

// Option customizes a Service.
type Option func(*Service)

// WithUpstream replaces the Data API client. A nil upstream selects mock mode.
func WithUpstream(u Upstream) Option {
	return func(s *Service) { s.upstream = u }
}

// WithClock sets the time source used for mock timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTracer sets the tracer used for per-call spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// NewService builds the search service. Without an API key the service runs
// in mock mode; otherwise it talks to the configured Data API endpoint.
func NewService(ctx context.Context, cfg config.YouTubeConfig, opts ...Option) (*Service, error) {
	s := &Service{now: time.Now}
	if !cfg.MockMode() {
		client, err := youtube.New(ctx, youtube.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		s.upstream = client
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = telemetry.Tracer(tracerName)
	}
	return s, nil
}

// Mode reports "mock" or "youtube".
func (s *Service) Mode() string {
	if s.upstream == nil {
		return metrics.ModeMock
	}
	return metrics.ModeYouTube
}

// Search returns up to PageSize videos for query. The error, if any, wraps
// ErrInvalidRequest or ErrUpstream.
func (s *Service) Search(ctx context.Context, query string) (items []VideoSummary, err error) {
	mode := s.Mode()
	ctx, span := s.tracer.Start(ctx, "search.Search",
		trace.WithAttributes(telemetry.SearchAttributes(mode, len(query))...))
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
			if errors.Is(err, ErrInvalidRequest) {
				outcome = metrics.OutcomeInvalid
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		} else {
			span.SetAttributes(attribute.Int(telemetry.SearchResultsKey, len(items)))
		}
		metrics.RecordSearch(mode, outcome, len(items))
		span.End()
	}()

	logger := log.WithComponentFromContext(ctx, "search")

	if query == "" {
		return nil, invalidRequest("search", "query parameter is required")
	}

	if s.upstream == nil {
		logger.Warn().
			Str(log.FieldMode, mode).
			Msg("YouTube API key not configured, returning mock data")
		return mockResults(query, s.now()), nil
	}

	raw, err := s.upstream.Search(ctx, query, PageSize)
	if err != nil {
		serr := upstreamError("search", err)
		var se *youtube.StatusError
		if errors.As(err, &se) {
			serr.Status = se.Code
			serr.StatusText = se.StatusText
			span.SetAttributes(telemetry.ErrorAttributes("http_status", se.Code)...)
		}
		logger.Error().
			Err(err).
			Int(log.FieldStatus, serr.Status).
			Str(log.FieldStatusText, serr.StatusText).
			Msg("youtube search failed")
		return nil, serr
	}

	out, err := project(raw)
	if err != nil {
		span.SetAttributes(telemetry.ErrorAttributes("shape", 0)...)
		logger.Error().Err(err).Msg("unexpected youtube response shape")
		return nil, upstreamError("search.project", err)
	}
	if len(out) > PageSize {
		out = out[:PageSize]
	}
	return out, nil
}
