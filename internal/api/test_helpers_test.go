package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/health"
	"github.com/meet1785/youtube-next/internal/search"
	"github.com/meet1785/youtube-next/internal/youtube"
)

// stubSearcher returns a canned answer and counts calls.
type stubSearcher struct {
	items []search.VideoSummary
	err   error
	mode  string
	calls int
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]search.VideoSummary, error) {
	s.calls++
	return s.items, s.err
}

func (s *stubSearcher) Mode() string {
	if s.mode == "" {
		return "mock"
	}
	return s.mode
}

func testConfig() config.AppConfig {
	cfg := config.Defaults()
	cfg.Version = "v-test"
	cfg.WebUIEnabled = true
	return cfg
}

func newTestServer(t *testing.T, cfg config.AppConfig, s search.Searcher) *Server {
	t.Helper()
	srv, err := New(cfg, s, health.NewManager(cfg.Version))
	require.NoError(t, err)
	return srv
}

// newMockModeServer wires the real search service without an API key.
func newMockModeServer(t *testing.T) *Server {
	t.Helper()
	svc, err := search.NewService(context.Background(), config.YouTubeConfig{},
		search.WithClock(func() time.Time { return time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)
	return newTestServer(t, testConfig(), svc)
}

// newUpstreamServer wires the real search service against a fake Data API.
func newUpstreamServer(t *testing.T) (*Server, *youtube.MockServer) {
	t.Helper()
	m := youtube.NewMockServer()
	t.Cleanup(m.Close)

	svc, err := search.NewService(context.Background(), config.YouTubeConfig{
		APIKey:  "test-key",
		BaseURL: m.BaseURL(),
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return newTestServer(t, testConfig(), svc), m
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
