// Package api implements the HTTP surface of the search proxy.
package api

import (
	"net/http"

	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/health"
	"github.com/meet1785/youtube-next/internal/search"
)

// Server wires the search service and probes into an HTTP handler.
// It holds only immutable configuration and is safe for concurrent use.
type Server struct {
	cfg           config.AppConfig
	searcher      search.Searcher
	healthManager *health.Manager
}

// New creates the HTTP API server.
func New(cfg config.AppConfig, searcher search.Searcher, hm *health.Manager) (*Server, error) {
	if searcher == nil {
		return nil, ErrMissingSearcher
	}
	if hm == nil {
		hm = health.NewManager(cfg.Version)
	}
	return &Server{
		cfg:           cfg,
		searcher:      searcher,
		healthManager: hm,
	}, nil
}

// Handler returns the configured HTTP handler with all routes and middleware applied.
func (s *Server) Handler() http.Handler {
	return s.routes()
}
