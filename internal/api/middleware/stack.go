// SPDX-License-Identifier: MIT

// Package middleware provides the HTTP ingress middleware for the API server.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meet1785/youtube-next/internal/log"
)

// StackConfig selects the optional layers of the ingress stack.
// Recoverer and RequestID are always installed.
type StackConfig struct {
	EnableCORS     bool
	AllowedOrigins []string

	EnableSecurityHeaders bool
	CSP                   string

	EnableMetrics bool
	// TracingService names the server span tracer; empty disables tracing.
	TracingService string
	EnableLogging  bool
}

// NewRouter returns a chi router with the ingress stack installed.
func NewRouter(cfg StackConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cfg.middlewares()...)
	return r
}

// middlewares lists the stack outermost first. Recoverer wraps everything,
// and logging sits innermost so its latency covers the handler only.
func (cfg StackConfig) middlewares() []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{Recoverer, RequestID}
	if cfg.EnableCORS {
		mws = append(mws, CORS(cfg.AllowedOrigins))
	}
	if cfg.EnableSecurityHeaders {
		mws = append(mws, SecurityHeaders(cfg.CSP))
	}
	if cfg.EnableMetrics {
		mws = append(mws, Metrics())
	}
	if cfg.TracingService != "" {
		mws = append(mws, Tracing(cfg.TracingService))
	}
	if cfg.EnableLogging {
		mws = append(mws, log.Middleware())
	}
	return mws
}
