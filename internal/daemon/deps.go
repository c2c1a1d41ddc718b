// SPDX-License-Identifier: MIT

package daemon

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/meet1785/youtube-next/internal/health"
)

// Deps contains dependencies required by the daemon Manager.
type Deps struct {
	Logger zerolog.Logger

	// APIHandler serves the search API, probes and web UI.
	APIHandler http.Handler

	// MetricsHandler and MetricsAddr enable a dedicated metrics listener.
	// Both must be set; otherwise metrics stay on the API router.
	MetricsHandler http.Handler
	MetricsAddr    string

	// Health, if set, is flipped to draining when shutdown begins.
	Health *health.Manager
}

// Validate checks if the dependencies are valid.
func (d *Deps) Validate() error {
	if d.Logger.GetLevel() == zerolog.Disabled {
		return ErrMissingLogger
	}
	if d.APIHandler == nil {
		return ErrMissingAPIHandler
	}
	return nil
}
