// Package metrics holds the Prometheus collectors for search traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values.
const (
	ModeMock    = "mock"
	ModeYouTube = "youtube"

	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	searchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytnext_search_requests_total",
		Help: "Search proxy calls by mode and outcome",
	}, []string{"mode", "outcome"}) // mode=mock|youtube, outcome=success|invalid|error

	searchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ytnext_search_results",
		Help:    "Number of videos returned per successful search",
		Buckets: []float64{0, 1, 3, 6, 9, 12},
	})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ytnext_upstream_request_duration_seconds",
		Help:    "Latency of YouTube Data API search calls",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"outcome"}) // outcome=success|http_error|transport_error

	upstreamStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytnext_upstream_responses_total",
		Help: "Upstream responses by HTTP status code",
	}, []string{"code"})
)

// RecordSearch counts one search call. results is observed only on success.
func RecordSearch(mode, outcome string, results int) {
	searchRequestsTotal.WithLabelValues(mode, outcome).Inc()
	if outcome == OutcomeSuccess {
		searchResults.Observe(float64(results))
	}
}

// ObserveUpstream records the latency of one upstream call.
func ObserveUpstream(outcome string, d time.Duration) {
	upstreamRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// IncUpstreamStatus counts an upstream response by status code.
func IncUpstreamStatus(code string) { upstreamStatusTotal.WithLabelValues(code).Inc() }
