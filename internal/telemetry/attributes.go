// SPDX-License-Identifier: MIT

package telemetry

import "go.opentelemetry.io/otel/attribute"

// Attribute keys shared by search spans.
const (
	SearchModeKey        = "search.mode"
	SearchQueryLengthKey = "search.query_length"
	SearchResultsKey     = "search.results"
	UpstreamStatusKey    = "upstream.status_code"
	ErrorTypeKey         = "error.type"
)

// SearchAttributes describes a search call before it runs.
func SearchAttributes(mode string, queryLen int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(SearchModeKey, mode),
		attribute.Int(SearchQueryLengthKey, queryLen),
	}
}

// ErrorAttributes classifies a failed call.
func ErrorAttributes(errType string, status int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(ErrorTypeKey, errType)}
	if status > 0 {
		attrs = append(attrs, attribute.Int(UpstreamStatusKey, status))
	}
	return attrs
}
