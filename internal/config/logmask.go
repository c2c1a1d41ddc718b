// SPDX-License-Identifier: MIT

package config

import "strings"

// sensitiveKeywords contains keywords that indicate sensitive fields.
// Any key containing these keywords (case-insensitive) is masked.
var sensitiveKeywords = []string{
	"password",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MaskSecret renders a credential for logs: "" stays empty, anything else is "***".
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

// MaskedFields returns a flat, log-safe view of the configuration.
func (c AppConfig) MaskedFields() map[string]any {
	return map[string]any{
		"listen":           c.ListenAddr,
		"metrics_listen":   c.MetricsAddr,
		"log_level":        c.LogLevel,
		"allowed_origins":  c.AllowedOrigins,
		"webui":            c.WebUIEnabled,
		"youtube_api_key":  MaskSecret(c.YouTube.APIKey),
		"youtube_base":     c.YouTube.BaseURL,
		"upstream_timeout": c.YouTube.Timeout.String(),
		"mock_mode":        c.YouTube.MockMode(),
		"tracing_enabled":  c.Tracing.Enabled,
	}
}
