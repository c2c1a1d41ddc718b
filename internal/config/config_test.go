// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvYouTubeAPIKey, EnvYouTubeBaseURL, EnvUpstreamTimeout, EnvListen,
		EnvMetricsListen, EnvLogLevel, EnvLogService, EnvAllowedOrigins, EnvWebUI,
		EnvTracingEnabled, EnvTracingExporter, EnvTracingEndpoint,
		EnvTracingSampling, EnvTracingEnvironment,
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("", "v-test").Load()
	require.NoError(t, err)

	assert.Equal(t, "v-test", cfg.Version)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultYouTubeBaseURL, cfg.YouTube.BaseURL)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.YouTube.Timeout)
	assert.True(t, cfg.YouTube.MockMode(), "no credential means mock mode")
	assert.True(t, cfg.WebUIEnabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoader_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
listen: ":9100"
logLevel: debug
allowedOrigins: ["http://localhost:3000"]
webUI: false
youtube:
  baseURL: "http://127.0.0.1:9999/"
  timeout: 3s
server:
  shutdownTimeout: 5s
`)

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.WebUIEnabled)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.YouTube.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.YouTube.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoader_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "listen: \":9100\"\nyoutube:\n  apiKey: from-file\n")
	t.Setenv(EnvListen, ":9200")
	t.Setenv(EnvYouTubeAPIKey, "from-env")
	t.Setenv(EnvAllowedOrigins, "https://a.example, ,https://b.example")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	assert.Equal(t, ":9200", cfg.ListenAddr)
	assert.Equal(t, "from-env", cfg.YouTube.APIKey)
	assert.False(t, cfg.YouTube.MockMode())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoader_FileExpandsEnvInAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("YTNEXT_TEST_SECRET", "expanded")
	path := writeFile(t, "youtube:\n  apiKey: ${YTNEXT_TEST_SECRET}\n")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.YouTube.APIKey)
}

func TestLoader_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile_RejectsUnknownKeys(t *testing.T) {
	_, err := parseFile([]byte("listen: \":1\"\nbogus: true\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownConfigField)
}

func TestParseFile_Empty(t *testing.T) {
	fc, err := parseFile(nil)
	require.NoError(t, err)
	assert.NotNil(t, fc)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*AppConfig) {}},
		{
			name:    "bad log level",
			mutate:  func(c *AppConfig) { c.LogLevel = "loud" },
			wantErr: "LogLevel",
		},
		{
			name:    "base url must parse",
			mutate:  func(c *AppConfig) { c.YouTube.BaseURL = "not a url" },
			wantErr: "YouTube.BaseURL",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *AppConfig) { c.YouTube.Timeout = -time.Second },
			wantErr: "YouTube.Timeout",
		},
		{
			name:    "tracing needs endpoint",
			mutate:  func(c *AppConfig) { c.Tracing.Enabled = true },
			wantErr: "Tracing.Endpoint",
		},
		{
			name:    "sampling rate bounded",
			mutate:  func(c *AppConfig) { c.Tracing.SamplingRate = 1.5 },
			wantErr: "Tracing.SamplingRate",
		},
		{
			name:    "unknown exporter",
			mutate:  func(c *AppConfig) { c.Tracing.Exporter = "zipkin" },
			wantErr: "Tracing.Exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("YTNEXT_DOTENV_A=from-file\nYTNEXT_DOTENV_B=from-file\n"), 0o600))

	t.Setenv("YTNEXT_DOTENV_B", "preset")
	t.Cleanup(func() { _ = os.Unsetenv("YTNEXT_DOTENV_A") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("YTNEXT_DOTENV_A"))
	assert.Equal(t, "preset", os.Getenv("YTNEXT_DOTENV_B"), "existing variables win")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "***", MaskSecret("AIzaSyExample"))

	cfg := Defaults()
	cfg.YouTube.APIKey = "AIzaSyExample"
	fields := cfg.MaskedFields()
	assert.Equal(t, "***", fields["youtube_api_key"])
	assert.Equal(t, false, fields["mock_mode"])
	for _, v := range fields {
		assert.NotEqual(t, "AIzaSyExample", v)
	}
}
