package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/meet1785/youtube-next/internal/log"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables already set win. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
		logger := log.WithComponent("config")
		logger.Debug().Str("file", f).Msg("loaded dotenv file")
	}
	return nil
}

// Loader merges defaults, an optional YAML file and the environment.
type Loader struct {
	configPath string
	version    string
}

// NewLoader creates a loader. An empty configPath skips the file layer.
func NewLoader(configPath, version string) *Loader {
	return &Loader{configPath: configPath, version: version}
}

// Load returns the merged configuration with precedence ENV > file > defaults.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if path := strings.TrimSpace(l.configPath); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		mergeFile(&cfg, fc)
	}

	mergeEnv(&cfg)
	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func loadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return parseFile(data)
}

// parseFile decodes a YAML document strictly; unknown keys are rejected.
func parseFile(data []byte) (*FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return &fc, nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

func mergeFile(cfg *AppConfig, fc *FileConfig) {
	if fc.Listen != "" {
		cfg.ListenAddr = fc.Listen
	}
	if fc.MetricsListen != "" {
		cfg.MetricsAddr = fc.MetricsListen
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogService != "" {
		cfg.LogService = fc.LogService
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = append([]string(nil), fc.AllowedOrigins...)
	}
	if fc.WebUI != nil {
		cfg.WebUIEnabled = *fc.WebUI
	}

	if fc.YouTube.APIKey != "" {
		cfg.YouTube.APIKey = expandEnv(fc.YouTube.APIKey)
	}
	if fc.YouTube.BaseURL != "" {
		cfg.YouTube.BaseURL = fc.YouTube.BaseURL
	}
	if fc.YouTube.Timeout > 0 {
		cfg.YouTube.Timeout = fc.YouTube.Timeout
	}

	if fc.Tracing.Enabled != nil {
		cfg.Tracing.Enabled = *fc.Tracing.Enabled
	}
	if fc.Tracing.Exporter != "" {
		cfg.Tracing.Exporter = fc.Tracing.Exporter
	}
	if fc.Tracing.Endpoint != "" {
		cfg.Tracing.Endpoint = fc.Tracing.Endpoint
	}
	if fc.Tracing.SamplingRate != nil {
		cfg.Tracing.SamplingRate = *fc.Tracing.SamplingRate
	}
	if fc.Tracing.Environment != "" {
		cfg.Tracing.Environment = fc.Tracing.Environment
	}

	cfg.Server = fc.Server
}

func mergeEnv(cfg *AppConfig) {
	cfg.YouTube.APIKey = ParseString(EnvYouTubeAPIKey, cfg.YouTube.APIKey)
	cfg.YouTube.BaseURL = ParseString(EnvYouTubeBaseURL, cfg.YouTube.BaseURL)
	cfg.YouTube.Timeout = ParseDuration(EnvUpstreamTimeout, cfg.YouTube.Timeout)

	cfg.ListenAddr = ParseString(EnvListen, cfg.ListenAddr)
	cfg.MetricsAddr = ParseString(EnvMetricsListen, cfg.MetricsAddr)
	cfg.LogLevel = strings.ToLower(ParseString(EnvLogLevel, cfg.LogLevel))
	cfg.LogService = ParseString(EnvLogService, cfg.LogService)
	cfg.AllowedOrigins = ParseList(EnvAllowedOrigins, cfg.AllowedOrigins)
	cfg.WebUIEnabled = ParseBool(EnvWebUI, cfg.WebUIEnabled)

	cfg.Tracing.Enabled = ParseBool(EnvTracingEnabled, cfg.Tracing.Enabled)
	cfg.Tracing.Exporter = ParseString(EnvTracingExporter, cfg.Tracing.Exporter)
	cfg.Tracing.Endpoint = ParseString(EnvTracingEndpoint, cfg.Tracing.Endpoint)
	cfg.Tracing.SamplingRate = ParseFloat(EnvTracingSampling, cfg.Tracing.SamplingRate)
	cfg.Tracing.Environment = ParseString(EnvTracingEnvironment, cfg.Tracing.Environment)
}

// expandEnv expands ${VAR} references so files can point at secrets.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}
