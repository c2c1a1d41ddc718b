// Package config loads the daemon configuration from defaults, an optional
// YAML file and the process environment (in increasing precedence).
package config

import "time"

// Environment keys. YOUTUBE_API_KEY keeps its historic name so existing
// deployments keep working.
const (
	EnvYouTubeAPIKey      = "YOUTUBE_API_KEY"
	EnvYouTubeBaseURL     = "YTNEXT_YOUTUBE_BASE_URL"
	EnvUpstreamTimeout    = "YTNEXT_UPSTREAM_TIMEOUT"
	EnvConfigPath         = "YTNEXT_CONFIG"
	EnvListen             = "YTNEXT_LISTEN"
	EnvBindInterface      = "YTNEXT_BIND_INTERFACE"
	EnvMetricsListen      = "YTNEXT_METRICS_LISTEN"
	EnvLogLevel           = "YTNEXT_LOG_LEVEL"
	EnvLogService         = "YTNEXT_LOG_SERVICE"
	EnvAllowedOrigins     = "YTNEXT_ALLOWED_ORIGINS"
	EnvWebUI              = "YTNEXT_WEBUI"
	EnvTracingEnabled     = "YTNEXT_TRACING_ENABLED"
	EnvTracingExporter    = "YTNEXT_TRACING_EXPORTER"
	EnvTracingEndpoint    = "YTNEXT_TRACING_ENDPOINT"
	EnvTracingSampling    = "YTNEXT_TRACING_SAMPLING_RATE"
	EnvTracingEnvironment = "YTNEXT_TRACING_ENVIRONMENT"
)

const (
	// DefaultYouTubeBaseURL is the Data API root; the client appends youtube/v3/...
	DefaultYouTubeBaseURL  = "https://youtube.googleapis.com/"
	DefaultUpstreamTimeout = 15 * time.Second
	DefaultListenAddr      = ":8088"
)

// AppConfig is the fully merged, validated runtime configuration.
type AppConfig struct {
	Version string

	ListenAddr     string `validate:"required"`
	MetricsAddr    string
	LogLevel       string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	LogService     string
	AllowedOrigins []string
	WebUIEnabled   bool

	YouTube YouTubeConfig
	Tracing TracingConfig
	Server  ServerFileConfig
}

// YouTubeConfig configures the upstream Data API client.
type YouTubeConfig struct {
	// APIKey is the upstream credential. Empty selects mock mode.
	APIKey  string
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gte=0"`
}

// MockMode reports whether searches are answered with synthetic results.
func (c YouTubeConfig) MockMode() bool {
	return c.APIKey == ""
}

// TracingConfig configures the OpenTelemetry exporter.
type TracingConfig struct {
	Enabled      bool
	Exporter     string  `validate:"oneof=grpc http"`
	Endpoint     string  `validate:"required_if=Enabled true"`
	SamplingRate float64 `validate:"gte=0,lte=1"`
	Environment  string
}

// ServerFileConfig holds optional HTTP server tuning from the config file.
// Zero values mean "use the built-in default".
type ServerFileConfig struct {
	ReadTimeout     time.Duration `yaml:"readTimeout,omitempty" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"writeTimeout,omitempty" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idleTimeout,omitempty" validate:"gte=0"`
	MaxHeaderBytes  int           `yaml:"maxHeaderBytes,omitempty" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty" validate:"gte=0"`
}

// FileConfig mirrors the YAML document. Pointers distinguish "unset" from
// explicit zero values so the merge keeps defaults intact.
type FileConfig struct {
	Listen         string           `yaml:"listen,omitempty"`
	MetricsListen  string           `yaml:"metricsListen,omitempty"`
	LogLevel       string           `yaml:"logLevel,omitempty"`
	LogService     string           `yaml:"logService,omitempty"`
	AllowedOrigins []string         `yaml:"allowedOrigins,omitempty"`
	WebUI          *bool            `yaml:"webUI,omitempty"`
	YouTube        YouTubeFile      `yaml:"youtube,omitempty"`
	Tracing        TracingFile      `yaml:"tracing,omitempty"`
	Server         ServerFileConfig `yaml:"server,omitempty"`
}

// YouTubeFile is the youtube section of the config file.
type YouTubeFile struct {
	APIKey  string        `yaml:"apiKey,omitempty"`
	BaseURL string        `yaml:"baseURL,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// TracingFile is the tracing section of the config file.
type TracingFile struct {
	Enabled      *bool    `yaml:"enabled,omitempty"`
	Exporter     string   `yaml:"exporter,omitempty"`
	Endpoint     string   `yaml:"endpoint,omitempty"`
	SamplingRate *float64 `yaml:"samplingRate,omitempty"`
	Environment  string   `yaml:"environment,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		ListenAddr:   DefaultListenAddr,
		LogLevel:     "info",
		LogService:   "ytnext",
		WebUIEnabled: true,
		YouTube: YouTubeConfig{
			BaseURL: DefaultYouTubeBaseURL,
			Timeout: DefaultUpstreamTimeout,
		},
		Tracing: TracingConfig{
			Exporter:     "grpc",
			SamplingRate: 1.0,
			Environment:  "production",
		},
	}
}
