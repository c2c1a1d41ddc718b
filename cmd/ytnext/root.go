package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/version"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ytnext",
		Short: "YouTube search proxy with a web and terminal UI",
		Long: `ytnext serves GET /api/search backed by the YouTube Data API v3.
Without YOUTUBE_API_KEY it answers with deterministic mock results.

Examples:
  ytnext                      # same as "ytnext serve"
  ytnext search "golang"      # one search, printed as JSON
  ytnext tui                  # terminal client for a running server`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (YAML); defaults to $"+config.EnvConfigPath)

	root.AddCommand(
		newServeCmd(opts),
		newSearchCmd(opts),
		newTUICmd(),
		newHealthcheckCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig applies .env, then defaults < file < env, and reconfigures
// logging from the result. A nil logOut logs to stdout.
func loadConfig(opts *rootOptions, logOut io.Writer) (config.AppConfig, error) {
	log.Configure(log.Config{
		Level:   "info",
		Output:  logOut,
		Service: "ytnext",
		Version: version.Version,
	})

	if err := config.LoadDotEnv(); err != nil {
		return config.AppConfig{}, err
	}

	path := strings.TrimSpace(opts.configPath)
	if path == "" {
		path = strings.TrimSpace(config.ParseString(config.EnvConfigPath, ""))
	}

	cfg, err := config.NewLoader(path, version.Version).Load()
	if err != nil {
		logger := log.WithComponent("config")
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "config.load_failed").
			Str("config_path", path).
			Msg("failed to load configuration")
		return config.AppConfig{}, err
	}

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Output:  logOut,
		Service: cfg.LogService,
		Version: cfg.Version,
	})

	source := "env+defaults"
	if path != "" {
		source = "file"
	}
	logger := log.WithComponent("config")
	logger.Info().
		Str(log.FieldEvent, "config.loaded").
		Str("source", source).
		Fields(cfg.MaskedFields()).
		Msg("configuration loaded")
	return cfg, nil
}
