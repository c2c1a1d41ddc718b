package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/meet1785/youtube-next/internal/api"
	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/daemon"
	"github.com/meet1785/youtube-next/internal/health"
	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/metrics"
	"github.com/meet1785/youtube-next/internal/search"
	"github.com/meet1785/youtube-next/internal/telemetry"
	"github.com/meet1785/youtube-next/internal/version"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP search proxy (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

// newTracerProvider is swapped in tests to observe exporter shutdown.
var newTracerProvider = telemetry.NewProvider

// runServe blocks until ctx is cancelled or a listener fails.
func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts, nil)
	if err != nil {
		return err
	}
	logger := log.WithComponent("daemon")

	tp, err := newTracerProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Tracing.Environment,
		ExporterType:   cfg.Tracing.Exporter,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	svc, err := search.NewService(ctx, cfg.YouTube)
	if err != nil {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
		return fmt.Errorf("init search service: %w", err)
	}
	mode := svc.Mode()
	metrics.SetBuildInfo(version.Version, version.Commit, mode)
	if cfg.YouTube.MockMode() {
		logger.Warn().
			Str(log.FieldEvent, "startup.mock_mode").
			Msg("YOUTUBE_API_KEY not set, /api/search will return mock data")
	}

	hm := health.NewManager(cfg.Version)
	hm.RegisterChecker(health.NewUpstreamModeChecker(mode, cfg.YouTube.BaseURL))

	srv, err := api.New(cfg, svc, hm)
	if err != nil {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
		return err
	}

	serverCfg := config.ParseServerConfigForApp(cfg)
	metricsAddr := strings.TrimSpace(cfg.MetricsAddr)
	if bind := strings.TrimSpace(config.ParseString(config.EnvBindInterface, "")); bind != "" {
		if serverCfg.ListenAddr, err = config.BindListenAddr(serverCfg.ListenAddr, bind); err != nil {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
			return fmt.Errorf("invalid %s for API listen: %w", config.EnvBindInterface, err)
		}
		if metricsAddr != "" {
			if metricsAddr, err = config.BindListenAddr(metricsAddr, bind); err != nil {
				_ = tp.Shutdown(context.WithoutCancel(ctx))
				return fmt.Errorf("invalid %s for metrics listen: %w", config.EnvBindInterface, err)
			}
		}
	}

	var metricsHandler http.Handler
	if metricsAddr != "" {
		metricsHandler = promhttp.Handler()
	}

	mgr, err := daemon.NewManager(serverCfg, daemon.Deps{
		Logger:         logger,
		APIHandler:     srv.Handler(),
		MetricsHandler: metricsHandler,
		MetricsAddr:    metricsAddr,
		Health:         hm,
	})
	if err != nil {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
		return fmt.Errorf("create daemon manager: %w", err)
	}
	mgr.RegisterShutdownHook("telemetry", tp.Shutdown)

	logger.Info().
		Str(log.FieldEvent, "startup").
		Str("version", version.Version).
		Str("commit", version.Commit).
		Str("build_date", version.Date).
		Str("addr", serverCfg.ListenAddr).
		Str(log.FieldMode, mode).
		Msg("starting ytnext")

	if err := mgr.Start(ctx); err != nil {
		// A failed bind returns before the shutdown hooks are armed.
		if errors.Is(err, daemon.ErrServerStartFailed) {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}
		logger.Error().Err(err).Str(log.FieldEvent, "manager.failed").Msg("daemon failed")
		return err
	}
	logger.Info().Msg("server exiting")
	return nil
}
