// Package daemon owns the HTTP server lifecycle of the search service.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/meet1785/youtube-next/internal/config"
)

// ShutdownHook is a function that performs cleanup during graceful shutdown.
// Hooks are executed in reverse registration order (LIFO).
type ShutdownHook func(ctx context.Context) error

// Manager manages the daemon lifecycle: starting servers, handling shutdown.
type Manager interface {
	// Start binds all configured servers and blocks until ctx is cancelled,
	// Shutdown is called, or a server fails.
	Start(ctx context.Context) error

	// Shutdown gracefully shuts down all servers
	Shutdown(ctx context.Context) error

	// RegisterShutdownHook registers a function to be called during shutdown
	RegisterShutdownHook(name string, hook ShutdownHook)
}

type manager struct {
	serverCfg config.ServerConfig
	deps      Deps

	apiServer     *http.Server
	metricsServer *http.Server

	shutdownHooks []namedHook

	started  bool
	stopping bool
	stopped  chan struct{}
	mu       sync.Mutex

	logger zerolog.Logger
}

type namedHook struct {
	name string
	hook ShutdownHook
}

// NewManager creates a new daemon manager with the given configuration and dependencies.
func NewManager(serverCfg config.ServerConfig, deps Deps) (Manager, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &manager{
		serverCfg: serverCfg,
		deps:      deps,
		stopped:   make(chan struct{}),
		logger:    deps.Logger.With().Str("component", "manager").Logger(),
	}, nil
}

func (m *manager) Start(ctx context.Context) error {
	if ctx == nil {
		return errors.New("start context is nil")
	}

	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrManagerAlreadyStarted
	}
	apiLn, metricsLn, err := m.bindLocked()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.started = true
	m.mu.Unlock()

	m.logger.Info().
		Str("listen", apiLn.Addr().String()).
		Dur("read_timeout", m.serverCfg.ReadTimeout).
		Dur("write_timeout", m.serverCfg.WriteTimeout).
		Dur("shutdown_timeout", m.serverCfg.ShutdownTimeout).
		Msg("starting daemon manager")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.serve("api", m.apiServer, apiLn)
	})
	if metricsLn != nil {
		g.Go(func() error {
			return m.serve("metrics", m.metricsServer, metricsLn)
		})
	}
	g.Go(func() error {
		select {
		case <-m.stopped:
			return nil
		case <-gctx.Done():
		}
		if ctx.Err() != nil {
			m.logger.Info().Msg("shutdown signal received")
		}
		return m.Shutdown(context.WithoutCancel(ctx))
	})

	return g.Wait()
}

// bindLocked opens the listeners synchronously so address conflicts surface
// as a Start error. Caller holds m.mu.
func (m *manager) bindLocked() (apiLn, metricsLn net.Listener, err error) {
	apiLn, err = net.Listen("tcp", m.serverCfg.ListenAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: api %s: %w", ErrServerStartFailed, m.serverCfg.ListenAddr, err)
	}
	m.apiServer = &http.Server{
		Handler:           m.deps.APIHandler,
		ReadTimeout:       m.serverCfg.ReadTimeout,
		ReadHeaderTimeout: m.serverCfg.ReadTimeout / 2,
		WriteTimeout:      m.serverCfg.WriteTimeout,
		IdleTimeout:       m.serverCfg.IdleTimeout,
		MaxHeaderBytes:    m.serverCfg.MaxHeaderBytes,
	}

	if m.deps.MetricsHandler == nil || m.deps.MetricsAddr == "" {
		return apiLn, nil, nil
	}
	metricsLn, err = net.Listen("tcp", m.deps.MetricsAddr)
	if err != nil {
		_ = apiLn.Close()
		m.apiServer = nil
		return nil, nil, fmt.Errorf("%w: metrics %s: %w", ErrServerStartFailed, m.deps.MetricsAddr, err)
	}
	m.metricsServer = &http.Server{
		Handler:           m.deps.MetricsHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return apiLn, metricsLn, nil
}

func (m *manager) serve(name string, srv *http.Server, ln net.Listener) error {
	m.logger.Info().Str("addr", ln.Addr().String()).Msgf("%s server listening", name)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		m.logger.Error().
			Err(err).
			Str("event", name+".server.failed").
			Msgf("%s server failed", name)
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

func (m *manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return errors.New("shutdown context is nil")
	}

	m.mu.Lock()
	if m.stopping {
		m.mu.Unlock()
		return nil
	}
	if !m.started {
		m.mu.Unlock()
		return ErrManagerNotStarted
	}
	m.stopping = true
	hooks := append([]namedHook(nil), m.shutdownHooks...)
	m.mu.Unlock()
	defer close(m.stopped)

	m.logger.Info().Msg("shutting down daemon manager")
	if m.deps.Health != nil {
		m.deps.Health.SetDraining(true)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.serverCfg.ShutdownTimeout)
	defer cancel()

	var errs []error

	if m.apiServer != nil {
		if err := m.apiServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("API server shutdown: %w", err))
		}
	}
	if m.metricsServer != nil {
		if err := m.metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	for i := len(hooks) - 1; i >= 0; i-- {
		hook := hooks[i]
		hookStart := time.Now()
		if err := hook.hook(shutdownCtx); err != nil {
			m.logger.Error().
				Err(err).
				Str("hook", hook.name).
				Dur("duration", time.Since(hookStart)).
				Msg("shutdown hook failed")
			errs = append(errs, fmt.Errorf("hook %s: %w", hook.name, err))
			continue
		}
		m.logger.Debug().
			Str("hook", hook.name).
			Dur("duration", time.Since(hookStart)).
			Msg("shutdown hook completed")
	}

	if len(errs) > 0 {
		m.logger.Error().Int("error_count", len(errs)).Msg("shutdown completed with errors")
		return fmt.Errorf("shutdown errors: %w", errors.Join(errs...))
	}

	m.logger.Info().Msg("daemon manager stopped cleanly")
	return nil
}

// RegisterShutdownHook registers a cleanup function to be called during shutdown.
// Hooks are executed in reverse registration order (LIFO).
func (m *manager) RegisterShutdownHook(name string, hook ShutdownHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shutdownHooks = append(m.shutdownHooks, namedHook{name: name, hook: hook})
	m.logger.Debug().Str("hook", name).Msg("registered shutdown hook")
}
