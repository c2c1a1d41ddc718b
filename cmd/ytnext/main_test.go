package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/meet1785/youtube-next/internal/config"
	"github.com/meet1785/youtube-next/internal/daemon"
	"github.com/meet1785/youtube-next/internal/search"
	"github.com/meet1785/youtube-next/internal/telemetry"
	"github.com/meet1785/youtube-next/internal/version"
)

// isolate keeps stray .env files and operator env out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvYouTubeAPIKey, "")
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvBindInterface, "")
	t.Setenv(config.EnvMetricsListen, "")
	t.Setenv(config.EnvTracingEnabled, "false")
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestSearchCommand_MockMode(t *testing.T) {
	isolate(t)

	out, stderr, err := execute(t, "search", "cats")
	require.NoError(t, err)

	var resp search.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "stdout must be pure JSON")
	require.Len(t, resp.Items, search.PageSize)
	assert.Equal(t, "cats - Sample Video 1", resp.Items[0].Title)
	assert.Contains(t, stderr, "mock data")
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	_, _, err := execute(t, "search")
	require.Error(t, err)
}

func TestSearchCommand_EmptyQuery(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "search", "")
	require.ErrorIs(t, err, search.ErrInvalidRequest)
}

func TestHealthcheckCommand(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/readyz" && r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	out, _, err := execute(t, "healthcheck", "--host", host, "--port", port)
	require.NoError(t, err)
	assert.Contains(t, out, "Healthcheck successful (ready)")

	_, _, err = execute(t, "healthcheck", "--host", host, "--port", port, "--mode", "live")
	require.NoError(t, err)

	status = http.StatusServiceUnavailable
	_, _, err = execute(t, "healthcheck", "--host", host, "--port", port)
	require.Error(t, err)

	_, _, err = execute(t, "healthcheck", "--mode", "bogus")
	require.Error(t, err)
}

func TestServe_InvalidBindInterface(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBindInterface, "if:ytnext-missing0")

	err := runServe(context.Background(), &rootOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvBindInterface)
}

// shutdownRecorder is a span exporter that only notes Shutdown.
type shutdownRecorder struct {
	shutdown atomic.Bool
}

func (r *shutdownRecorder) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }

func (r *shutdownRecorder) Shutdown(context.Context) error {
	r.shutdown.Store(true)
	return nil
}

func TestServe_BindFailureFlushesTracer(t *testing.T) {
	isolate(t)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	t.Setenv(config.EnvListen, busy.Addr().String())

	exp := &shutdownRecorder{}
	prevTP := otel.GetTracerProvider()
	prevNew := newTracerProvider
	newTracerProvider = func(ctx context.Context, cfg telemetry.Config) (*telemetry.Provider, error) {
		return telemetry.NewProviderWithExporter(ctx, cfg, exp)
	}
	t.Cleanup(func() {
		newTracerProvider = prevNew
		otel.SetTracerProvider(prevTP)
	})

	err = runServe(context.Background(), &rootOptions{})
	require.ErrorIs(t, err, daemon.ErrServerStartFailed)
	assert.True(t, exp.shutdown.Load(), "tracer provider not shut down")
}

func TestServe_StopsOnCancel(t *testing.T) {
	isolate(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	t.Setenv(config.EnvListen, "127.0.0.1:"+strconv.Itoa(port))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runServe(ctx, &rootOptions{}) }()

	base := "http://127.0.0.1:" + strconv.Itoa(port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/readyz") //nolint:noctx // test probe
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(base + "/api/search?q=cats") //nolint:noctx // test probe
	require.NoError(t, err)
	var body search.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	assert.Len(t, body.Items, search.PageSize)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
