package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerConfigForApp(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		envVars map[string]string
		want    ServerConfig
	}{
		{
			name: "defaults",
			cfg:  AppConfig{},
			want: ServerConfig{
				ListenAddr:      ":8088",
				ReadTimeout:     15 * time.Second,
				WriteTimeout:    60 * time.Second,
				IdleTimeout:     120 * time.Second,
				MaxHeaderBytes:  1 << 20,
				ShutdownTimeout: 15 * time.Second,
			},
		},
		{
			name: "file values",
			cfg: AppConfig{
				ListenAddr: "127.0.0.1:9000",
				Server:     ServerFileConfig{ReadTimeout: 5 * time.Second, ShutdownTimeout: 8 * time.Second},
			},
			want: ServerConfig{
				ListenAddr:      "127.0.0.1:9000",
				ReadTimeout:     5 * time.Second,
				WriteTimeout:    60 * time.Second,
				IdleTimeout:     120 * time.Second,
				MaxHeaderBytes:  1 << 20,
				ShutdownTimeout: 8 * time.Second,
			},
		},
		{
			name: "env wins and shutdown has a floor",
			cfg:  AppConfig{Server: ServerFileConfig{ReadTimeout: 5 * time.Second}},
			envVars: map[string]string{
				"YTNEXT_SERVER_READ_TIMEOUT":     "10s",
				"YTNEXT_SERVER_WRITE_TIMEOUT":    "20s",
				"YTNEXT_SERVER_IDLE_TIMEOUT":     "300s",
				"YTNEXT_SERVER_MAX_HEADER_BYTES": "-5",
				"YTNEXT_SERVER_SHUTDOWN_TIMEOUT": "1s",
			},
			want: ServerConfig{
				ListenAddr:      ":8088",
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    20 * time.Second,
				IdleTimeout:     300 * time.Second,
				MaxHeaderBytes:  1 << 20,
				ShutdownTimeout: 3 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"YTNEXT_SERVER_READ_TIMEOUT", "YTNEXT_SERVER_WRITE_TIMEOUT", "YTNEXT_SERVER_IDLE_TIMEOUT",
				"YTNEXT_SERVER_MAX_HEADER_BYTES", "YTNEXT_SERVER_SHUTDOWN_TIMEOUT",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, ParseServerConfigForApp(tt.cfg))
		})
	}
}

func TestBindListenAddr(t *testing.T) {
	got, err := BindListenAddr(":8088", "")
	require.NoError(t, err)
	assert.Equal(t, ":8088", got)

	got, err = BindListenAddr(":8088", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8088", got)

	got, err = BindListenAddr("", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", got)

	got, err = BindListenAddr("10.0.0.1:9000", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:9000", got, "explicit host is kept")

	_, err = BindListenAddr(":8088", "if:definitely-not-an-interface0")
	assert.Error(t, err)
}
