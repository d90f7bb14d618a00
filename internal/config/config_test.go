package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.Browse.PageSize)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.False(t, cfg.UI.ShowInspector)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://localhost:9000/api
  timeout: 3s
browse:
  page_size: 25
ui:
  show_inspector: true
metrics:
  addr: 127.0.0.1:9100
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api", cfg.Server.URL)
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 25, cfg.Browse.PageSize)
	assert.True(t, cfg.UI.ShowInspector)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
	assert.Equal(t, "INFO", cfg.Logging.Level, "unset keys keep defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "browse:\n  page_size: 25\n")
	t.Setenv("VITRINE_BROWSE_PAGE_SIZE", "40")
	t.Setenv("VITRINE_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Browse.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty url", func(c *Config) { c.Server.URL = "" }, true},
		{"relative url", func(c *Config) { c.Server.URL = "api/v1" }, true},
		{"page size zero", func(c *Config) { c.Browse.PageSize = 0 }, true},
		{"page size too large", func(c *Config) { c.Browse.PageSize = MaxPageSize + 1 }, true},
		{"page size max", func(c *Config) { c.Browse.PageSize = MaxPageSize }, false},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "WARN")

	logger.Info("hidden")
	logger.Warn("shown", "page", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"page":2`)
}

func TestSetupLogger_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vitrine.log")

	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)
	logger.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
