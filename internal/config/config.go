// Package config loads vitrine settings from a YAML file and VITRINE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultServerURL = "https://api.artic.edu/api/v1"
	DefaultPageSize  = 12
	MaxPageSize      = 100
	envPrefix        = "VITRINE"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig holds catalog API configuration
type ServerConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"` // per-request
	UserAgent string        `mapstructure:"user_agent"`
}

// BrowseConfig holds paging configuration
type BrowseConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	ShowInspector bool `mapstructure:"show_inspector"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig holds the optional metrics endpoint; empty Addr disables it
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:       DefaultServerURL,
			Timeout:   15 * time.Second,
			UserAgent: "Vitrine/1.0",
		},
		Browse: BrowseConfig{
			PageSize: DefaultPageSize,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine", "vitrine.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vitrine", "vitrine.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vitrine")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default locations; a missing file there is not
// an error. An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. VITRINE_BROWSE_PAGE_SIZE
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so env overrides reach Unmarshal
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.url", d.Server.URL)
	v.SetDefault("server.timeout", d.Server.Timeout)
	v.SetDefault("server.user_agent", d.Server.UserAgent)
	v.SetDefault("browse.page_size", d.Browse.PageSize)
	v.SetDefault("ui.show_inspector", d.UI.ShowInspector)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.URL) == "" {
		return errors.New("server.url must not be empty")
	}
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not an absolute URL", c.Server.URL)
	}
	if c.Browse.PageSize < 1 || c.Browse.PageSize > MaxPageSize {
		return fmt.Errorf("browse.page_size must be between 1 and %d, got %d", MaxPageSize, c.Browse.PageSize)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	return nil
}
