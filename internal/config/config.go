package config

import (
	"time"

	"github.com/lawlens/lawlens/internal/core/engine"
)

// Config represents the complete application configuration, layered
// from defaults, the user config file, and environment overrides.
type Config struct {
	Congress CongressConfig `mapstructure:"congress" yaml:"congress"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

// CongressConfig contains Congress.gov API client configuration.
type CongressConfig struct {
	// APIKey authenticates requests. Usually left empty here and
	// supplied via CONGRESS_API_KEY; never write a key into a config
	// file that gets committed.
	APIKey string `mapstructure:"api_key" yaml:"api_key,omitempty"`

	// BaseURL is the API origin.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// Quota is the pace ceiling in requests per second. Defaults to
	// the published 1000/hour.
	Quota float64 `mapstructure:"quota" yaml:"quota"`

	// RetryAttempts counts the initial attempt plus retries.
	RetryAttempts int `mapstructure:"retry_attempts" yaml:"retry_attempts"`

	// RetryBackoff is the fixed wait between attempts.
	RetryBackoff time.Duration `mapstructure:"retry_backoff" yaml:"retry_backoff"`
}

// ServerConfig contains HTTP pass-through service configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level: trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// Profile selects the logging complexity level: SIMPLE or STRUCTURED.
	Profile string `mapstructure:"profile" yaml:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Port    int  `mapstructure:"port" yaml:"port"`
}

// Default returns the built-in configuration baseline.
func Default() *Config {
	return &Config{
		Congress: CongressConfig{
			BaseURL:       "https://api.congress.gov/v3",
			Timeout:       30 * time.Second,
			Quota:         engine.DefaultQuota,
			RetryAttempts: 4,
			RetryBackoff:  500 * time.Millisecond,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Profile: "simple",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
	}
}
