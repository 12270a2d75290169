package cmd

import (
	"net/http"

	"github.com/lawlens/lawlens/internal/config"
	"github.com/lawlens/lawlens/internal/core/congress"
	"github.com/lawlens/lawlens/internal/core/engine"
	"github.com/lawlens/lawlens/internal/observability"
)

// buildClient constructs a Congress.gov client from the effective
// configuration. All CLI commands share this path so that quota,
// retries, and credentials behave the same everywhere.
func buildClient(cfg *config.Config) (*congress.Client, error) {
	opts := congress.Options{
		APIKey:  cfg.Congress.APIKey,
		BaseURL: cfg.Congress.BaseURL,
		HTTPClient: &http.Client{
			Timeout: cfg.Congress.Timeout,
		},
		Retry: congress.RetryPolicy{
			MaxAttempts: cfg.Congress.RetryAttempts,
			Backoff:     cfg.Congress.RetryBackoff,
		},
		Logger: observability.CLILogger,
	}

	// A non-default quota gets its own throttle; the default shares
	// the process-wide pace counter.
	if cfg.Congress.Quota > 0 && cfg.Congress.Quota != engine.DefaultQuota {
		opts.Throttle = engine.New(cfg.Congress.Quota)
	}

	return congress.New(opts)
}

// loadConfigAndClient is the common preamble for commands that talk to
// the upstream API.
func loadConfigAndClient() (*config.Config, *congress.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}
