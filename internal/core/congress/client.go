// Package congress implements a client for the Congress.gov v3 API.
// It validates query parameters against a fixed default set, composes
// endpoint URLs, paces requests against the published quota, and
// retries transient failures. Response bodies are returned as opaque
// text; interpretation is the caller's job.
//
// API reference: https://api.congress.gov/ and
// https://github.com/LibraryOfCongress/api.congress.gov/
package congress

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	apperrors "github.com/lawlens/lawlens/internal/errors"
	"github.com/lawlens/lawlens/internal/core/engine"
)

const (
	// DefaultOrigin is the Congress.gov API root.
	DefaultOrigin = "https://api.congress.gov/v3"

	// APIKeyEnv is the environment variable consulted when no key is
	// passed explicitly.
	APIKeyEnv = "CONGRESS_API_KEY"

	// tokenParam is the query parameter carrying the API key.
	tokenParam = "api_key"

	// datetimeLayout is the wire format for fromDateTime/toDateTime.
	datetimeLayout = "2006-01-02T15:04:05Z"

	// defaultLookback is how far back from now the default search
	// window opens. Roughly 20 years.
	defaultLookback = 20 * 365 * 24 * time.Hour
)

// RetryPolicy bounds the dispatcher's retry loop. This is independent
// of the throttle's pace-based delay.
type RetryPolicy struct {
	// MaxAttempts counts the initial attempt plus retries.
	MaxAttempts int
	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
}

// DefaultRetryPolicy retries a failed request three more times, half a
// second apart.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 4, Backoff: 500 * time.Millisecond}

// Options configures a Client.
type Options struct {
	// APIKey authenticates every request. When empty, CONGRESS_API_KEY
	// is consulted; if that is also unset, New fails.
	APIKey string

	// BaseURL overrides the API origin. Defaults to DefaultOrigin.
	BaseURL string

	// HTTPClient overrides the HTTP client used for requests.
	HTTPClient *http.Client

	// Throttle paces requests. Defaults to the process-wide shared
	// throttle so every client in the process observes the same pace.
	Throttle *engine.Throttle

	// Retry bounds the dispatcher's retry loop. Zero value means
	// DefaultRetryPolicy.
	Retry RetryPolicy

	// Clock returns the current time. Defaults to time.Now in UTC.
	// The default datetime window is fixed from it at construction.
	Clock func() time.Time

	// Logger receives parameter warnings and retry/throttle events.
	// Nil disables client logging.
	Logger *logging.Logger
}

// Client is a Congress.gov API client. Construct with New; the default
// parameter set is frozen at construction and only overridable per
// call through Query.
type Client struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	throttle *engine.Throttle
	retry    RetryPolicy
	clock    func() time.Time
	logger   *logging.Logger
	defaults map[string]string
}

// New builds a Client, resolving the API key from opts or the
// environment. A missing key is a fatal configuration error.
func New(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv(APIKeyEnv))
	}
	if key == "" {
		return nil, apperrors.NewConfigInvalidError("congress API key not provided and " + APIKeyEnv + " is not set")
	}

	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultOrigin
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	throttle := opts.Throttle
	if throttle == nil {
		throttle = engine.Shared()
	}

	retry := opts.Retry
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if retry.Backoff <= 0 {
		retry.Backoff = DefaultRetryPolicy.Backoff
	}

	now := clock()
	return &Client{
		apiKey:   key,
		baseURL:  baseURL,
		client:   client,
		throttle: throttle,
		retry:    retry,
		clock:    clock,
		logger:   opts.Logger,
		defaults: defaultParams(now),
	}, nil
}

// Throttle exposes the pace throttle this client records against, for
// status reporting.
func (c *Client) Throttle() *engine.Throttle {
	return c.throttle
}

// BaseURL returns the API origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) logWarn(msg string, fields ...zap.Field) {
	if c.logger != nil {
		c.logger.Warn(msg, fields...)
	}
}

func (c *Client) logDebug(msg string, fields ...zap.Field) {
	if c.logger != nil {
		c.logger.Debug(msg, fields...)
	}
}
