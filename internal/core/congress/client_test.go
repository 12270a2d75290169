package congress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lawlens/lawlens/internal/core/engine"
	apperrors "github.com/lawlens/lawlens/internal/errors"
)

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := New(Options{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "CONFIG_INVALID"))
}

func TestNewFallsBackToEnvironmentKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	client, err := New(Options{})
	require.NoError(t, err)
	require.Equal(t, "env-key", client.apiKey)
}

func TestNewExplicitKeyWinsOverEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	client, err := New(Options{APIKey: "explicit-key"})
	require.NoError(t, err)
	require.Equal(t, "explicit-key", client.apiKey)
}

func TestNewDefaults(t *testing.T) {
	client, err := New(Options{APIKey: "k"})
	require.NoError(t, err)
	require.Equal(t, DefaultOrigin, client.BaseURL())
	require.Same(t, engine.Shared(), client.Throttle())
	require.Equal(t, DefaultRetryPolicy, client.retry)
}

// End-to-end: a bill fetch with one override hits the composed URL with
// merged parameters and returns the body text.
func TestClientBillEndToEnd(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"bill":{"number":"1"}}`))
	}))
	defer server.Close()

	client, err := New(Options{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Throttle: engine.New(engine.DefaultQuota),
		Clock: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	})
	require.NoError(t, err)

	body, err := client.Bill(context.Background(), "hr1", &Query{Limit: Int(10)})
	require.NoError(t, err)
	require.Equal(t, `{"bill":{"number":"1"}}`, body)

	require.Equal(t, "/bill/hr1", gotPath)
	require.Equal(t, []string{"10"}, gotQuery["limit"])
	require.Equal(t, []string{"json"}, gotQuery["format"])
	require.Equal(t, []string{"0"}, gotQuery["offset"])
	require.Equal(t, []string{"updateDate+desc"}, gotQuery["sort"])
	require.Equal(t, []string{"2005-06-06T12:00:00Z"}, gotQuery["fromDateTime"])
	require.Equal(t, []string{"2025-06-01T12:00:00Z"}, gotQuery["toDateTime"])
	require.Equal(t, []string{"test-key"}, gotQuery["api_key"])
}

// Shared throttle state: two clients wired to the same throttle observe
// one counter and one epoch.
func TestClientsShareThrottleState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	throttle := engine.New(engine.DefaultQuota)
	first, err := New(Options{APIKey: "k", BaseURL: server.URL, Throttle: throttle})
	require.NoError(t, err)
	second, err := New(Options{APIKey: "k", BaseURL: server.URL, Throttle: throttle})
	require.NoError(t, err)

	_, err = first.Summaries(context.Background(), "", nil)
	require.NoError(t, err)
	_, err = second.Treaty(context.Background(), "", nil)
	require.NoError(t, err)

	require.Equal(t, int64(2), throttle.Snapshot().Count)
}

func TestFetchReportsMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	client, err := New(Options{APIKey: "k", BaseURL: server.URL, Throttle: engine.New(engine.DefaultQuota)})
	require.NoError(t, err)

	result, err := client.Fetch(context.Background(), "nomination", "118/2467", &Query{Throttle: true})
	require.NoError(t, err)
	require.Equal(t, server.URL+"/nomination/118/2467", result.URL)
	require.Equal(t, 1, result.Attempts)
	require.True(t, result.Throttled)
	require.False(t, result.RequestedAt.IsZero())
}
