package congress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/core/engine"
	apperrors "github.com/lawlens/lawlens/internal/errors"
)

func newDispatchClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := New(Options{
		APIKey:   "test-key",
		BaseURL:  serverURL,
		Throttle: engine.New(engine.DefaultQuota),
		Retry:    RetryPolicy{MaxAttempts: 4, Backoff: time.Millisecond},
	})
	require.NoError(t, err)
	return client
}

func TestDispatchRetriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"bills":[]}`))
	}))
	defer server.Close()

	client := newDispatchClient(t, server.URL)

	result, err := client.Fetch(context.Background(), core.ResourceBill, "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.Equal(t, `{"bills":[]}`, result.Body)
	require.Equal(t, 4, result.Attempts)
	require.Equal(t, int64(4), attempts.Load())
}

func TestDispatchFailsAfterRetryBudget(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newDispatchClient(t, server.URL)

	_, err := client.Fetch(context.Background(), core.ResourceBill, "", nil)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "EXTERNAL_SERVICE_ERROR"))
	require.Equal(t, http.StatusServiceUnavailable, apperrors.StatusCode(err))
	require.Equal(t, int64(4), attempts.Load())
}

func TestDispatchNoRetryOnSuccess(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := newDispatchClient(t, server.URL)

	body, err := client.Get(context.Background(), core.ResourceMember, "", nil)
	require.NoError(t, err)
	require.Equal(t, "ok", body)
	require.Equal(t, int64(1), attempts.Load())
}

func TestDispatchEveryAttemptAdvancesThrottleCounter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newDispatchClient(t, server.URL)

	_, err := client.Fetch(context.Background(), core.ResourceBill, "", nil)
	require.Error(t, err)
	// All four attempts counted even though the call never opted into
	// throttling and never succeeded.
	require.Equal(t, int64(4), client.Throttle().Snapshot().Count)
}

func TestDispatchUnknownResourceRejected(t *testing.T) {
	client := newDispatchClient(t, "http://127.0.0.1:0")

	_, err := client.Fetch(context.Background(), core.Resource("lobbyist"), "", nil)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "INVALID_INPUT"))
}

func TestDispatchCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Options{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Throttle: engine.New(engine.DefaultQuota),
		Retry:    RetryPolicy{MaxAttempts: 4, Backoff: time.Hour},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Fetch(ctx, core.ResourceBill, "", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	// The attempt that was cancelled in backoff was never issued, so
	// only the first attempt is counted.
	require.Equal(t, int64(1), client.Throttle().Snapshot().Count)
}
