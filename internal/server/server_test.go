package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawlens/lawlens/internal/core/congress"
	"github.com/lawlens/lawlens/internal/core/engine"
)

func newTestServer(t *testing.T, upstream string) *Server {
	t.Helper()
	client, err := congress.New(congress.Options{
		APIKey:   "test-key",
		BaseURL:  upstream,
		Throttle: engine.New(engine.DefaultQuota),
	})
	require.NoError(t, err)
	return New("localhost", 0, client)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0")

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Contains(t, rec.Body.String(), "healthy")
	}
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Contains(t, payload, "app")
	require.Contains(t, payload, "runtime")
}

func TestProxyForwardsToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bill/hr1", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"bill":{}}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/v3/bill/HR1?limit=10", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"bill":{}}`, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestProxyRejectsUnknownResource(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/v3/lobbyist", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestProxySurfacesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	client, err := congress.New(congress.Options{
		APIKey:   "test-key",
		BaseURL:  upstream.URL,
		Throttle: engine.New(engine.DefaultQuota),
		Retry:    congress.RetryPolicy{MaxAttempts: 2, Backoff: 1},
	})
	require.NoError(t, err)
	srv := New("localhost", 0, client)

	req := httptest.NewRequest(http.MethodGet, "/v3/bill", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "EXTERNAL_SERVICE_ERROR")
}

func TestNotFoundEnvelope(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}
