package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the aggregate health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// ProbeResponse represents an individual probe response
type ProbeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler handles aggregate health check requests. The service
// holds no connections or state of its own, so a responding process is
// a healthy one.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Version:   AppVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// LivenessHandler handles liveness probe requests.
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w)
}

// ReadinessHandler handles readiness probe requests. Readiness matches
// liveness: the upstream API is intentionally not probed, since doing
// so would burn quota on every scrape.
func ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w)
}

func writeProbe(w http.ResponseWriter) {
	response := ProbeResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
