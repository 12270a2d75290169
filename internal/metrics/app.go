package metrics

import (
	"strconv"
	"time"

	"github.com/lawlens/lawlens/internal/observability"
)

// Application-level metric names following Prometheus conventions
var (
	RequestsTotal      = "congress_requests_total"
	RequestAttempts    = "congress_request_attempts_total"
	RequestDuration    = "congress_request_duration_ms"
	RetriesTotal       = "congress_retries_total"
	ThrottleDelayTotal = "congress_throttle_delay_seconds"

	// Server lifecycle metrics
	ServerStartTime = "app_server_start_time_seconds"
)

// RecordRequest records a completed API request with its final status.
func RecordRequest(resource string, statusCode int, elapsed time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}

	labels := map[string]string{
		"resource": resource,
		"status":   strconv.Itoa(statusCode),
	}
	_ = observability.TelemetrySystem.Counter(RequestsTotal, 1, labels)
	_ = observability.TelemetrySystem.Histogram(RequestDuration, elapsed, map[string]string{
		"resource": resource,
	})
}

// RecordAttempt records one HTTP attempt, including retries.
func RecordAttempt(resource string) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(RequestAttempts, 1, map[string]string{
		"resource": resource,
	})
}

// RecordRetry records a retried attempt after a non-success status.
func RecordRetry(resource string, statusCode int) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(RetriesTotal, 1, map[string]string{
		"resource": resource,
		"status":   strconv.Itoa(statusCode),
	})
}

// RecordThrottleDelay records time spent blocked in the pace throttle.
func RecordThrottleDelay(delay time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Histogram(ThrottleDelayTotal, delay, nil)
}

// SetServerStartTime records the server start time (Unix timestamp).
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Gauge(ServerStartTime, float64(timestamp), nil)
}
