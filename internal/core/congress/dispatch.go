package congress

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/lawlens/lawlens/internal/core"
	apperrors "github.com/lawlens/lawlens/internal/errors"
	"github.com/lawlens/lawlens/internal/metrics"
)

// Fetch validates parameters, composes the endpoint URL, paces the
// request when asked to, and dispatches it with bounded retry. The
// resource name is checked here: this is the boundary where caller
// input is validated.
func (c *Client) Fetch(ctx context.Context, resource core.Resource, subPath string, q *Query) (*core.FetchResult, error) {
	if !core.IsResource(string(resource)) {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("unknown resource family %q", resource))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	params, dropped := c.mergeParams(q)
	for _, k := range dropped {
		c.logWarn("Invalid query parameter supplied, using default instead",
			zap.String("param", k),
			zap.String("resource", string(resource)))
	}
	fullURL := composeURL(c.baseURL, resource, subPath)
	throttled := q != nil && q.Throttle

	result := &core.FetchResult{
		Resource:    resource,
		SubPath:     subPath,
		URL:         fullURL,
		Throttled:   throttled,
		RequestedAt: c.clock(),
	}

	if throttled {
		start := time.Now()
		if err := c.throttle.Wait(ctx); err != nil {
			return nil, err
		}
		if delay := time.Since(start); delay > 0 {
			metrics.RecordThrottleDelay(delay)
			c.logDebug("Throttled before dispatch",
				zap.Duration("delay", delay),
				zap.String("resource", string(resource)))
		}
	}

	start := time.Now()
	resp, attempts, err := c.dispatch(ctx, resource, fullURL, params)
	result.Attempts = attempts
	result.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	result.StatusCode = resp.StatusCode
	result.Body = resp.Body
	metrics.RecordRequest(string(resource), resp.StatusCode, result.Elapsed)
	return result, nil
}

// Get is the thin form of Fetch: it returns the raw response body text.
func (c *Client) Get(ctx context.Context, resource core.Resource, subPath string, q *Query) (string, error) {
	result, err := c.Fetch(ctx, resource, subPath, q)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

// dispatch issues the GET, retrying non-200 responses up to the retry
// budget with a fixed backoff. Every attempt, failed or not, is
// recorded in the shared throttle counter. Exhausting the budget is a
// terminal failure carrying the last observed status.
func (c *Client) dispatch(ctx context.Context, resource core.Resource, fullURL string, params map[string]string) (*core.Response, int, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set(tokenParam, c.apiKey)
	requestURL := fullURL + "?" + query.Encode()

	lastStatus := 0
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			metrics.RecordRetry(string(resource), lastStatus)
			c.logDebug("Retrying request",
				zap.String("resource", string(resource)),
				zap.Int("attempt", attempt),
				zap.Int("last_status", lastStatus))
			if err := sleepBackoff(ctx, c.retry.Backoff); err != nil {
				return nil, attempt - 1, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, attempt - 1, apperrors.WrapRequestFailed(ctx, err, "failed to build congress API request")
		}

		c.throttle.Record()
		metrics.RecordAttempt(string(resource))

		resp, err := c.client.Do(req)
		if err != nil {
			// Transport failures burn an attempt like bad statuses do.
			if ctx.Err() != nil {
				return nil, attempt, ctx.Err()
			}
			c.logWarn("Request attempt failed",
				zap.String("resource", string(resource)),
				zap.Int("attempt", attempt),
				zap.Error(err))
			lastStatus = 0
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusOK && readErr == nil {
			return &core.Response{StatusCode: resp.StatusCode, Body: string(body)}, attempt, nil
		}

		lastStatus = resp.StatusCode
	}

	failure := apperrors.NewRequestFailedError(
		fmt.Sprintf("congress API request failed after %d attempts", c.retry.MaxAttempts))
	return nil, c.retry.MaxAttempts, apperrors.WithStatusCode(failure, lastStatus)
}

func sleepBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
