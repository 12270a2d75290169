package congress

import (
	"sort"
	"strconv"
	"time"
)

// Recognized query parameter names. Only these are ever sent.
const (
	paramFormat       = "format"
	paramOffset       = "offset"
	paramLimit        = "limit"
	paramFromDateTime = "fromDateTime"
	paramToDateTime   = "toDateTime"
	paramSort         = "sort"
)

// Query carries per-call overrides of the default parameter set, plus
// the per-call throttle flag. The zero value sends defaults only,
// without pacing.
type Query struct {
	// Format selects the response format ("json" or "xml").
	Format string
	// Offset is the pagination start index.
	Offset *int
	// Limit is the pagination page size.
	Limit *int
	// FromDateTime / ToDateTime bound the update-date window, in
	// YYYY-MM-DDTHH:MM:SSZ form.
	FromDateTime string
	ToDateTime   string
	// Sort orders results, e.g. "updateDate+desc".
	Sort string

	// Throttle opts this call into the shared pace throttle. Calls
	// without it still advance the shared request counter.
	Throttle bool

	// Extra holds named overrides forwarded as-is. Keys outside the
	// recognized set are dropped with a warning and the default kept.
	Extra map[string]string
}

// Int is a convenience for populating Offset/Limit literals.
func Int(v int) *int {
	return &v
}

// defaultParams builds the default query set the way the API documents
// it: JSON, first page of 25, a 20-year lookback window ending now,
// newest updates first.
func defaultParams(now time.Time) map[string]string {
	return map[string]string{
		paramFormat:       "json",
		paramOffset:       "0",
		paramLimit:        "25",
		paramFromDateTime: now.Add(-defaultLookback).Format(datetimeLayout),
		paramToDateTime:   now.Format(datetimeLayout),
		paramSort:         "updateDate+desc",
	}
}

// mergeParams merges q onto the client's default set. The result
// always has exactly the default key set: recognized overrides win,
// unrecognized Extra keys are dropped and the default retained. The
// dropped keys are returned for the caller to warn about; merging
// itself is pure.
func (c *Client) mergeParams(q *Query) (map[string]string, []string) {
	merged := make(map[string]string, len(c.defaults))
	for k, v := range c.defaults {
		merged[k] = v
	}
	if q == nil {
		return merged, nil
	}

	if q.Format != "" {
		merged[paramFormat] = q.Format
	}
	if q.Offset != nil {
		merged[paramOffset] = strconv.Itoa(*q.Offset)
	}
	if q.Limit != nil {
		merged[paramLimit] = strconv.Itoa(*q.Limit)
	}
	if q.FromDateTime != "" {
		merged[paramFromDateTime] = q.FromDateTime
	}
	if q.ToDateTime != "" {
		merged[paramToDateTime] = q.ToDateTime
	}
	if q.Sort != "" {
		merged[paramSort] = q.Sort
	}

	// Stable iteration keeps warnings deterministic for identical input.
	var dropped []string
	for _, k := range sortedKeys(q.Extra) {
		if _, ok := merged[k]; !ok {
			dropped = append(dropped, k)
			continue
		}
		merged[k] = q.Extra[k]
	}

	return merged, dropped
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
