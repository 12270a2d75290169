package congress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Options{
		APIKey: "test-key",
		Clock: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	})
	require.NoError(t, err)
	return client
}

func TestDefaultParams(t *testing.T) {
	client := newTestClient(t)

	merged, dropped := client.mergeParams(nil)
	require.Empty(t, dropped)
	require.Equal(t, map[string]string{
		"format":       "json",
		"offset":       "0",
		"limit":        "25",
		"fromDateTime": "2005-06-06T12:00:00Z",
		"toDateTime":   "2025-06-01T12:00:00Z",
		"sort":         "updateDate+desc",
	}, merged)
}

func TestMergeParamsTypedOverrides(t *testing.T) {
	client := newTestClient(t)

	merged, dropped := client.mergeParams(&Query{
		Format: "xml",
		Offset: Int(50),
		Limit:  Int(10),
		Sort:   "updateDate+asc",
	})
	require.Empty(t, dropped)
	require.Equal(t, "xml", merged["format"])
	require.Equal(t, "50", merged["offset"])
	require.Equal(t, "10", merged["limit"])
	require.Equal(t, "updateDate+asc", merged["sort"])
	// Untouched keys keep their defaults.
	require.Equal(t, "2025-06-01T12:00:00Z", merged["toDateTime"])
}

func TestMergeParamsExtraRecognizedKeyWins(t *testing.T) {
	client := newTestClient(t)

	merged, dropped := client.mergeParams(&Query{
		Extra: map[string]string{"limit": "100"},
	})
	require.Empty(t, dropped)
	require.Equal(t, "100", merged["limit"])
}

func TestMergeParamsUnrecognizedKeyDropped(t *testing.T) {
	client := newTestClient(t)

	merged, dropped := client.mergeParams(&Query{
		Extra: map[string]string{
			"chamber": "house",
			"limit":   "5",
			"zzz":     "1",
		},
	})
	require.Equal(t, []string{"chamber", "zzz"}, dropped)
	require.Equal(t, "5", merged["limit"])
	require.NotContains(t, merged, "chamber")
	require.NotContains(t, merged, "zzz")
}

func TestMergeParamsKeySetInvariant(t *testing.T) {
	client := newTestClient(t)

	defaults, _ := client.mergeParams(nil)
	merged, _ := client.mergeParams(&Query{
		Format: "xml",
		Extra:  map[string]string{"bogus": "x", "offset": "9"},
	})

	require.Len(t, merged, len(defaults))
	for k := range defaults {
		require.Contains(t, merged, k)
	}
}

func TestMergeParamsIdempotent(t *testing.T) {
	client := newTestClient(t)
	q := &Query{Limit: Int(10), Extra: map[string]string{"nope": "1"}}

	first, firstDropped := client.mergeParams(q)
	second, secondDropped := client.mergeParams(q)
	require.Equal(t, first, second)
	require.Equal(t, firstDropped, secondDropped)
}
