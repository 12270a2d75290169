package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/core/engine"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat("raw")
	require.NoError(t, err)
	require.Equal(t, FormatRaw, format)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestFetchTable(t *testing.T) {
	rendered := FetchTable(&core.FetchResult{
		Resource:   core.ResourceBill,
		SubPath:    "hr1",
		StatusCode: 200,
		Attempts:   1,
		Elapsed:    42 * time.Millisecond,
	})
	require.Contains(t, rendered, "bill")
	require.Contains(t, rendered, "hr1")
	require.Contains(t, rendered, "200")

	require.Empty(t, FetchTable(nil))
}

func TestQuotaTableBeforeFirstRequest(t *testing.T) {
	rendered := QuotaTable(engine.Snapshot{Quota: engine.DefaultQuota})
	require.Contains(t, rendered, "0.2778")
	require.Contains(t, rendered, "-")
}

func TestResourceTableListsEveryFamily(t *testing.T) {
	rendered := ResourceTable(core.Resources())
	require.Contains(t, rendered, "/v3/bill")
	require.Contains(t, rendered, "/v3/daily-congressional-record")
	require.Contains(t, rendered, "/v3/treaty")
}
