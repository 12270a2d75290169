package congress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawlens/lawlens/internal/core"
)

func TestComposeURLWithSubPath(t *testing.T) {
	got := composeURL("https://api.congress.gov/v3", core.ResourceBill, "HR1")
	require.Equal(t, "https://api.congress.gov/v3/bill/hr1", got)
}

func TestComposeURLEmptySubPath(t *testing.T) {
	got := composeURL("https://api.congress.gov/v3", core.ResourceBill, "")
	require.Equal(t, "https://api.congress.gov/v3/bill/", got)
}

func TestComposeURLNestedSubPath(t *testing.T) {
	got := composeURL("https://api.congress.gov/v3", core.ResourceCommitteeReport, "118/HRPT/617")
	require.Equal(t, "https://api.congress.gov/v3/committee-report/118/hrpt/617", got)
}

func TestComposeURLIdempotent(t *testing.T) {
	first := composeURL("https://api.congress.gov/v3", core.ResourceTreaty, "117")
	second := composeURL("https://api.congress.gov/v3", core.ResourceTreaty, "117")
	require.Equal(t, first, second)
}
