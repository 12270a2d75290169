package output

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/core/engine"
)

// FetchTable renders fetch metadata as an ASCII table. The body is not
// included; raw output mode exists for that.
func FetchTable(result *core.FetchResult) string {
	if result == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Resource", "Sub-Path", "Status", "Attempts", "Throttled", "Elapsed"})
	t.AppendRow(table.Row{
		string(result.Resource),
		orDash(result.SubPath),
		result.StatusCode,
		result.Attempts,
		result.Throttled,
		result.Elapsed.Round(time.Millisecond),
	})
	return t.Render()
}

// QuotaTable renders the shared throttle state as an ASCII table.
func QuotaTable(snap engine.Snapshot) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})

	epoch := "-"
	if !snap.Epoch.IsZero() {
		epoch = snap.Epoch.UTC().Format(time.RFC3339)
	}

	t.AppendRow(table.Row{"Quota (req/s)", fmt.Sprintf("%.4f", snap.Quota)})
	t.AppendRow(table.Row{"First request", epoch})
	t.AppendRow(table.Row{"Requests issued", snap.Count})
	t.AppendRow(table.Row{"Elapsed", snap.Elapsed.Round(time.Second)})
	t.AppendRow(table.Row{"Observed rate (req/s)", fmt.Sprintf("%.4f", snap.ObservedRate)})
	t.AppendRow(table.Row{"Next throttled delay", snap.NextDelay.Round(time.Millisecond)})
	return t.Render()
}

// ResourceTable renders the known resource families as an ASCII table.
func ResourceTable(resources []core.Resource) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Resource", "Endpoint"})
	for i, r := range resources {
		t.AppendRow(table.Row{i + 1, string(r), "/v3/" + string(r)})
	}
	return t.Render()
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
