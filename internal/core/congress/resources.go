package congress

import (
	"context"

	"github.com/lawlens/lawlens/internal/core"
)

// Per-resource accessors. Each forwards to Get with its fixed prefix
// and returns the raw response body text; no resource carries any
// logic of its own.

// Bill accesses the /bill endpoints.
func (c *Client) Bill(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceBill, subPath, q)
}

// Amendment accesses the /amendment endpoints.
func (c *Client) Amendment(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceAmendment, subPath, q)
}

// Summaries accesses the /summaries endpoints.
func (c *Client) Summaries(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceSummaries, subPath, q)
}

// Congress accesses the /congress endpoints.
func (c *Client) Congress(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCongress, subPath, q)
}

// Member accesses the /member endpoints.
func (c *Client) Member(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceMember, subPath, q)
}

// Committee accesses the /committee endpoints.
func (c *Client) Committee(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCommittee, subPath, q)
}

// CommitteeReport accesses the /committee-report endpoints.
func (c *Client) CommitteeReport(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCommitteeReport, subPath, q)
}

// CommitteePrint accesses the /committee-print endpoints.
func (c *Client) CommitteePrint(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCommitteePrint, subPath, q)
}

// CommitteeMeeting accesses the /committee-meeting endpoints.
func (c *Client) CommitteeMeeting(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCommitteeMeeting, subPath, q)
}

// Hearing accesses the /hearing endpoints.
func (c *Client) Hearing(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceHearing, subPath, q)
}

// CongressionalRecord accesses the /congressional-record endpoints.
func (c *Client) CongressionalRecord(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceCongressionalRecord, subPath, q)
}

// DailyCongressionalRecord accesses the /daily-congressional-record endpoints.
func (c *Client) DailyCongressionalRecord(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceDailyCongressionalRecord, subPath, q)
}

// BoundCongressionalRecord accesses the /bound-congressional-record endpoints.
func (c *Client) BoundCongressionalRecord(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceBoundCongressionalRecord, subPath, q)
}

// HouseCommunication accesses the /house-communication endpoints.
func (c *Client) HouseCommunication(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceHouseCommunication, subPath, q)
}

// HouseRequirement accesses the /house-requirement endpoints.
func (c *Client) HouseRequirement(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceHouseRequirement, subPath, q)
}

// SenateCommunication accesses the /senate-communication endpoints.
func (c *Client) SenateCommunication(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceSenateCommunication, subPath, q)
}

// Nomination accesses the /nomination endpoints.
func (c *Client) Nomination(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceNomination, subPath, q)
}

// Treaty accesses the /treaty endpoints.
func (c *Client) Treaty(ctx context.Context, subPath string, q *Query) (string, error) {
	return c.Get(ctx, core.ResourceTreaty, subPath, q)
}
