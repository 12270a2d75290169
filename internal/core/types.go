package core

import "time"

// Resource identifies a Congress.gov API resource family. The value is
// the URL prefix used under /v3.
type Resource string

const (
	ResourceBill                     Resource = "bill"
	ResourceAmendment                Resource = "amendment"
	ResourceSummaries                Resource = "summaries"
	ResourceCongress                 Resource = "congress"
	ResourceMember                   Resource = "member"
	ResourceCommittee                Resource = "committee"
	ResourceCommitteeReport          Resource = "committee-report"
	ResourceCommitteePrint           Resource = "committee-print"
	ResourceCommitteeMeeting         Resource = "committee-meeting"
	ResourceHearing                  Resource = "hearing"
	ResourceCongressionalRecord      Resource = "congressional-record"
	ResourceDailyCongressionalRecord Resource = "daily-congressional-record"
	ResourceBoundCongressionalRecord Resource = "bound-congressional-record"
	ResourceHouseCommunication       Resource = "house-communication"
	ResourceHouseRequirement         Resource = "house-requirement"
	ResourceSenateCommunication      Resource = "senate-communication"
	ResourceNomination               Resource = "nomination"
	ResourceTreaty                   Resource = "treaty"
)

// resources lists every known resource family in API documentation order.
var resources = []Resource{
	ResourceBill,
	ResourceAmendment,
	ResourceSummaries,
	ResourceCongress,
	ResourceMember,
	ResourceCommittee,
	ResourceCommitteeReport,
	ResourceCommitteePrint,
	ResourceCommitteeMeeting,
	ResourceHearing,
	ResourceCongressionalRecord,
	ResourceDailyCongressionalRecord,
	ResourceBoundCongressionalRecord,
	ResourceHouseCommunication,
	ResourceHouseRequirement,
	ResourceSenateCommunication,
	ResourceNomination,
	ResourceTreaty,
}

// Resources returns the known resource families.
func Resources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	return out
}

// IsResource reports whether name is a known resource family.
func IsResource(name string) bool {
	for _, r := range resources {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Response is the raw outcome of a dispatched request. The body is
// opaque text; interpreting it is the caller's job.
type Response struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// FetchResult reports a completed fetch and the request metadata that
// produced it, for CLI output and logging.
type FetchResult struct {
	Resource    Resource      `json:"resource"`
	SubPath     string        `json:"sub_path,omitempty"`
	URL         string        `json:"url"`
	StatusCode  int           `json:"status_code"`
	Attempts    int           `json:"attempts"`
	Throttled   bool          `json:"throttled"`
	Elapsed     time.Duration `json:"elapsed_ms"`
	RequestedAt time.Time     `json:"requested_at"`
	Body        string        `json:"body,omitempty"`
}
