package entities

import "time"

// JobStatus is the closed set of states a job moves through.
//
// Domain notes:
//   - The backend is the source of truth for job state; the dashboard only
//     requests transitions.
//   - quote_pending/quote_rejected/approved track the job's active quote;
//     the quote side effects live in the quote use case.

type JobStatus string

const (
	JobStatusOpen          JobStatus = "open"
	JobStatusNeedsQuote    JobStatus = "needs_quote"
	JobStatusQuotePending  JobStatus = "quote_pending"
	JobStatusQuoteRejected JobStatus = "quote_rejected"
	JobStatusApproved      JobStatus = "approved"
	JobStatusInProgress    JobStatus = "in_progress"
	JobStatusCompleted     JobStatus = "completed"
	JobStatusPaid          JobStatus = "paid"
	JobStatusCancelled     JobStatus = "cancelled"
)

// jobTransitions is the adjacency table of the lifecycle. cancelled is not
// listed per row; any non-terminal status may cancel (see CanTransitionTo).
// quote_rejected may loop back to needs_quote for a re-quote.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:          {JobStatusNeedsQuote},
	JobStatusNeedsQuote:    {JobStatusQuotePending},
	JobStatusQuotePending:  {JobStatusQuoteRejected, JobStatusApproved},
	JobStatusQuoteRejected: {JobStatusNeedsQuote, JobStatusApproved},
	JobStatusApproved:      {JobStatusInProgress},
	JobStatusInProgress:    {JobStatusCompleted},
	JobStatusCompleted:     {JobStatusPaid},
	JobStatusPaid:          {},
	JobStatusCancelled:     {},
}

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusPaid || s == JobStatusCancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == JobStatusCancelled {
		return true
	}
	for _, next := range jobTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityMedium JobPriority = "medium"
	JobPriorityHigh   JobPriority = "high"
	JobPriorityUrgent JobPriority = "urgent"
)

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityUrgent:
		return true
	}
	return false
}

// PayType is the pricing mode for a job. Unset is legitimate for jobs that
// have not been quoted yet.
type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeFlat   PayType = "flat"
	PayTypeUnset  PayType = "unset"
)

func (p PayType) Valid() bool {
	switch p {
	case PayTypeHourly, PayTypeFlat, PayTypeUnset:
		return true
	}
	return false
}

// Job is the aggregate root for a unit of contracted field work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Invariants:
//   - CancelledAt set implies Status == cancelled.
//   - CompletedAt set implies Status == completed (or a later status).
//   - zero or one contractor at a time.

type Job struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CustomerID   string  `json:"customer_id"`
	ContractorID string  `json:"contractor_id,omitempty"`
	Address      Address `json:"address"`

	// SameAsCustomerAddress mirrors the dashboard toggle: while true, the
	// service address re-derives from the linked customer on every edit.
	SameAsCustomerAddress bool `json:"same_as_customer_address"`

	Status   JobStatus   `json:"status"`
	Priority JobPriority `json:"priority"`
	PayType  PayType     `json:"pay_type"`

	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`

	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressMatchesCustomer reports whether the job's service address equals the
// customer's, i.e. no drift the dashboard should warn about.
func (j Job) AddressMatchesCustomer(c Customer) bool {
	return j.Address.Matches(c.Address)
}
