package entities

import (
	"fmt"
	"time"
)

// InvoiceKind distinguishes customer-facing invoices from contractor payout
// invoices. Each kind numbers its invoices independently.
type InvoiceKind string

const (
	InvoiceKindCustomer   InvoiceKind = "customer"
	InvoiceKindContractor InvoiceKind = "contractor"
)

func (k InvoiceKind) Valid() bool {
	return k == InvoiceKindCustomer || k == InvoiceKindContractor
}

// NumberPrefix yields the human-facing invoice number for a sequence value,
// e.g. INV-000042 / CINV-000013.
func (k InvoiceKind) FormatNumber(seq int64) string {
	if k == InvoiceKindContractor {
		return fmt.Sprintf("CINV-%06d", seq)
	}
	return fmt.Sprintf("INV-%06d", seq)
}

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusVoid:
		return true
	}
	return false
}

// IsTerminal reports whether the invoice can change status again. void is a
// terminal status, not a deletion; paid is settled.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusVoid
}

// CanTransitionTo enforces draft → sent → {paid | overdue | void}, with
// overdue still collectable (→ paid) or voidable. Draft may be voided
// directly.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft:
		return target == InvoiceStatusSent || target == InvoiceStatusVoid
	case InvoiceStatusSent:
		return target == InvoiceStatusPaid || target == InvoiceStatusOverdue || target == InvoiceStatusVoid
	case InvoiceStatusOverdue:
		return target == InvoiceStatusPaid || target == InvoiceStatusVoid
	}
	return false
}

// Invoice is a billing document issued against a job: to the customer for
// the quoted work, or to a contractor for their payout.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariant: Total is immutable once a succeeded payment references the
// invoice (enforced by the invoice use case against the payment repository).

type Invoice struct {
	ID            string      `json:"id"`
	Kind          InvoiceKind `json:"kind"`
	InvoiceNumber string      `json:"invoice_number"`

	JobID        string `json:"job_id"`
	CustomerID   string `json:"customer_id,omitempty"`
	ContractorID string `json:"contractor_id,omitempty"`
	QuoteID      string `json:"quote_id,omitempty"`

	Status  InvoiceStatus `json:"status"`
	Total   float64       `json:"total"`
	DueDate *time.Time    `json:"due_date,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
