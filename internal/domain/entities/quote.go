package entities

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidAmount rejects any negative monetary input to the pricing
// calculator. Defined here because ComputeTotals is pure domain logic.
var ErrInvalidAmount = errors.New("invalid amount: monetary values must be non-negative")

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether the quote can never change status again. A
// rejected or expired quote is not resurrected; a new quote is created.
func (s QuoteStatus) IsTerminal() bool {
	switch s {
	case QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// IsActive reports whether the quote blocks creation of another quote for
// the same job (at most one draft/sent quote per job).
func (s QuoteStatus) IsActive() bool {
	return s == QuoteStatusDraft || s == QuoteStatusSent
}

// CanTransitionTo enforces draft → sent → {approved | rejected | expired}.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return target == QuoteStatusSent
	case QuoteStatusSent:
		return target == QuoteStatusApproved || target == QuoteStatusRejected || target == QuoteStatusExpired
	}
	return false
}

// PricingInput carries the operator-entered pricing fields. Absent fields
// default to zero. TaxAmount, when supplied, is an explicit operator override
// and wins over derivation from TaxRate.
type PricingInput struct {
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	FlatAmount     *float64 `json:"flat_amount,omitempty"`
	MaterialsCost  *float64 `json:"materials_cost,omitempty"`
	TaxRate        *float64 `json:"tax_rate,omitempty"`
	TaxAmount      *float64 `json:"tax_amount,omitempty"`
}

// Totals is the derived monetary breakdown of a quote. Values are kept at
// full float precision; rounding to cents happens once, at the persistence
// and response boundary, via Rounded.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// ComputeTotals derives subtotal/tax/total from the pricing input:
//
//	subtotal = hourly_rate*estimated_hours (both present) + flat_amount + materials_cost
//	tax      = explicit tax_amount if supplied, else subtotal * tax_rate/100
//	total    = subtotal + tax
//
// Any negative input fails with ErrInvalidAmount before anything is derived.
func ComputeTotals(in PricingInput) (Totals, error) {
	for _, v := range []*float64{in.HourlyRate, in.EstimatedHours, in.FlatAmount, in.MaterialsCost, in.TaxRate, in.TaxAmount} {
		if v != nil && *v < 0 {
			return Totals{}, ErrInvalidAmount
		}
	}

	subtotal := 0.0
	if in.HourlyRate != nil && in.EstimatedHours != nil {
		subtotal += *in.HourlyRate * *in.EstimatedHours
	}
	if in.FlatAmount != nil {
		subtotal += *in.FlatAmount
	}
	if in.MaterialsCost != nil {
		subtotal += *in.MaterialsCost
	}

	t := Totals{Subtotal: subtotal}
	switch {
	case in.TaxAmount != nil:
		t.TaxAmount = *in.TaxAmount
		if in.TaxRate != nil {
			t.TaxRate = *in.TaxRate
		}
	case in.TaxRate != nil:
		t.TaxRate = *in.TaxRate
		t.TaxAmount = subtotal * (*in.TaxRate / 100)
	}
	t.Total = t.Subtotal + t.TaxAmount
	return t, nil
}

// RoundMoney rounds to 2 decimal places, ties away from zero.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns the totals rounded to cents for persistence/display.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:  RoundMoney(t.Subtotal),
		TaxRate:   t.TaxRate,
		TaxAmount: RoundMoney(t.TaxAmount),
		Total:     RoundMoney(t.Total),
	}
}

// Quote is a priced proposal for a job's cost.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariant: Total == Subtotal + TaxAmount within a cent.

type Quote struct {
	ID         string      `json:"id"`
	JobID      string      `json:"job_id"`
	CustomerID string      `json:"customer_id"`
	Status     QuoteStatus `json:"status"`

	Input  PricingInput `json:"input"`
	Totals Totals       `json:"totals"`

	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
