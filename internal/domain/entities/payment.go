package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment is a settlement attempt against a customer invoice. Failed
// attempts are kept; at most one succeeded payment should exist per invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the processor's original response (JSON) for
//     traceability/audit; ProviderPaymentID is the processor reference.

type Payment struct {
	ID         string `json:"id"`
	InvoiceID  string `json:"invoice_id"`
	CustomerID string `json:"customer_id"`

	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	CardLastFour string        `json:"card_last_four,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
