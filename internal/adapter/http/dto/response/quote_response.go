package response

import (
	"time"

	"brokerhub/internal/domain/entities"
)

type QuoteResponse struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`

	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	FlatAmount     *float64 `json:"flat_amount,omitempty"`
	MaterialsCost  *float64 `json:"materials_cost,omitempty"`

	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	totals := q.Totals.Rounded()
	return QuoteResponse{
		ID:         q.ID,
		JobID:      q.JobID,
		CustomerID: q.CustomerID,
		Status:     string(q.Status),

		HourlyRate:     q.Input.HourlyRate,
		EstimatedHours: q.Input.EstimatedHours,
		FlatAmount:     q.Input.FlatAmount,
		MaterialsCost:  q.Input.MaterialsCost,

		Subtotal:  totals.Subtotal,
		TaxRate:   totals.TaxRate,
		TaxAmount: totals.TaxAmount,
		Total:     totals.Total,

		ValidUntil:      q.ValidUntil,
		SentAt:          q.SentAt,
		RespondedAt:     q.RespondedAt,
		RejectionReason: q.RejectionReason,

		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
