package request

import (
	"time"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase"
)

// CreateQuoteRequest carries the operator-entered pricing fields. Absent
// fields stay nil and default to zero in the calculator; tax_amount, when
// present, is an explicit override of the derived tax.
type CreateQuoteRequest struct {
	JobID          string     `json:"job_id" binding:"required"`
	HourlyRate     *float64   `json:"hourly_rate"`
	EstimatedHours *float64   `json:"estimated_hours"`
	FlatAmount     *float64   `json:"flat_amount"`
	MaterialsCost  *float64   `json:"materials_cost"`
	TaxRate        *float64   `json:"tax_rate"`
	TaxAmount      *float64   `json:"tax_amount"`
	ValidUntil     *time.Time `json:"valid_until"`
}

func (r CreateQuoteRequest) ToInput(createdBy string) usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		JobID: r.JobID,
		Input: entities.PricingInput{
			HourlyRate:     r.HourlyRate,
			EstimatedHours: r.EstimatedHours,
			FlatAmount:     r.FlatAmount,
			MaterialsCost:  r.MaterialsCost,
			TaxRate:        r.TaxRate,
			TaxAmount:      r.TaxAmount,
		},
		ValidUntil: r.ValidUntil,
		CreatedBy:  createdBy,
	}
}

type RejectQuoteRequest struct {
	Reason string `json:"reason" binding:"required"`
}
