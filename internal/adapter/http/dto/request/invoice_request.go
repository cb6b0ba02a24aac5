package request

import (
	"time"

	"brokerhub/internal/usecase"
)

type CreateCustomerInvoiceRequest struct {
	QuoteID string     `json:"quote_id" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

func (r CreateCustomerInvoiceRequest) ToInput(createdBy string) usecase.CreateCustomerInvoiceInput {
	return usecase.CreateCustomerInvoiceInput{
		QuoteID:   r.QuoteID,
		DueDate:   r.DueDate,
		CreatedBy: createdBy,
	}
}

type CreateContractorInvoiceRequest struct {
	JobID        string     `json:"job_id" binding:"required"`
	ContractorID string     `json:"contractor_id" binding:"required"`
	Total        float64    `json:"total"`
	DueDate      *time.Time `json:"due_date"`
}

func (r CreateContractorInvoiceRequest) ToInput(createdBy string) usecase.CreateContractorInvoiceInput {
	return usecase.CreateContractorInvoiceInput{
		JobID:        r.JobID,
		ContractorID: r.ContractorID,
		Total:        r.Total,
		DueDate:      r.DueDate,
		CreatedBy:    createdBy,
	}
}

type UpdateInvoiceTotalRequest struct {
	Total *float64 `json:"total" binding:"required"`
}
