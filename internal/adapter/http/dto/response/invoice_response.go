package response

import (
	"time"

	"brokerhub/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	InvoiceNumber string     `json:"invoice_number"`
	JobID         string     `json:"job_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	ContractorID  string     `json:"contractor_id,omitempty"`
	QuoteID       string     `json:"quote_id,omitempty"`
	Status        string     `json:"status"`
	Total         float64    `json:"total"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		Kind:          string(inv.Kind),
		InvoiceNumber: inv.InvoiceNumber,
		JobID:         inv.JobID,
		CustomerID:    inv.CustomerID,
		ContractorID:  inv.ContractorID,
		QuoteID:       inv.QuoteID,
		Status:        string(inv.Status),
		Total:         inv.Total,
		DueDate:       inv.DueDate,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
