package response

import (
	"time"

	"brokerhub/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	InvoiceID         string    `json:"invoice_id"`
	CustomerID        string    `json:"customer_id,omitempty"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	CardLastFour      string    `json:"card_last_four,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		CustomerID:        p.CustomerID,
		Amount:            p.Amount,
		Status:            string(p.Status),
		CardLastFour:      p.CardLastFour,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
