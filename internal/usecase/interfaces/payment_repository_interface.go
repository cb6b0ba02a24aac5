package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
}
