package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice (both kinds).

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error)
	ListByKind(ctx context.Context, kind entities.InvoiceKind) ([]entities.Invoice, error)
}

// IInvoiceSequence hands out the next sequential invoice number per kind.
// Backed by an atomic DynamoDB counter so numbers never repeat.
type IInvoiceSequence interface {
	Next(ctx context.Context, kind entities.InvoiceKind) (int64, error)
}
