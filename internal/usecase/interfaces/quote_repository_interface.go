package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The duplicate-active-quote rule needs ListByJobID; everything else is
// straight CRUD. Status changes go through Update (whole-item put) because a
// quote status change also touches timestamps and the rejection reason.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
}
