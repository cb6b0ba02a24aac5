package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Not-found convention (as everywhere in this codebase): lookups return the
// zero entity with a nil error; use cases translate that into a sentinel.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
}
