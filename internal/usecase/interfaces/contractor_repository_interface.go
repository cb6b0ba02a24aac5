package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// IContractorRepository abstracts DynamoDB persistence for Contractor.

type IContractorRepository interface {
	Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	Update(ctx context.Context, c entities.Contractor) (entities.Contractor, error)
	List(ctx context.Context) ([]entities.Contractor, error)
}
