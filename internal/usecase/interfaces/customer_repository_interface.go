package interfaces

import (
	"context"

	"brokerhub/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}
