package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// ICustomerUseCase exposes customer CRUD with schema validation at the
// boundary (phone, state code, atomic billing address).

type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CreateCustomerInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        entities.Address
	BillingAddress *entities.Address
	CreatedBy      string
}

type UpdateCustomerInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Address        *entities.Address
	BillingAddress *entities.Address
	// ClearBillingAddress removes the billing address entirely (a nil
	// BillingAddress in a PATCH means "unchanged", not "remove").
	ClearBillingAddress bool
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	now := time.Now().UTC()
	c := entities.Customer{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        in.Address,
		BillingAddress: in.BillingAddress,
		CreatedBy:      strings.TrimSpace(in.CreatedBy),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	return u.getCustomer(ctx, id)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error) {
	c, err := u.getCustomer(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if in.FirstName != nil {
		c.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		c.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.ClearBillingAddress {
		c.BillingAddress = nil
	} else if in.BillingAddress != nil {
		c.BillingAddress = in.BillingAddress
	}

	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}

	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) getCustomer(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}
