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
	ErrContractorNotFound  = errors.New("contractor not found")
	ErrInvalidContractorID = errors.New("invalid contractor id")
)

// IContractorUseCase exposes contractor CRUD. Contractors start unverified;
// verification is a flag flip via Update once paperwork clears.

type IContractorUseCase interface {
	Create(ctx context.Context, in CreateContractorInput) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	Update(ctx context.Context, id string, in UpdateContractorInput) (entities.Contractor, error)
	List(ctx context.Context) ([]entities.Contractor, error)
}

type CreateContractorInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       entities.Address
	HourlyRate    float64
	FlatRate      float64
	TaxID         string
	InsuranceInfo string
	CreatedBy     string
}

type UpdateContractorInput struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	Address       *entities.Address
	HourlyRate    *float64
	FlatRate      *float64
	TaxID         *string
	InsuranceInfo *string
	Active        *bool
	Verified      *bool
}

type ContractorUseCase struct {
	repo interfaces.IContractorRepository
}

var _ IContractorUseCase = (*ContractorUseCase)(nil)

func NewContractorUseCase(repo interfaces.IContractorRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo}
}

func (u *ContractorUseCase) Create(ctx context.Context, in CreateContractorInput) (entities.Contractor, error) {
	now := time.Now().UTC()
	c := entities.Contractor{
		ID:            uuid.NewString(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       in.Address,
		HourlyRate:    in.HourlyRate,
		FlatRate:      in.FlatRate,
		TaxID:         strings.TrimSpace(in.TaxID),
		InsuranceInfo: strings.TrimSpace(in.InsuranceInfo),
		Active:        true,
		Verified:      false,
		CreatedBy:     strings.TrimSpace(in.CreatedBy),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.Validate(); err != nil {
		return entities.Contractor{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *ContractorUseCase) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	return u.getContractor(ctx, id)
}

func (u *ContractorUseCase) Update(ctx context.Context, id string, in UpdateContractorInput) (entities.Contractor, error) {
	c, err := u.getContractor(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
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
	if in.HourlyRate != nil {
		c.HourlyRate = *in.HourlyRate
	}
	if in.FlatRate != nil {
		c.FlatRate = *in.FlatRate
	}
	if in.TaxID != nil {
		c.TaxID = strings.TrimSpace(*in.TaxID)
	}
	if in.InsuranceInfo != nil {
		c.InsuranceInfo = strings.TrimSpace(*in.InsuranceInfo)
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if in.Verified != nil {
		c.Verified = *in.Verified
	}

	if err := c.Validate(); err != nil {
		return entities.Contractor{}, err
	}

	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *ContractorUseCase) List(ctx context.Context) ([]entities.Contractor, error) {
	return u.repo.List(ctx)
}

func (u *ContractorUseCase) getContractor(ctx context.Context, id string) (entities.Contractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contractor{}, ErrInvalidContractorID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	return c, nil
}
