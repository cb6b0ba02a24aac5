package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrInvalidJobInput      = errors.New("invalid job input")
	ErrInvalidTransition    = errors.New("invalid job status transition")
	ErrMissingApprovedQuote = errors.New("job has no approved quote")
	ErrMissingCancelledBy   = errors.New("cancelled_by is required for cancellation")
)

// IJobUseCase exposes the job lifecycle operations consumed by the dashboard.
//
//   - POST /jobs                   => Create()
//   - GET /jobs/{id}               => GetByID()
//   - PATCH /jobs/update/{id}      => Update() (partial; only changed fields)
//   - POST /jobs/{id}/transition   => Transition()
//   - address drift suggestion     => SuggestAddress()

type IJobUseCase interface {
	Create(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error)
	Transition(ctx context.Context, id string, target entities.JobStatus, actor, reason string) (entities.Job, error)
	SuggestAddress(ctx context.Context, id string) (AddressSuggestion, error)
}

type CreateJobInput struct {
	Title                 string
	Description           string
	CustomerID            string
	ContractorID          string
	Address               entities.Address
	SameAsCustomerAddress bool
	Priority              entities.JobPriority
	PayType               entities.PayType
	ScheduledDate         string
	ScheduledTime         string
	CreatedBy             string
}

// UpdateJobInput is a partial update: nil means "leave unchanged", matching
// the PATCH payloads the dashboard sends (only changed fields).
type UpdateJobInput struct {
	Title                 *string
	Description           *string
	CustomerID            *string
	ContractorID          *string
	Address               *entities.Address
	SameAsCustomerAddress *bool
	Priority              *entities.JobPriority
	PayType               *entities.PayType
	ScheduledDate         *string
	ScheduledTime         *string
}

// AddressSuggestion is the reconciliation result for a job against its
// customer: the candidate produced by preferring the customer's non-empty
// fields, and whether the stored address already matches (no drift).
type AddressSuggestion struct {
	Candidate entities.Address `json:"candidate"`
	InSync    bool             `json:"in_sync"`
}

type JobUseCase struct {
	repo         interfaces.IJobRepository
	customerRepo interfaces.ICustomerRepository
	quoteRepo    interfaces.IQuoteRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customerRepo interfaces.ICustomerRepository, quoteRepo interfaces.IQuoteRepository) *JobUseCase {
	return &JobUseCase{repo: repo, customerRepo: customerRepo, quoteRepo: quoteRepo}
}

func (u *JobUseCase) Create(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if strings.TrimSpace(in.Title) == "" || in.CustomerID == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	customer, err := u.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Job{}, err
	}
	if customer.ID == "" {
		return entities.Job{}, ErrCustomerNotFound
	}

	priority := in.Priority
	if priority == "" {
		priority = entities.JobPriorityMedium
	}
	payType := in.PayType
	if payType == "" {
		payType = entities.PayTypeUnset
	}
	if !priority.Valid() || !payType.Valid() {
		return entities.Job{}, ErrInvalidJobInput
	}

	address := in.Address
	if in.SameAsCustomerAddress {
		address = address.MergeFrom(customer.Address)
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:                    uuid.NewString(),
		Title:                 strings.TrimSpace(in.Title),
		Description:           in.Description,
		CustomerID:            in.CustomerID,
		ContractorID:          strings.TrimSpace(in.ContractorID),
		Address:               address,
		SameAsCustomerAddress: in.SameAsCustomerAddress,
		Status:                entities.JobStatusOpen,
		Priority:              priority,
		PayType:               payType,
		ScheduledDate:         in.ScheduledDate,
		ScheduledTime:         in.ScheduledTime,
		CreatedBy:             strings.TrimSpace(in.CreatedBy),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return u.getJob(ctx, id)
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.repo.List(ctx)
}

func (u *JobUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Update applies a partial edit. While the same-as-customer toggle is on, the
// service address re-derives from the (possibly newly selected) customer and
// any address fields in the payload are ignored; turning the toggle off
// freezes whatever values are currently populated.
func (u *JobUseCase) Update(ctx context.Context, id string, in UpdateJobInput) (entities.Job, error) {
	j, err := u.getJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.ContractorID != nil {
		j.ContractorID = strings.TrimSpace(*in.ContractorID)
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.Priority = *in.Priority
	}
	if in.PayType != nil {
		if !in.PayType.Valid() {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.PayType = *in.PayType
	}
	if in.ScheduledDate != nil {
		j.ScheduledDate = *in.ScheduledDate
	}
	if in.ScheduledTime != nil {
		j.ScheduledTime = *in.ScheduledTime
	}

	customerChanged := false
	if in.CustomerID != nil && strings.TrimSpace(*in.CustomerID) != j.CustomerID {
		newID := strings.TrimSpace(*in.CustomerID)
		if newID == "" {
			return entities.Job{}, ErrInvalidJobInput
		}
		j.CustomerID = newID
		customerChanged = true
	}
	if in.SameAsCustomerAddress != nil {
		j.SameAsCustomerAddress = *in.SameAsCustomerAddress
	}

	if j.SameAsCustomerAddress {
		// Re-derive from the customer; explicit address edits are ignored
		// while the toggle is on.
		customer, err := u.customerRepo.GetByID(ctx, j.CustomerID)
		if err != nil {
			return entities.Job{}, err
		}
		if customer.ID == "" {
			return entities.Job{}, ErrCustomerNotFound
		}
		j.Address = j.Address.MergeFrom(customer.Address)
	} else if in.Address != nil {
		j.Address = *in.Address
	} else if customerChanged {
		// Customer switched with the toggle off: keep the frozen address.
		log.Printf("[job][usecase] customer changed with address frozen job_id=%s customer_id=%s", j.ID, j.CustomerID)
	}

	j.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, j)
}

// Transition moves the job to target per the lifecycle adjacency rules.
// Reaching approved additionally requires an approved quote for the job.
// Cancellation requires a non-empty actor and stamps cancelled_at/by/reason.
func (u *JobUseCase) Transition(ctx context.Context, id string, target entities.JobStatus, actor, reason string) (entities.Job, error) {
	j, err := u.getJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if !j.Status.CanTransitionTo(target) {
		log.Printf("[job][usecase] invalid transition job_id=%s from=%s to=%s", j.ID, j.Status, target)
		return entities.Job{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	switch target {
	case entities.JobStatusApproved:
		ok, err := u.hasApprovedQuote(ctx, j.ID)
		if err != nil {
			return entities.Job{}, err
		}
		if !ok {
			return entities.Job{}, ErrMissingApprovedQuote
		}
	case entities.JobStatusInProgress:
		j.StartedAt = &now
	case entities.JobStatusCompleted:
		j.CompletedAt = &now
	case entities.JobStatusCancelled:
		if strings.TrimSpace(actor) == "" {
			return entities.Job{}, ErrMissingCancelledBy
		}
		j.CancelledAt = &now
		j.CancelledBy = strings.TrimSpace(actor)
		j.CancellationReason = strings.TrimSpace(reason)
	}

	from := j.Status
	j.Status = target
	j.UpdatedAt = now

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] transition job_id=%s from=%s to=%s actor=%s", j.ID, from, target, actor)
	return updated, nil
}

// SuggestAddress reconciles the job's service address against its customer's.
func (u *JobUseCase) SuggestAddress(ctx context.Context, id string) (AddressSuggestion, error) {
	j, err := u.getJob(ctx, id)
	if err != nil {
		return AddressSuggestion{}, err
	}
	customer, err := u.customerRepo.GetByID(ctx, j.CustomerID)
	if err != nil {
		return AddressSuggestion{}, err
	}
	if customer.ID == "" {
		return AddressSuggestion{}, ErrCustomerNotFound
	}
	return AddressSuggestion{
		Candidate: j.Address.MergeFrom(customer.Address),
		InSync:    j.Address.Matches(customer.Address),
	}, nil
}

func (u *JobUseCase) hasApprovedQuote(ctx context.Context, jobID string) (bool, error) {
	quotes, err := u.quoteRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return false, err
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (u *JobUseCase) getJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}
