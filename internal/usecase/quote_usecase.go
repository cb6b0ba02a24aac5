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
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrDuplicateActiveQuote   = errors.New("job already has an active quote")
	ErrQuoteTerminal          = errors.New("quote is in a terminal status")
	ErrInvalidQuoteTransition = errors.New("invalid quote status transition")
	ErrMissingRejectionReason = errors.New("rejection requires a reason")
)

// IQuoteUseCase exposes quote pricing and lifecycle operations.
//
//   - POST /quotes              => Create() (computes totals)
//   - GET /quotes/{id}          => GetByID()
//   - PATCH /quotes/{id}/send   => Send()
//   - PATCH /quotes/{id}/approve|reject|expire => Approve()/Reject()/Expire()

type IQuoteUseCase interface {
	Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id, reason string) (entities.Quote, error)
	Expire(ctx context.Context, id string) (entities.Quote, error)
}

type CreateQuoteInput struct {
	JobID      string
	Input      entities.PricingInput
	ValidUntil *time.Time
	CreatedBy  string
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	jobRepo interfaces.IJobRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, jobRepo interfaces.IJobRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, jobRepo: jobRepo}
}

// Create prices and stores a new draft quote for a job. At most one quote per
// job may be active (draft/sent); terminal quotes (rejected/expired/approved)
// do not block a re-quote.
func (u *QuoteUseCase) Create(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return entities.Quote{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if job.ID == "" {
		return entities.Quote{}, ErrJobNotFound
	}

	existing, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range existing {
		if q.Status.IsActive() {
			log.Printf("[quote][usecase] duplicate active quote job_id=%s existing_quote_id=%s status=%s", jobID, q.ID, q.Status)
			return entities.Quote{}, ErrDuplicateActiveQuote
		}
	}

	totals, err := entities.ComputeTotals(in.Input)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		JobID:      jobID,
		CustomerID: job.CustomerID,
		Status:     entities.QuoteStatusDraft,
		Input:      in.Input,
		Totals:     totals.Rounded(),
		ValidUntil: in.ValidUntil,
		CreatedBy:  strings.TrimSpace(in.CreatedBy),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s job_id=%s total=%.2f", created.ID, jobID, created.Totals.Total)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.getQuote(ctx, id)
}

func (u *QuoteUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

// Send marks a draft quote as sent and nudges the job to quote_pending when
// it is waiting on a quote.
func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusSent, "")
}

// Approve finalizes customer acceptance. The job stays in quote_pending; the
// operator moves it to approved through the job transition endpoint, which
// checks that an approved quote exists.
func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusApproved, "")
}

func (u *QuoteUseCase) Reject(ctx context.Context, id, reason string) (entities.Quote, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.Quote{}, ErrMissingRejectionReason
	}
	return u.transition(ctx, id, entities.QuoteStatusRejected, strings.TrimSpace(reason))
}

func (u *QuoteUseCase) Expire(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusExpired, "")
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, target entities.QuoteStatus, reason string) (entities.Quote, error) {
	q, err := u.getQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrQuoteTerminal
	}
	if !q.Status.CanTransitionTo(target) {
		return entities.Quote{}, ErrInvalidQuoteTransition
	}

	now := time.Now().UTC()
	switch target {
	case entities.QuoteStatusSent:
		q.SentAt = &now
	case entities.QuoteStatusApproved, entities.QuoteStatusRejected:
		q.RespondedAt = &now
	}
	if target == entities.QuoteStatusRejected {
		q.RejectionReason = reason
	}

	from := q.Status
	q.Status = target
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] transition quote_id=%s from=%s to=%s", q.ID, from, target)

	u.advanceJob(ctx, updated)
	return updated, nil
}

// advanceJob propagates the quote's new status to its job's lifecycle. The
// job write is best-effort: a failure here leaves the quote state correct and
// the operator re-drives the job through its own transition endpoint.
func (u *QuoteUseCase) advanceJob(ctx context.Context, q entities.Quote) {
	var target entities.JobStatus
	switch q.Status {
	case entities.QuoteStatusSent:
		target = entities.JobStatusQuotePending
	case entities.QuoteStatusRejected:
		target = entities.JobStatusQuoteRejected
	default:
		// Approval deliberately leaves the job in quote_pending: moving to
		// approved is an explicit operator transition gated on the approved
		// quote existing.
		return
	}

	job, err := u.jobRepo.GetByID(ctx, q.JobID)
	if err != nil || job.ID == "" {
		log.Printf("[quote][usecase] advance job lookup failed job_id=%s err=%v", q.JobID, err)
		return
	}
	if !job.Status.CanTransitionTo(target) {
		return
	}
	job.Status = target
	job.UpdatedAt = time.Now().UTC()
	if _, err := u.jobRepo.Update(ctx, job); err != nil {
		log.Printf("[quote][usecase] advance job update failed job_id=%s to=%s err=%v", job.ID, target, err)
	}
}

func (u *QuoteUseCase) getQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
