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
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidInvoiceInput      = errors.New("invalid invoice input")
	ErrQuoteNotApproved         = errors.New("quote not approved")
	ErrInvoiceSettled           = errors.New("invoice total is immutable after a succeeded payment")
	ErrInvalidInvoiceTransition = errors.New("invalid invoice status transition")
)

// IInvoiceUseCase exposes invoice operations for both customer and contractor
// invoices.
//
//   - POST /customer-invoices/   => CreateFromQuote() (manual "Create Invoice")
//   - POST /contractor-invoices/ => CreateForContractor()
//   - status changes             => Send()/MarkOverdue()/Void()
//
// Invoice numbers are sequential per kind (INV-/CINV-), allocated from an
// atomic counter so concurrent creations never collide.

type IInvoiceUseCase interface {
	CreateFromQuote(ctx context.Context, in CreateCustomerInvoiceInput) (entities.Invoice, error)
	CreateForContractor(ctx context.Context, in CreateContractorInvoiceInput) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error)
	ListByKind(ctx context.Context, kind entities.InvoiceKind) ([]entities.Invoice, error)
	UpdateTotal(ctx context.Context, id string, total float64) (entities.Invoice, error)
	Send(ctx context.Context, id string) (entities.Invoice, error)
	MarkOverdue(ctx context.Context, id string) (entities.Invoice, error)
	Void(ctx context.Context, id string) (entities.Invoice, error)
}

type CreateCustomerInvoiceInput struct {
	QuoteID   string
	DueDate   *time.Time
	CreatedBy string
}

type CreateContractorInvoiceInput struct {
	JobID        string
	ContractorID string
	Total        float64
	DueDate      *time.Time
	CreatedBy    string
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	quoteRepo   interfaces.IQuoteRepository
	paymentRepo interfaces.IPaymentRepository
	sequence    interfaces.IInvoiceSequence
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, quoteRepo interfaces.IQuoteRepository, paymentRepo interfaces.IPaymentRepository, sequence interfaces.IInvoiceSequence) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, quoteRepo: quoteRepo, paymentRepo: paymentRepo, sequence: sequence}
}

// CreateFromQuote issues a customer invoice for an approved quote. Invoice
// creation is a manual operator action; approval of a quote never creates an
// invoice by itself.
func (u *InvoiceUseCase) CreateFromQuote(ctx context.Context, in CreateCustomerInvoiceInput) (entities.Invoice, error) {
	quoteID := strings.TrimSpace(in.QuoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if quote.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusApproved {
		return entities.Invoice{}, ErrQuoteNotApproved
	}

	seq, err := u.sequence.Next(ctx, entities.InvoiceKindCustomer)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		Kind:          entities.InvoiceKindCustomer,
		InvoiceNumber: entities.InvoiceKindCustomer.FormatNumber(seq),
		JobID:         quote.JobID,
		CustomerID:    quote.CustomerID,
		QuoteID:       quote.ID,
		Status:        entities.InvoiceStatusDraft,
		Total:         entities.RoundMoney(quote.Totals.Total),
		DueDate:       in.DueDate,
		CreatedBy:     strings.TrimSpace(in.CreatedBy),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created number=%s quote_id=%s total=%.2f", created.InvoiceNumber, quoteID, created.Total)
	return created, nil
}

func (u *InvoiceUseCase) CreateForContractor(ctx context.Context, in CreateContractorInvoiceInput) (entities.Invoice, error) {
	jobID := strings.TrimSpace(in.JobID)
	contractorID := strings.TrimSpace(in.ContractorID)
	if jobID == "" || contractorID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}
	if in.Total < 0 {
		return entities.Invoice{}, entities.ErrInvalidAmount
	}

	seq, err := u.sequence.Next(ctx, entities.InvoiceKindContractor)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		Kind:          entities.InvoiceKindContractor,
		InvoiceNumber: entities.InvoiceKindContractor.FormatNumber(seq),
		JobID:         jobID,
		ContractorID:  contractorID,
		Status:        entities.InvoiceStatusDraft,
		Total:         entities.RoundMoney(in.Total),
		DueDate:       in.DueDate,
		CreatedBy:     strings.TrimSpace(in.CreatedBy),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return u.getInvoice(ctx, id)
}

func (u *InvoiceUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *InvoiceUseCase) ListByKind(ctx context.Context, kind entities.InvoiceKind) ([]entities.Invoice, error) {
	if !kind.Valid() {
		return nil, ErrInvalidInvoiceInput
	}
	return u.repo.ListByKind(ctx, kind)
}

// UpdateTotal edits the invoice amount. Once any succeeded payment references
// the invoice the total is frozen.
func (u *InvoiceUseCase) UpdateTotal(ctx context.Context, id string, total float64) (entities.Invoice, error) {
	if total < 0 {
		return entities.Invoice{}, entities.ErrInvalidAmount
	}
	inv, err := u.getInvoice(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	settled, err := u.hasSucceededPayment(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if settled {
		return entities.Invoice{}, ErrInvoiceSettled
	}

	inv.Total = entities.RoundMoney(total)
	inv.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, inv)
}

func (u *InvoiceUseCase) Send(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusSent)
}

func (u *InvoiceUseCase) MarkOverdue(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusOverdue)
}

// Void terminates the invoice without payment. Void is a status, not a
// deletion; the document stays queryable.
func (u *InvoiceUseCase) Void(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusVoid)
}

func (u *InvoiceUseCase) transition(ctx context.Context, id string, target entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.getInvoice(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !inv.Status.CanTransitionTo(target) {
		return entities.Invoice{}, ErrInvalidInvoiceTransition
	}
	inv.Status = target
	inv.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, inv)
}

func (u *InvoiceUseCase) hasSucceededPayment(ctx context.Context, invoiceID string) (bool, error) {
	payments, err := u.paymentRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusSucceeded {
			return true, nil
		}
	}
	return false, nil
}

func (u *InvoiceUseCase) getInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}
