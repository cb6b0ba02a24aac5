package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrInvalidPaymentInvoiceID   = errors.New("invalid invoice_id")
	ErrInvalidProviderPayload    = errors.New("invalid payment provider payload")
	ErrInvoiceNotPayable         = errors.New("invoice is not payable in its current status")
	ErrInvoiceAlreadySettled     = errors.New("invoice already has a succeeded payment")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IPaymentUseCase encapsulates charging a customer invoice through the card
// processor and recording the settlement attempt.
//
//   - POST /payments/{invoice_id} => Charge()
//   - GET /payments/all           => List()

type IPaymentUseCase interface {
	Charge(ctx context.Context, invoiceID string, in ChargeInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
}

type ChargeInput struct {
	CardLastFour    string
	ProviderPayload json.RawMessage
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	jobRepo     interfaces.IJobRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoiceRepo interfaces.IInvoiceRepository, jobRepo interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, jobRepo: jobRepo, gateway: gateway}
}

// Charge runs a payment attempt for a customer invoice. The invoice total in
// the store is the source of truth for the charged amount; the provider
// payload is enriched with it before the gateway call. A retry after a failed
// attempt is fine; an invoice with a succeeded payment is already settled and
// a further charge is rejected rather than silently allowed.
func (u *PaymentUseCase) Charge(ctx context.Context, invoiceID string, in ChargeInput) (entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, ErrInvalidPaymentInvoiceID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayUnavailable
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, ErrInvoiceNotFound
	}
	if inv.Kind != entities.InvoiceKindCustomer {
		return entities.Payment{}, ErrInvoiceNotPayable
	}
	if inv.Status == entities.InvoiceStatusVoid || inv.Status == entities.InvoiceStatusDraft {
		return entities.Payment{}, ErrInvoiceNotPayable
	}

	existing, err := u.repo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusSucceeded {
			log.Printf("[payment][usecase] charge refused, already settled invoice_id=%s payment_id=%s", invoiceID, p.ID)
			return entities.Payment{}, ErrInvoiceAlreadySettled
		}
	}

	payload := in.ProviderPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	// The payload must be a JSON object: the invoice total drives
	// transaction_amount and external_reference ties the provider record back
	// to the invoice, so a payload the enrichment cannot reach would let the
	// charged amount drift from the invoice.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	reqMap["transaction_amount"] = inv.Total
	b, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	payload = b

	log.Printf("[payment][usecase] calling gateway invoice_id=%s amount=%.2f", invoiceID, inv.Total)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.Payment{}, err
	}

	status := paymentStatusFromProvider(providerStatus)
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 uuid.NewString(),
		InvoiceID:          inv.ID,
		CustomerID:         inv.CustomerID,
		Amount:             inv.Total,
		Status:             status,
		CardLastFour:       strings.TrimSpace(in.CardLastFour),
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] recorded invoice_id=%s payment_id=%s status=%s provider_payment_id=%s", invoiceID, created.ID, created.Status, providerPaymentID)

	if created.Status == entities.PaymentStatusSucceeded {
		u.settleInvoice(ctx, inv)
	}
	return created, nil
}

// settleInvoice marks the invoice paid and, when the job has completed its
// work, closes the job lifecycle. Both writes are best-effort follow-ups to
// an already recorded payment.
func (u *PaymentUseCase) settleInvoice(ctx context.Context, inv entities.Invoice) {
	if inv.Status.CanTransitionTo(entities.InvoiceStatusPaid) {
		inv.Status = entities.InvoiceStatusPaid
		inv.UpdatedAt = time.Now().UTC()
		if _, err := u.invoiceRepo.Update(ctx, inv); err != nil {
			log.Printf("[payment][usecase] invoice settle update failed invoice_id=%s err=%v", inv.ID, err)
			return
		}
	}

	job, err := u.jobRepo.GetByID(ctx, inv.JobID)
	if err != nil || job.ID == "" {
		log.Printf("[payment][usecase] job lookup for settlement failed job_id=%s err=%v", inv.JobID, err)
		return
	}
	if job.Status.CanTransitionTo(entities.JobStatusPaid) {
		job.Status = entities.JobStatusPaid
		job.UpdatedAt = time.Now().UTC()
		if _, err := u.jobRepo.Update(ctx, job); err != nil {
			log.Printf("[payment][usecase] job settle update failed job_id=%s err=%v", job.ID, err)
		}
	}
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusSucceeded
	case "pending", "in_process", "authorized":
		return entities.PaymentStatusPending
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	default:
		return entities.PaymentStatusFailed
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.repo.List(ctx)
}
