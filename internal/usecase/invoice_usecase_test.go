package usecase

import (
	"context"
	"errors"
	"testing"

	"brokerhub/internal/domain/entities"
	mock_interfaces "brokerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_CreateFromQuote(t *testing.T) {
	t.Run("missing quote id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		_, err := uc.CreateFromQuote(context.Background(), CreateCustomerInvoiceInput{})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewInvoiceUseCase(nil, quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		_, err := uc.CreateFromQuote(context.Background(), CreateCustomerInvoiceInput{QuoteID: "q-1"})
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("success carries quote total and sequential number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		seq := mock_interfaces.NewMockIInvoiceSequence(ctrl)
		uc := NewInvoiceUseCase(repo, quoteRepo, nil, seq)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", JobID: "job-1", CustomerID: "cus-1",
			Status: entities.QuoteStatusApproved,
			Totals: entities.Totals{Subtotal: 200, TaxAmount: 16, Total: 216},
		}, nil)
		seq.EXPECT().Next(gomock.Any(), entities.InvoiceKindCustomer).Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "INV-000042" {
					t.Fatalf("expected INV-000042, got %s", inv.InvoiceNumber)
				}
				if inv.Status != entities.InvoiceStatusDraft || inv.Total != 216 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if inv.JobID != "job-1" || inv.CustomerID != "cus-1" || inv.QuoteID != "q-1" {
					t.Fatalf("expected links to quote, got %+v", inv)
				}
				return inv, nil
			},
		)

		if _, err := uc.CreateFromQuote(context.Background(), CreateCustomerInvoiceInput{QuoteID: "q-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_CreateForContractor(t *testing.T) {
	t.Run("missing ids", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		_, err := uc.CreateForContractor(context.Background(), CreateContractorInvoiceInput{JobID: "job-1"})
		if !errors.Is(err, ErrInvalidInvoiceInput) {
			t.Fatalf("expected ErrInvalidInvoiceInput, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		_, err := uc.CreateForContractor(context.Background(), CreateContractorInvoiceInput{JobID: "job-1", ContractorID: "con-1", Total: -5})
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("success uses contractor number series", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		seq := mock_interfaces.NewMockIInvoiceSequence(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, seq)

		seq.EXPECT().Next(gomock.Any(), entities.InvoiceKindContractor).Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "CINV-000007" || inv.Kind != entities.InvoiceKindContractor {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				return inv, nil
			},
		)

		if _, err := uc.CreateForContractor(context.Background(), CreateContractorInvoiceInput{JobID: "job-1", ContractorID: "con-1", Total: 150}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateTotal(t *testing.T) {
	t.Run("frozen after succeeded payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, Total: 216}, nil)
		paymentRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{
			{ID: "pay-1", Status: entities.PaymentStatusSucceeded},
		}, nil)

		_, err := uc.UpdateTotal(context.Background(), "inv-1", 300)
		if !errors.Is(err, ErrInvoiceSettled) {
			t.Fatalf("expected ErrInvoiceSettled, got %v", err)
		}
	})

	t.Run("failed payment does not freeze", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, Total: 216}, nil)
		paymentRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{
			{ID: "pay-1", Status: entities.PaymentStatusFailed},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Total != 300 {
					t.Fatalf("expected total 300, got %v", inv.Total)
				}
				return inv, nil
			},
		)

		if _, err := uc.UpdateTotal(context.Background(), "inv-1", 300); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateTotal(context.Background(), "inv-1", -1)
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Transitions(t *testing.T) {
	invAt := func(s entities.InvoiceStatus) entities.Invoice {
		return entities.Invoice{ID: "inv-1", Status: s}
	}

	t.Run("send draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invAt(entities.InvoiceStatusDraft), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusSent {
					t.Fatalf("expected sent, got %s", inv.Status)
				}
				return inv, nil
			},
		)

		if _, err := uc.Send(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("overdue requires sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invAt(entities.InvoiceStatusDraft), nil)

		_, err := uc.MarkOverdue(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidInvoiceTransition) {
			t.Fatalf("expected ErrInvalidInvoiceTransition, got %v", err)
		}
	})

	t.Run("void terminal invoice rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invAt(entities.InvoiceStatusPaid), nil)

		_, err := uc.Void(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidInvoiceTransition) {
			t.Fatalf("expected ErrInvalidInvoiceTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-9").Return(entities.Invoice{}, nil)

		_, err := uc.Send(context.Background(), "inv-9")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
