package usecase

import (
	"context"
	"errors"
	"testing"

	"brokerhub/internal/domain/entities"
	mock_interfaces "brokerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fPtr(v float64) *float64 { return &v }

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing job id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteInput{JobID: "   "})
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(nil, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteInput{JobID: "job-1"})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("active quote blocks second", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusSent},
		}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteInput{JobID: "job-1"})
		if !errors.Is(err, ErrDuplicateActiveQuote) {
			t.Fatalf("expected ErrDuplicateActiveQuote, got %v", err)
		}
	})

	t.Run("rejected quote does not block re-quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cus-1"}, nil)
		repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusRejected},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusDraft || q.CustomerID != "cus-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateQuoteInput{JobID: "job-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("computes and rounds totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		got, err := uc.Create(context.Background(), CreateQuoteInput{
			JobID: "job-1",
			Input: entities.PricingInput{HourlyRate: fPtr(50), EstimatedHours: fPtr(4), TaxRate: fPtr(8)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Totals.Subtotal != 200 || got.Totals.TaxAmount != 16 || got.Totals.Total != 216 {
			t.Fatalf("unexpected totals: %+v", got.Totals)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), CreateQuoteInput{
			JobID: "job-1",
			Input: entities.PricingInput{FlatAmount: fPtr(-10)},
		})
		if !errors.Is(err, entities.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestQuoteUseCase_Lifecycle(t *testing.T) {
	quoteAt := func(s entities.QuoteStatus) entities.Quote {
		return entities.Quote{ID: "q-1", JobID: "job-1", Status: s}
	}

	t.Run("send advances job to quote_pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusDraft), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusSent || q.SentAt == nil {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusNeedsQuote}, nil)
		jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusQuotePending {
					t.Fatalf("expected quote_pending, got %s", j.Status)
				}
				return j, nil
			},
		)

		if _, err := uc.Send(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve leaves job in quote_pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusSent), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusApproved || q.RespondedAt == nil {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)
		// No jobRepo expectations: approval must not touch the job, so the
		// explicit operator transition to approved still has a valid edge.

		if _, err := uc.Approve(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve fails from draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusDraft), nil)

		_, err := uc.Approve(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidQuoteTransition) {
			t.Fatalf("expected ErrInvalidQuoteTransition, got %v", err)
		}
	})

	t.Run("reject requires reason", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Reject(context.Background(), "q-1", "  ")
		if !errors.Is(err, ErrMissingRejectionReason) {
			t.Fatalf("expected ErrMissingRejectionReason, got %v", err)
		}
	})

	t.Run("reject records reason and advances job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusSent), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusRejected || q.RejectionReason != "too expensive" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusQuotePending}, nil)
		jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusQuoteRejected {
					t.Fatalf("expected quote_rejected, got %s", j.Status)
				}
				return j, nil
			},
		)

		if _, err := uc.Reject(context.Background(), "q-1", "too expensive"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expire leaves job untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusSent), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		if _, err := uc.Expire(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal quote rejects transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusApproved), nil)

		_, err := uc.Send(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteTerminal) {
			t.Fatalf("expected ErrQuoteTerminal, got %v", err)
		}
	})

	t.Run("approval flow ends with explicit job approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)

		job := entities.Job{ID: "job-1", Title: "Fix sink", CustomerID: "cus-1", Status: entities.JobStatusOpen}
		var quotes []entities.Quote

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").DoAndReturn(
			func(context.Context, string) (entities.Job, error) { return job, nil },
		).AnyTimes()
		jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				job = j
				return j, nil
			},
		).AnyTimes()
		quoteRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").DoAndReturn(
			func(context.Context, string) ([]entities.Quote, error) { return quotes, nil },
		).AnyTimes()
		quoteRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				quotes = append(quotes, q)
				return q, nil
			},
		).AnyTimes()
		quoteRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Quote, error) {
				for _, q := range quotes {
					if q.ID == id {
						return q, nil
					}
				}
				return entities.Quote{}, nil
			},
		).AnyTimes()
		quoteRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				for i := range quotes {
					if quotes[i].ID == q.ID {
						quotes[i] = q
					}
				}
				return q, nil
			},
		).AnyTimes()

		jobUC := NewJobUseCase(jobRepo, nil, quoteRepo)
		quoteUC := NewQuoteUseCase(quoteRepo, jobRepo)
		ctx := context.Background()

		if _, err := jobUC.Transition(ctx, "job-1", entities.JobStatusNeedsQuote, "op-1", ""); err != nil {
			t.Fatalf("needs_quote transition: %v", err)
		}

		q, err := quoteUC.Create(ctx, CreateQuoteInput{
			JobID: "job-1",
			Input: entities.PricingInput{HourlyRate: fPtr(50), EstimatedHours: fPtr(4), TaxRate: fPtr(8)},
		})
		if err != nil {
			t.Fatalf("create quote: %v", err)
		}
		if q.Totals.Subtotal != 200 || q.Totals.TaxAmount != 16 || q.Totals.Total != 216 {
			t.Fatalf("unexpected totals: %+v", q.Totals)
		}

		if _, err := quoteUC.Send(ctx, q.ID); err != nil {
			t.Fatalf("send quote: %v", err)
		}
		if job.Status != entities.JobStatusQuotePending {
			t.Fatalf("expected quote_pending after send, got %s", job.Status)
		}

		if _, err := quoteUC.Approve(ctx, q.ID); err != nil {
			t.Fatalf("approve quote: %v", err)
		}
		if job.Status != entities.JobStatusQuotePending {
			t.Fatalf("quote approval must not move the job, got %s", job.Status)
		}

		got, err := jobUC.Transition(ctx, "job-1", entities.JobStatusApproved, "op-1", "")
		if err != nil {
			t.Fatalf("explicit approval transition: %v", err)
		}
		if got.Status != entities.JobStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
	})

	t.Run("job update failure does not fail the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, jobRepo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoteAt(entities.QuoteStatusDraft), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, errors.New("db"))

		if _, err := uc.Send(context.Background(), "q-1"); err != nil {
			t.Fatalf("expected quote transition to succeed, got %v", err)
		}
	})
}
