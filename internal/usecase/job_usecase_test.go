package usecase

import (
	"context"
	"errors"
	"testing"

	"brokerhub/internal/domain/entities"
	mock_interfaces "brokerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestJobUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateJobInput{CustomerID: "cus-1"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateJobInput{Title: "Fix sink"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(nil, custRepo, nil)

		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), CreateJobInput{Title: "Fix sink", CustomerID: "cus-1"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("derives address from customer when toggle on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, custRepo, nil)

		customer := entities.Customer{
			ID:      "cus-1",
			Address: entities.Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
		}
		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.Status != entities.JobStatusOpen {
					t.Fatalf("unexpected job: %+v", j)
				}
				if !j.Address.Matches(customer.Address) {
					t.Fatalf("expected derived address, got %+v", j.Address)
				}
				if j.Priority != entities.JobPriorityMedium {
					t.Fatalf("expected default priority, got %s", j.Priority)
				}
				if j.CreatedBy != "op-1" {
					t.Fatalf("expected created_by, got %q", j.CreatedBy)
				}
				return j, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateJobInput{
			Title:                 " Fix sink ",
			CustomerID:            "cus-1",
			SameAsCustomerAddress: true,
			CreatedBy:             "op-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "Fix sink" {
			t.Fatalf("expected trimmed title, got %q", res.Title)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(nil, custRepo, nil)

		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)

		_, err := uc.Create(context.Background(), CreateJobInput{Title: "Fix sink", CustomerID: "cus-1", Priority: "asap"})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})
}

func TestJobUseCase_Update(t *testing.T) {
	baseJob := entities.Job{
		ID:         "job-1",
		Title:      "Fix sink",
		CustomerID: "cus-1",
		Status:     entities.JobStatusOpen,
		Address:    entities.Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-9").Return(entities.Job{}, nil)

		_, err := uc.Update(context.Background(), "job-9", UpdateJobInput{})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("address edit ignored while mirroring customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, custRepo, nil)

		j := baseJob
		j.SameAsCustomerAddress = true
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{
			ID:      "cus-1",
			Address: entities.Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, got entities.Job) (entities.Job, error) {
				if got.Address.Street != "1 Main St" {
					t.Fatalf("expected customer address kept, got %+v", got.Address)
				}
				return got, nil
			},
		)

		_, err := uc.Update(context.Background(), "job-1", UpdateJobInput{
			Address: &entities.Address{Street: "99 Fake St", City: "Waco", State: "TX", Zip: "76701"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("toggle off freezes address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		j := baseJob
		j.SameAsCustomerAddress = true
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, got entities.Job) (entities.Job, error) {
				if got.SameAsCustomerAddress {
					t.Fatalf("expected toggle off")
				}
				if got.Address != baseJob.Address {
					t.Fatalf("expected frozen address, got %+v", got.Address)
				}
				return got, nil
			},
		)

		_, err := uc.Update(context.Background(), "job-1", UpdateJobInput{SameAsCustomerAddress: boolPtr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(baseJob, nil)

		_, err := uc.Update(context.Background(), "job-1", UpdateJobInput{Title: strPtr("  ")})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})
}

func TestJobUseCase_Transition(t *testing.T) {
	jobAt := func(s entities.JobStatus) entities.Job {
		return entities.Job{ID: "job-1", Title: "Fix sink", CustomerID: "cus-1", Status: s}
	}

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusOpen), nil)

		_, err := uc.Transition(context.Background(), "job-1", entities.JobStatusCompleted, "op-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("approved requires approved quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewJobUseCase(repo, nil, quoteRepo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusQuotePending), nil)
		quoteRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusSent},
		}, nil)

		_, err := uc.Transition(context.Background(), "job-1", entities.JobStatusApproved, "op-1", "")
		if !errors.Is(err, ErrMissingApprovedQuote) {
			t.Fatalf("expected ErrMissingApprovedQuote, got %v", err)
		}
	})

	t.Run("approved succeeds with approved quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewJobUseCase(repo, nil, quoteRepo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusQuotePending), nil)
		quoteRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Quote{
			{ID: "q-1", Status: entities.QuoteStatusApproved},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, got entities.Job) (entities.Job, error) {
				if got.Status != entities.JobStatusApproved {
					t.Fatalf("expected approved, got %s", got.Status)
				}
				return got, nil
			},
		)

		if _, err := uc.Transition(context.Background(), "job-1", entities.JobStatusApproved, "op-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("in progress stamps started at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusApproved), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, got entities.Job) (entities.Job, error) {
				if got.StartedAt == nil {
					t.Fatalf("expected started_at stamp")
				}
				return got, nil
			},
		)

		if _, err := uc.Transition(context.Background(), "job-1", entities.JobStatusInProgress, "op-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel requires actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusInProgress), nil)

		_, err := uc.Transition(context.Background(), "job-1", entities.JobStatusCancelled, "  ", "customer request")
		if !errors.Is(err, ErrMissingCancelledBy) {
			t.Fatalf("expected ErrMissingCancelledBy, got %v", err)
		}
	})

	t.Run("cancel records audit fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusNeedsQuote), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, got entities.Job) (entities.Job, error) {
				if got.Status != entities.JobStatusCancelled {
					t.Fatalf("expected cancelled, got %s", got.Status)
				}
				if got.CancelledAt == nil || got.CancelledBy != "op-1" || got.CancellationReason != "customer request" {
					t.Fatalf("expected cancellation audit fields, got %+v", got)
				}
				return got, nil
			},
		)

		if _, err := uc.Transition(context.Background(), "job-1", entities.JobStatusCancelled, "op-1", "customer request"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal job rejects further transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobAt(entities.JobStatusCancelled), nil)

		_, err := uc.Transition(context.Background(), "job-1", entities.JobStatusNeedsQuote, "op-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestJobUseCase_SuggestAddress(t *testing.T) {
	t.Run("in sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, custRepo, nil)

		addr := entities.Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", CustomerID: "cus-1", Address: addr}, nil)
		lower := addr
		lower.State = "tx"
		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1", Address: lower}, nil)

		got, err := uc.SuggestAddress(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.InSync {
			t.Fatalf("expected in sync despite state casing")
		}
	})

	t.Run("drift produces candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		custRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewJobUseCase(repo, custRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
			ID: "job-1", CustomerID: "cus-1",
			Address: entities.Address{Street: "2 Oak Ave", City: "Austin", State: "TX", Zip: "78701"},
		}, nil)
		custRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{
			ID:      "cus-1",
			Address: entities.Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
		}, nil)

		got, err := uc.SuggestAddress(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.InSync {
			t.Fatalf("expected drift")
		}
		if got.Candidate.Street != "1 Main St" {
			t.Fatalf("expected customer street preferred, got %+v", got.Candidate)
		}
	})
}
