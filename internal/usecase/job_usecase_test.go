package usecase

import (
	"context"
	"errors"
	"testing"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"
	mock_interfaces "tradebill/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestJobUseCase_Create(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Job{Title: "  "})
		if !errors.Is(err, ErrInvalidJobTitle) {
			t.Fatalf("expected ErrInvalidJobTitle, got %v", err)
		}
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if uuid.Validate(job.ID) != nil {
					t.Fatalf("expected a generated uuid, got %q", job.ID)
				}
				if job.Status != entities.JobStatusPending {
					t.Fatalf("expected pending status, got %q", job.Status)
				}
				if job.CreatedAt.IsZero() || job.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return job, nil
			},
		)

		job, err := uc.Create(context.Background(), entities.Job{Title: " Kitchen sink repair ", UserID: "auth0|5f8e7d6c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Title != "Kitchen sink repair" {
			t.Fatalf("expected trimmed title, got %q", job.Title)
		}
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) { return job, nil },
		)

		job, err := uc.Create(context.Background(), entities.Job{Title: "Remodel", Status: entities.JobStatusInProgress})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusInProgress {
			t.Fatalf("expected in_progress, got %q", job.Status)
		}
	})

	t.Run("unknown client rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewJobUseCase(jobs, clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), entities.Job{Title: "Remodel", ClientID: testClientID})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("malformed client reference stored untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewJobUseCase(jobs, clients, nil, nil)

		// No clients.GetByID expectation: a non-uuid reference skips the lookup.
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) { return job, nil },
		)

		job, err := uc.Create(context.Background(), entities.Job{Title: "Remodel", ClientID: "legacy-123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ClientID != "legacy-123" {
			t.Fatalf("expected reference kept, got %q", job.ClientID)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "42")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{}, nil)

		_, err := uc.GetByID(context.Background(), testJobID)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, Title: "Remodel"}, nil)

		job, err := uc.GetByID(context.Background(), testJobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Title != "Remodel" {
			t.Fatalf("unexpected job: %+v", job)
		}
	})
}

func TestJobUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(jobs, nil, nil, nil)

	jobs.EXPECT().
		List(gomock.Any(), interfaces.JobFilter{Status: "pending", Skip: 0, Limit: 25}).
		Return([]entities.Job{{ID: testJobID}}, nil)

	got, err := uc.List(context.Background(), interfaces.JobFilter{Status: "pending", Skip: -1, Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
}

func TestJobUseCase_Update(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil)
		_, err := uc.Update(context.Background(), testJobID, nil)
		if !errors.Is(err, ErrEmptyJobUpdate) {
			t.Fatalf("expected ErrEmptyJobUpdate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		fields := map[string]any{"status": "completed"}
		jobs.EXPECT().Update(gomock.Any(), testJobID, fields).
			Return(entities.Job{ID: testJobID, Status: entities.JobStatusCompleted}, nil)

		job, err := uc.Update(context.Background(), testJobID, fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusCompleted {
			t.Fatalf("unexpected job: %+v", job)
		}
	})
}

func TestJobUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(jobs, nil, nil, nil)

	jobs.EXPECT().Delete(gomock.Any(), testJobID).Return(false, nil)

	if err := uc.Delete(context.Background(), testJobID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUseCase_Details(t *testing.T) {
	t.Run("resolves related documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJobUseCase(jobs, clients, users, invoices)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{
			ID:        testJobID,
			Title:     "Remodel",
			ClientID:  testClientID,
			UserID:    "auth0|5f8e7d6c",
			InvoiceID: testInvoiceID,
		}, nil)
		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Name: "Dana"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "auth0|5f8e7d6c").Return(entities.User{ID: "auth0|5f8e7d6c", BusinessName: "Fox Plumbing"}, nil)
		invoices.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(entities.Invoice{ID: testInvoiceID, InvoiceNumber: "INV-1001"}, nil)

		details, err := uc.Details(context.Background(), testJobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Client == nil || details.Client.Name != "Dana" {
			t.Fatalf("expected client block, got %+v", details.Client)
		}
		if details.User == nil || details.User.BusinessName != "Fox Plumbing" {
			t.Fatalf("expected user block, got %+v", details.User)
		}
		if details.Invoice == nil || details.Invoice.InvoiceNumber != "INV-1001" {
			t.Fatalf("expected invoice block, got %+v", details.Invoice)
		}
	})

	t.Run("dangling references drop blocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJobUseCase(jobs, clients, users, invoices)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{
			ID:       testJobID,
			ClientID: testClientID,
		}, nil)
		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{}, nil)

		details, err := uc.Details(context.Background(), testJobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Client != nil || details.User != nil || details.Invoice != nil {
			t.Fatalf("expected no related blocks, got %+v", details)
		}
		if details.Job.ID != testJobID {
			t.Fatalf("expected the job itself, got %+v", details.Job)
		}
	})
}

func TestJobUseCase_GetInvoice(t *testing.T) {
	t.Run("job without link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID}, nil)

		_, err := uc.GetInvoice(context.Background(), testJobID)
		if !errors.Is(err, ErrJobHasNoInvoice) {
			t.Fatalf("expected ErrJobHasNoInvoice, got %v", err)
		}
	})

	t.Run("dangling link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, invoices)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, InvoiceID: testInvoiceID}, nil)
		invoices.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(entities.Invoice{}, nil)

		_, err := uc.GetInvoice(context.Background(), testJobID)
		if !errors.Is(err, ErrJobHasNoInvoice) {
			t.Fatalf("expected ErrJobHasNoInvoice, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, invoices)

		jobs.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, InvoiceID: testInvoiceID}, nil)
		invoices.EXPECT().GetByID(gomock.Any(), testInvoiceID).
			Return(entities.Invoice{ID: testInvoiceID, InvoiceNumber: "INV-1001"}, nil)

		inv, err := uc.GetInvoice(context.Background(), testJobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvoiceNumber != "INV-1001" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}
