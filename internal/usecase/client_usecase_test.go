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

const (
	testClientID  = "0b81e70f-7c83-4c6e-9a77-5a1f2e3d4c5b"
	testUserID    = "9c2e8f10-4a5b-4c6d-8e7f-1a2b3c4d5e6f"
	testJobID     = "4d3c2b1a-9e8f-4a5b-8c7d-6e5f4a3b2c1d"
	testInvoiceID = "7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "   ", UserID: testUserID})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "Dana", UserID: "auth0|abc"})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if uuid.Validate(c.ID) != nil {
					t.Fatalf("expected a generated uuid, got %q", c.ID)
				}
				if c.Name != "Dana Whitfield" {
					t.Fatalf("expected trimmed name, got %q", c.Name)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Client{Name: "  Dana Whitfield  ", UserID: testUserID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.UserID != testUserID {
			t.Fatalf("expected owner preserved, got %q", created.UserID)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "not-a-uuid")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), testClientID)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Name: "Dana"}, nil)

		client, err := uc.GetByID(context.Background(), " "+testClientID+" ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Name != "Dana" {
			t.Fatalf("unexpected client: %+v", client)
		}
	})
}

func TestClientUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(clients, nil, nil)

	clients.EXPECT().
		List(gomock.Any(), interfaces.ClientFilter{UserID: testUserID, Skip: 0, Limit: defaultListLimit}).
		Return([]entities.Client{{ID: testClientID}}, nil)

	got, err := uc.List(context.Background(), interfaces.ClientFilter{UserID: testUserID, Skip: -3, Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 client, got %d", len(got))
	}
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), testClientID, map[string]any{})
		if !errors.Is(err, ErrEmptyClientUpdate) {
			t.Fatalf("expected ErrEmptyClientUpdate, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().Update(gomock.Any(), testClientID, gomock.Any()).Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), testClientID, map[string]any{"name": "New"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		fields := map[string]any{"name": "New Name"}
		clients.EXPECT().Update(gomock.Any(), testClientID, fields).Return(entities.Client{ID: testClientID, Name: "New Name"}, nil)

		client, err := uc.Update(context.Background(), testClientID, fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Name != "New Name" {
			t.Fatalf("unexpected client: %+v", client)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, nil)
		if err := uc.Delete(context.Background(), "nope"); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().Delete(gomock.Any(), testClientID).Return(false, nil)

		if err := uc.Delete(context.Background(), testClientID); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().Delete(gomock.Any(), testClientID).Return(true, nil)

		if err := uc.Delete(context.Background(), testClientID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_ListJobs(t *testing.T) {
	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{}, nil)

		_, err := uc.ListJobs(context.Background(), testClientID, "")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("annotates invoice links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewClientUseCase(clients, jobs, invoices)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID}, nil)
		jobs.EXPECT().
			List(gomock.Any(), interfaces.JobFilter{ClientID: testClientID, Status: "completed"}).
			Return([]entities.Job{
				{ID: testJobID, Title: "Remodel", InvoiceID: testInvoiceID},
				{ID: "job-2-id", Title: "Repair"},
			}, nil)
		invoices.EXPECT().GetByID(gomock.Any(), testInvoiceID).
			Return(entities.Invoice{ID: testInvoiceID, InvoiceNumber: "INV-1001", Status: entities.InvoiceStatusSent}, nil)

		got, err := uc.ListJobs(context.Background(), testClientID, "completed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(got))
		}
		if got[0].InvoiceNumber != "INV-1001" || got[0].InvoiceStatus != entities.InvoiceStatusSent {
			t.Fatalf("expected invoice annotation, got %+v", got[0])
		}
		if got[1].InvoiceNumber != "" || got[1].InvoiceStatus != "" {
			t.Fatalf("expected no annotation for unlinked job, got %+v", got[1])
		}
	})

	t.Run("dangling invoice link annotates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewClientUseCase(clients, jobs, invoices)

		clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID}, nil)
		jobs.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]entities.Job{{ID: testJobID, InvoiceID: testInvoiceID}}, nil)
		invoices.EXPECT().GetByID(gomock.Any(), testInvoiceID).Return(entities.Invoice{}, nil)

		got, err := uc.ListJobs(context.Background(), testClientID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].InvoiceNumber != "" {
			t.Fatalf("expected bare job, got %+v", got)
		}
	})
}

func TestClientUseCase_ListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	uc := NewClientUseCase(clients, jobs, invoices)

	clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID}, nil)
	invoices.EXPECT().
		List(gomock.Any(), interfaces.InvoiceFilter{ClientID: testClientID, Status: "sent"}).
		Return([]entities.Invoice{
			{ID: testInvoiceID, JobID: testJobID},
			{ID: "inv-2-id"},
		}, nil)
	jobs.EXPECT().GetByID(gomock.Any(), testJobID).
		Return(entities.Job{ID: testJobID, Title: "Remodel", Location: "42 Birch Lane"}, nil)

	got, err := uc.ListInvoices(context.Background(), testClientID, "sent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(got))
	}
	if got[0].JobTitle != "Remodel" || got[0].JobLocation != "42 Birch Lane" {
		t.Fatalf("expected job annotation, got %+v", got[0])
	}
	if got[1].JobTitle != "" {
		t.Fatalf("expected no annotation for unlinked invoice, got %+v", got[1])
	}
}
