package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrEmptyClientUpdate = errors.New("client update has no fields")
)

// defaultListLimit caps listings when the caller does not pick a page size.
const defaultListLimit = 100

// ClientJob is a job of a client, annotated with the number and status of
// its linked invoice when that invoice exists.
type ClientJob struct {
	Job           entities.Job
	InvoiceNumber string
	InvoiceStatus entities.InvoiceStatus
}

// ClientInvoice is an invoice billed to a client, annotated with the title
// and location of its linked job when that job exists.
type ClientInvoice struct {
	Invoice     entities.Invoice
	JobTitle    string
	JobLocation string
}

// IClientUseCase exposes the client book: CRUD plus the per-client job and
// invoice listings backing the client detail screens.
//
// Document ids are uuids and are validated before any store call. userId
// values come from the identity provider and are treated as opaque except
// on Create, where a well-formed owner is required.
type IClientUseCase interface {
	Create(ctx context.Context, client entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	ListJobs(ctx context.Context, clientID, status string) ([]ClientJob, error)
	ListInvoices(ctx context.Context, clientID, status string) ([]ClientInvoice, error)
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	jobs     interfaces.IJobRepository
	invoices interfaces.IInvoiceRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, jobs interfaces.IJobRepository, invoices interfaces.IInvoiceRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, jobs: jobs, invoices: invoices}
}

func (u *ClientUseCase) Create(ctx context.Context, client entities.Client) (entities.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if uuid.Validate(client.UserID) != nil {
		return entities.Client{}, ErrInvalidUserID
	}

	now := time.Now().UTC()
	client.ID = uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now
	return u.clients.Create(ctx, client)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Client{}, ErrInvalidClientID
	}

	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return client, nil
}

func (u *ClientUseCase) List(ctx context.Context, filter interfaces.ClientFilter) ([]entities.Client, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return u.clients.List(ctx, filter)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, fields map[string]any) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Client{}, ErrInvalidClientID
	}
	if len(fields) == 0 {
		return entities.Client{}, ErrEmptyClientUpdate
	}

	client, err := u.clients.Update(ctx, id, fields)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return client, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return ErrInvalidClientID
	}

	deleted, err := u.clients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	return nil
}

func (u *ClientUseCase) ListJobs(ctx context.Context, clientID, status string) ([]ClientJob, error) {
	clientID = strings.TrimSpace(clientID)
	if uuid.Validate(clientID) != nil {
		return nil, ErrInvalidClientID
	}
	if err := u.requireClient(ctx, clientID); err != nil {
		return nil, err
	}

	jobs, err := u.jobs.List(ctx, interfaces.JobFilter{ClientID: clientID, Status: status})
	if err != nil {
		return nil, err
	}

	out := make([]ClientJob, 0, len(jobs))
	for _, job := range jobs {
		cj := ClientJob{Job: job}
		if job.InvoiceID != "" {
			inv, err := u.invoices.GetByID(ctx, job.InvoiceID)
			if err != nil {
				return nil, err
			}
			// Dangling links annotate nothing; the job itself still lists.
			if inv.ID != "" {
				cj.InvoiceNumber = inv.InvoiceNumber
				cj.InvoiceStatus = inv.Status
			}
		}
		out = append(out, cj)
	}
	return out, nil
}

func (u *ClientUseCase) ListInvoices(ctx context.Context, clientID, status string) ([]ClientInvoice, error) {
	clientID = strings.TrimSpace(clientID)
	if uuid.Validate(clientID) != nil {
		return nil, ErrInvalidClientID
	}
	if err := u.requireClient(ctx, clientID); err != nil {
		return nil, err
	}

	invoices, err := u.invoices.List(ctx, interfaces.InvoiceFilter{ClientID: clientID, Status: status})
	if err != nil {
		return nil, err
	}

	out := make([]ClientInvoice, 0, len(invoices))
	for _, inv := range invoices {
		ci := ClientInvoice{Invoice: inv}
		if inv.JobID != "" {
			job, err := u.jobs.GetByID(ctx, inv.JobID)
			if err != nil {
				return nil, err
			}
			if job.ID != "" {
				ci.JobTitle = job.Title
				ci.JobLocation = job.Location
			}
		}
		out = append(out, ci)
	}
	return out, nil
}

func (u *ClientUseCase) requireClient(ctx context.Context, clientID string) error {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrClientNotFound
	}
	return nil
}
