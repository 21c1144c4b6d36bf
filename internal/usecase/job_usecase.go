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
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidJobID    = errors.New("invalid job id")
	ErrInvalidJobTitle = errors.New("invalid job title")
	ErrEmptyJobUpdate  = errors.New("job update has no fields")
	ErrJobHasNoInvoice = errors.New("job has no invoice")
)

// JobDetails is a job with its related documents resolved. Any related
// pointer may be nil: a missing or dangling reference drops the block
// rather than failing the whole lookup.
type JobDetails struct {
	Job     entities.Job
	Client  *entities.Client
	User    *entities.User
	Invoice *entities.Invoice
}

// IJobUseCase exposes job scheduling operations.
//
// A job's userId is an external identity subject ("auth0|..." and friends)
// and is never format-checked. Its clientId is only verified against the
// client book when it is present AND well-formed; a present but malformed
// clientId is stored untouched, matching how imported jobs historically
// carried free-form references.
type IJobUseCase interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, filter interfaces.JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Job, error)
	Delete(ctx context.Context, id string) error
	Details(ctx context.Context, id string) (JobDetails, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
}

type JobUseCase struct {
	jobs     interfaces.IJobRepository
	clients  interfaces.IClientRepository
	users    interfaces.IUserRepository
	invoices interfaces.IInvoiceRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, clients interfaces.IClientRepository, users interfaces.IUserRepository, invoices interfaces.IInvoiceRepository) *JobUseCase {
	return &JobUseCase{jobs: jobs, clients: clients, users: users, invoices: invoices}
}

func (u *JobUseCase) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return entities.Job{}, ErrInvalidJobTitle
	}
	if job.Status == "" {
		job.Status = entities.JobStatusPending
	}

	if job.ClientID != "" && uuid.Validate(job.ClientID) == nil {
		client, err := u.clients.GetByID(ctx, job.ClientID)
		if err != nil {
			return entities.Job{}, err
		}
		if client.ID == "" {
			return entities.Job{}, ErrClientNotFound
		}
	}

	now := time.Now().UTC()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now
	return u.jobs.Create(ctx, job)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) List(ctx context.Context, filter interfaces.JobFilter) ([]entities.Job, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return u.jobs.List(ctx, filter)
}

func (u *JobUseCase) Update(ctx context.Context, id string, fields map[string]any) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Job{}, ErrInvalidJobID
	}
	if len(fields) == 0 {
		return entities.Job{}, ErrEmptyJobUpdate
	}

	job, err := u.jobs.Update(ctx, id, fields)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return ErrInvalidJobID
	}

	deleted, err := u.jobs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

func (u *JobUseCase) Details(ctx context.Context, id string) (JobDetails, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return JobDetails{}, err
	}

	details := JobDetails{Job: job}

	if job.ClientID != "" {
		client, err := u.clients.GetByID(ctx, job.ClientID)
		if err != nil {
			return JobDetails{}, err
		}
		if client.ID != "" {
			details.Client = &client
		}
	}
	if job.UserID != "" {
		user, err := u.users.GetByID(ctx, job.UserID)
		if err != nil {
			return JobDetails{}, err
		}
		if user.ID != "" {
			details.User = &user
		}
	}
	if job.InvoiceID != "" {
		inv, err := u.invoices.GetByID(ctx, job.InvoiceID)
		if err != nil {
			return JobDetails{}, err
		}
		if inv.ID != "" {
			details.Invoice = &inv
		}
	}
	return details, nil
}

// GetInvoice resolves the invoice a job points at. Jobs without a link and
// jobs whose link dangles both report ErrJobHasNoInvoice; callers cannot
// tell the two apart and should not need to.
func (u *JobUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.InvoiceID == "" {
		return entities.Invoice{}, ErrJobHasNoInvoice
	}

	inv, err := u.invoices.GetByID(ctx, job.InvoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrJobHasNoInvoice
	}
	return inv, nil
}
