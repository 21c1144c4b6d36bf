package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrEmptyInvoiceUpdate = errors.New("invoice update has no fields")
	ErrRenderFailed       = errors.New("invoice pdf rendering failed")
)

// InvoiceDetails is an invoice with its related documents resolved. Any
// related pointer may be nil: a missing or dangling reference drops the
// block rather than failing the whole lookup. Both the details and the
// printable endpoints feed off this shape.
type InvoiceDetails struct {
	Invoice entities.Invoice
	User    *entities.User
	Client  *entities.Client
	Job     *entities.Job
}

// IInvoiceUseCase exposes invoicing operations: CRUD, context fan-out, and
// the PDF rendering entry points.
type IInvoiceUseCase interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	Details(ctx context.Context, id string) (InvoiceDetails, error)
	RenderPDF(ctx context.Context, id string) (entities.Invoice, []byte, error)
	RenderPDFBase64(ctx context.Context, id string) (entities.Invoice, string, error)
	RenderDocument(inv entities.Invoice, user entities.User, client entities.Client) ([]byte, error)
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	clients  interfaces.IClientRepository
	jobs     interfaces.IJobRepository
	users    interfaces.IUserRepository
	renderer interfaces.IInvoiceRenderer
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	clients interfaces.IClientRepository,
	jobs interfaces.IJobRepository,
	users interfaces.IUserRepository,
	renderer interfaces.IInvoiceRenderer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices: invoices,
		clients:  clients,
		jobs:     jobs,
		users:    users,
		renderer: renderer,
	}
}

// Create validates the owning references and assigns an invoice number from
// the user's counter when the caller did not pick one. A missing business
// profile leaves the number empty rather than failing the create.
func (u *InvoiceUseCase) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if uuid.Validate(inv.UserID) != nil {
		return entities.Invoice{}, ErrInvalidUserID
	}
	if uuid.Validate(inv.ClientID) != nil {
		return entities.Invoice{}, ErrInvalidClientID
	}

	client, err := u.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if client.ID == "" {
		return entities.Invoice{}, ErrClientNotFound
	}

	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusDraft
	}
	if inv.InvoiceNumber == "" {
		n, err := u.users.NextInvoiceNumber(ctx, inv.UserID)
		if err != nil {
			return entities.Invoice{}, err
		}
		if n > 0 {
			inv.InvoiceNumber = fmt.Sprintf("INV-%d", n)
		}
	}

	now := time.Now().UTC()
	inv.ID = uuid.NewString()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	return u.invoices.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return u.invoices.List(ctx, filter)
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, fields map[string]any) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if len(fields) == 0 {
		return entities.Invoice{}, ErrEmptyInvoiceUpdate
	}

	inv, err := u.invoices.Update(ctx, id, fields)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return ErrInvalidInvoiceID
	}

	deleted, err := u.invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	return nil
}

func (u *InvoiceUseCase) Details(ctx context.Context, id string) (InvoiceDetails, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return InvoiceDetails{}, err
	}

	details := InvoiceDetails{Invoice: inv}

	if inv.UserID != "" {
		user, err := u.users.GetByID(ctx, inv.UserID)
		if err != nil {
			return InvoiceDetails{}, err
		}
		if user.ID != "" {
			details.User = &user
		}
	}
	if inv.ClientID != "" {
		client, err := u.clients.GetByID(ctx, inv.ClientID)
		if err != nil {
			return InvoiceDetails{}, err
		}
		if client.ID != "" {
			details.Client = &client
		}
	}
	if inv.JobID != "" {
		job, err := u.jobs.GetByID(ctx, inv.JobID)
		if err != nil {
			return InvoiceDetails{}, err
		}
		if job.ID != "" {
			details.Job = &job
		}
	}
	return details, nil
}

func (u *InvoiceUseCase) RenderPDF(ctx context.Context, id string) (entities.Invoice, []byte, error) {
	inv, user, client, err := u.renderContext(ctx, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}

	raw, err := u.renderer.CreateDocument(inv, user, client)
	if err != nil {
		log.Printf("[invoice][usecase] render failed id=%s err=%v", id, err)
		return entities.Invoice{}, nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return inv, raw, nil
}

func (u *InvoiceUseCase) RenderPDFBase64(ctx context.Context, id string) (entities.Invoice, string, error) {
	inv, user, client, err := u.renderContext(ctx, id)
	if err != nil {
		return entities.Invoice{}, "", err
	}

	encoded, err := u.renderer.CreateDocumentBase64(inv, user, client)
	if err != nil {
		log.Printf("[invoice][usecase] render failed id=%s err=%v", id, err)
		return entities.Invoice{}, "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return inv, encoded, nil
}

// RenderDocument renders caller-supplied data without touching the store;
// zero-valued user and client profiles are legal.
func (u *InvoiceUseCase) RenderDocument(inv entities.Invoice, user entities.User, client entities.Client) ([]byte, error) {
	raw, err := u.renderer.CreateDocument(inv, user, client)
	if err != nil {
		log.Printf("[invoice][usecase] ad-hoc render failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return raw, nil
}

// renderContext loads the invoice plus the profile and client it points at.
// Missing profiles come back zero-valued; the renderer has fallbacks for
// every display field, so rendering proceeds with what exists.
func (u *InvoiceUseCase) renderContext(ctx context.Context, id string) (entities.Invoice, entities.User, entities.Client, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, entities.User{}, entities.Client{}, err
	}

	var user entities.User
	if inv.UserID != "" {
		if user, err = u.users.GetByID(ctx, inv.UserID); err != nil {
			return entities.Invoice{}, entities.User{}, entities.Client{}, err
		}
	}
	var client entities.Client
	if inv.ClientID != "" {
		if client, err = u.clients.GetByID(ctx, inv.ClientID); err != nil {
			return entities.Invoice{}, entities.User{}, entities.Client{}, err
		}
	}
	return inv, user, client, nil
}
