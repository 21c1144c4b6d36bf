package interfaces

import (
	"context"
	"tradebill/internal/domain/entities"
)

// InvoiceFilter narrows and windows List results. Zero-valued fields are
// ignored; Limit <= 0 means no cap.
type InvoiceFilter struct {
	UserID   string
	ClientID string
	Status   string
	Skip     int
	Limit    int
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
// See IClientRepository for the shared lookup conventions.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}
