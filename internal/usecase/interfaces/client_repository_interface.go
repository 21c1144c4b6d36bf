package interfaces

import (
	"context"
	"tradebill/internal/domain/entities"
)

// ClientFilter narrows and windows List results. Zero-valued fields are
// ignored; Limit <= 0 means no cap.
type ClientFilter struct {
	UserID string
	Skip   int
	Limit  int
}

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Lookup conventions shared by all repositories here:
//   - GetByID returns a zero-value entity (ID == "") when nothing matches.
//   - Update applies only the fields present in the map and returns the
//     stored document after the write; zero value means the id did not exist.
//   - Delete reports whether a document was actually removed.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, f ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
