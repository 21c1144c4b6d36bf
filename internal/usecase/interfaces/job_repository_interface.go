package interfaces

import (
	"context"
	"tradebill/internal/domain/entities"
)

// JobFilter narrows and windows List results. Zero-valued fields are
// ignored; Limit <= 0 means no cap.
type JobFilter struct {
	UserID   string
	ClientID string
	Status   string
	Skip     int
	Limit    int
}

// IJobRepository abstracts DynamoDB persistence for Job.
// See IClientRepository for the shared lookup conventions.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, id string, fields map[string]any) (entities.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}
