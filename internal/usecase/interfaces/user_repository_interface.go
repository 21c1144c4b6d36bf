package interfaces

import (
	"context"
	"tradebill/internal/domain/entities"
)

// IUserRepository reads business profiles and owns the invoice numbering
// counter. Profiles are written by the onboarding stack, not by this
// service, so there is no Create/Update surface here.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)

	// NextInvoiceNumber atomically advances the profile's counter and
	// returns the new value (first call on a fresh profile yields 1001).
	// A missing profile yields 0 with no error; callers skip numbering.
	NextInvoiceNumber(ctx context.Context, id string) (int64, error)
}
