package entities

import "time"

// Client is a customer of the business: the "bill to" party on invoices and
// the party jobs are performed for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// UserID points at the owning business account (users table). Document ids
// are uuids; see the usecase layer for the validation rules.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
