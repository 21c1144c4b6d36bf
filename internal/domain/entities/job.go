package entities

import "time"

// JobStatus tracks where a job sits in its lifecycle.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

// Job is a unit of work performed for a client (a site visit, an install,
// a repair).
//
// Storage model (DynamoDB):
//   - PK: id
//
// UserID is the subject issued by the external identity provider
// (e.g. "auth0|123456"), so unlike document ids it is never format-validated.
// ClientID and InvoiceID are optional links to the other collections.
// StartTime/EndTime are kept as raw strings; scheduling data arrives in
// whatever format the client app produced and is echoed back untouched.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      JobStatus `json:"status,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	ClientID    string    `json:"clientId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	InvoiceID   string    `json:"invoiceId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
