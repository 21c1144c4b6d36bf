package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus is the billing state shown on the printable document.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// LineItem is a single billable line on an invoice. Quantity and Rate are
// tolerant Numbers: malformed values count as 0 rather than breaking the
// invoice (see Number).
type LineItem struct {
	Description string `json:"description,omitempty"`
	Quantity    Number `json:"quantity,omitempty"`
	Rate        Number `json:"rate,omitempty"`
}

// Invoice is the billing document sent to a client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// UserID/ClientID are required document links (validated at creation).
// JobID optionally ties the invoice to the job it bills for.
// IssueDate/DueDate are raw strings, ISO-8601 when well-formed; the renderer
// formats what it can parse and passes everything else through untouched.
// Total is the externally supplied grand total; 0 means "not set" and makes
// the renderer fall back to its flat tax rule.
type Invoice struct {
	ID                 string        `json:"id"`
	InvoiceNumber      string        `json:"invoiceNumber,omitempty"`
	UserID             string        `json:"userId,omitempty"`
	ClientID           string        `json:"clientId,omitempty"`
	JobID              string        `json:"jobId,omitempty"`
	InvoiceTitle       string        `json:"invoiceTitle,omitempty"`
	InvoiceDescription string        `json:"invoiceDescription,omitempty"`
	IssueDate          string        `json:"issueDate,omitempty"`
	DueDate            string        `json:"dueDate,omitempty"`
	Status             InvoiceStatus `json:"status,omitempty"`
	LineItems          []LineItem    `json:"lineItems,omitempty"`
	Total              Number        `json:"total,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// InvoiceData is the render payload shape. Callers pass either the invoice
// document itself or a details-style envelope with the document under an
// "invoice" key; both decode to the same value.
type InvoiceData struct {
	Invoice Invoice
}

func (d *InvoiceData) UnmarshalJSON(b []byte) error {
	var envelope struct {
		Invoice *Invoice `json:"invoice"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil && envelope.Invoice != nil {
		d.Invoice = *envelope.Invoice
		return nil
	}
	return json.Unmarshal(b, &d.Invoice)
}
