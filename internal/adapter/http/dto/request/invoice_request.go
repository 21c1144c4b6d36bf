package request

import (
	"encoding/json"

	"tradebill/internal/domain/entities"
)

type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    entities.Number `json:"quantity"`
	Rate        entities.Number `json:"rate"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		Description: r.Description,
		Quantity:    r.Quantity,
		Rate:        r.Rate,
	}
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToEntity())
	}
	return out
}

type InvoiceCreateRequest struct {
	InvoiceNumber      string            `json:"invoiceNumber"`
	UserID             string            `json:"userId" binding:"required"`
	ClientID           string            `json:"clientId" binding:"required"`
	JobID              string            `json:"jobId"`
	InvoiceTitle       string            `json:"invoiceTitle"`
	InvoiceDescription string            `json:"invoiceDescription"`
	IssueDate          string            `json:"issueDate"`
	DueDate            string            `json:"dueDate"`
	Status             string            `json:"status"`
	LineItems          []LineItemRequest `json:"lineItems"`
	Total              entities.Number   `json:"total"`
}

func (r InvoiceCreateRequest) ToEntity() entities.Invoice {
	return entities.Invoice{
		InvoiceNumber:      r.InvoiceNumber,
		UserID:             r.UserID,
		ClientID:           r.ClientID,
		JobID:              r.JobID,
		InvoiceTitle:       r.InvoiceTitle,
		InvoiceDescription: r.InvoiceDescription,
		IssueDate:          r.IssueDate,
		DueDate:            r.DueDate,
		Status:             entities.InvoiceStatus(r.Status),
		LineItems:          toLineItems(r.LineItems),
		Total:              r.Total,
	}
}

type InvoiceUpdateRequest struct {
	InvoiceNumber      *string            `json:"invoiceNumber"`
	ClientID           *string            `json:"clientId"`
	JobID              *string            `json:"jobId"`
	InvoiceTitle       *string            `json:"invoiceTitle"`
	InvoiceDescription *string            `json:"invoiceDescription"`
	IssueDate          *string            `json:"issueDate"`
	DueDate            *string            `json:"dueDate"`
	Status             *string            `json:"status"`
	LineItems          *[]LineItemRequest `json:"lineItems"`
	Total              *entities.Number   `json:"total"`
}

func (r InvoiceUpdateRequest) ToUpdateMap() map[string]any {
	fields := map[string]any{}
	if r.InvoiceNumber != nil {
		fields["invoiceNumber"] = *r.InvoiceNumber
	}
	if r.ClientID != nil {
		fields["clientId"] = *r.ClientID
	}
	if r.JobID != nil {
		fields["jobId"] = *r.JobID
	}
	if r.InvoiceTitle != nil {
		fields["invoiceTitle"] = *r.InvoiceTitle
	}
	if r.InvoiceDescription != nil {
		fields["invoiceDescription"] = *r.InvoiceDescription
	}
	if r.IssueDate != nil {
		fields["issueDate"] = *r.IssueDate
	}
	if r.DueDate != nil {
		fields["dueDate"] = *r.DueDate
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.LineItems != nil {
		fields["lineItems"] = toLineItems(*r.LineItems)
	}
	if r.Total != nil {
		fields["total"] = *r.Total
	}
	return fields
}

// InvoicePDFRequest renders a document the caller already has in hand, with
// nothing read from the store. The body is either a details-shaped envelope
// ({"invoice": ..., "user": ..., "client": ...}) or a bare invoice record.
type InvoicePDFRequest struct {
	Invoice entities.Invoice
	User    entities.User
	Client  entities.Client
}

func (r *InvoicePDFRequest) UnmarshalJSON(data []byte) error {
	var doc entities.InvoiceData
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.Invoice = doc.Invoice

	var ctx struct {
		User   *entities.User   `json:"user"`
		Client *entities.Client `json:"client"`
	}
	if err := json.Unmarshal(data, &ctx); err == nil {
		if ctx.User != nil {
			r.User = *ctx.User
		}
		if ctx.Client != nil {
			r.Client = *ctx.Client
		}
	}
	return nil
}
