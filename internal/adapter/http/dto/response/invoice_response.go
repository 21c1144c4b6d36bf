package response

import (
	"time"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase"
)

type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    entities.Number `json:"quantity"`
	Rate        entities.Number `json:"rate"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	return out
}

type InvoiceResponse struct {
	ID                 string             `json:"id"`
	InvoiceNumber      string             `json:"invoiceNumber,omitempty"`
	UserID             string             `json:"userId,omitempty"`
	ClientID           string             `json:"clientId,omitempty"`
	JobID              string             `json:"jobId,omitempty"`
	InvoiceTitle       string             `json:"invoiceTitle,omitempty"`
	InvoiceDescription string             `json:"invoiceDescription,omitempty"`
	IssueDate          string             `json:"issueDate,omitempty"`
	DueDate            string             `json:"dueDate,omitempty"`
	Status             string             `json:"status"`
	LineItems          []LineItemResponse `json:"lineItems"`
	Total              entities.Number    `json:"total"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

func FromInvoice(invoice entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                 invoice.ID,
		InvoiceNumber:      invoice.InvoiceNumber,
		UserID:             invoice.UserID,
		ClientID:           invoice.ClientID,
		JobID:              invoice.JobID,
		InvoiceTitle:       invoice.InvoiceTitle,
		InvoiceDescription: invoice.InvoiceDescription,
		IssueDate:          invoice.IssueDate,
		DueDate:            invoice.DueDate,
		Status:             string(invoice.Status),
		LineItems:          fromLineItems(invoice.LineItems),
		Total:              invoice.Total,
		CreatedAt:          invoice.CreatedAt,
		UpdatedAt:          invoice.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		out = append(out, FromInvoice(invoice))
	}
	return out
}

// ClientInvoiceResponse annotates an invoice with the title and location of
// the job it bills for, for the per-client invoice listing.
type ClientInvoiceResponse struct {
	InvoiceResponse
	JobTitle    string `json:"jobTitle,omitempty"`
	JobLocation string `json:"jobLocation,omitempty"`
}

func FromClientInvoice(invoice usecase.ClientInvoice) ClientInvoiceResponse {
	return ClientInvoiceResponse{
		InvoiceResponse: FromInvoice(invoice.Invoice),
		JobTitle:        invoice.JobTitle,
		JobLocation:     invoice.JobLocation,
	}
}

func FromClientInvoices(invoices []usecase.ClientInvoice) []ClientInvoiceResponse {
	out := make([]ClientInvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		out = append(out, FromClientInvoice(invoice))
	}
	return out
}

// InvoiceBlock is the partial invoice view embedded in job details.
type InvoiceBlock struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	Status        string          `json:"status"`
	Total         entities.Number `json:"total"`
	IssueDate     string          `json:"issueDate,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"`
}

func FromInvoiceBlock(invoice entities.Invoice) InvoiceBlock {
	return InvoiceBlock{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		Status:        string(invoice.Status),
		Total:         invoice.Total,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
	}
}

// InvoiceDetailsResponse is the invoice plus partial views of its linked
// documents. Blocks are null when the link is absent or dangling.
type InvoiceDetailsResponse struct {
	Invoice InvoiceResponse       `json:"invoice"`
	User    *BusinessProfileBlock `json:"user"`
	Client  *ClientBlock          `json:"client"`
	Job     *JobBlock             `json:"job"`
}

func FromInvoiceDetails(details usecase.InvoiceDetails) InvoiceDetailsResponse {
	out := InvoiceDetailsResponse{Invoice: FromInvoice(details.Invoice)}
	if details.User != nil {
		block := FromBusinessProfileBlock(*details.User)
		out.User = &block
	}
	if details.Client != nil {
		block := FromClientBlock(*details.Client)
		out.Client = &block
	}
	if details.Job != nil {
		block := FromJobBlock(*details.Job)
		out.Job = &block
	}
	return out
}

// PrintableParty is the issuing business as shown on the document. The keys
// are always present so the printable shape is stable for templating.
type PrintableParty struct {
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// PrintableRecipient is the billed client as shown on the document.
type PrintableRecipient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PrintableJob is the job context shown above the items table.
type PrintableJob struct {
	Title     string `json:"title"`
	Location  string `json:"location"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PrintableInvoiceResponse is a render-ready projection of an invoice and its
// linked documents: everything the document layout needs and nothing else.
type PrintableInvoiceResponse struct {
	InvoiceNumber string             `json:"invoiceNumber"`
	IssueDate     string             `json:"issueDate"`
	DueDate       string             `json:"dueDate"`
	Status        string             `json:"status"`
	From          PrintableParty     `json:"from"`
	To            PrintableRecipient `json:"to"`
	Job           *PrintableJob      `json:"job"`
	LineItems     []LineItemResponse `json:"lineItems"`
	Total         entities.Number    `json:"total"`
}

func FromInvoicePrintable(details usecase.InvoiceDetails) PrintableInvoiceResponse {
	out := PrintableInvoiceResponse{
		InvoiceNumber: details.Invoice.InvoiceNumber,
		IssueDate:     details.Invoice.IssueDate,
		DueDate:       details.Invoice.DueDate,
		Status:        string(details.Invoice.Status),
		LineItems:     fromLineItems(details.Invoice.LineItems),
		Total:         details.Invoice.Total,
	}
	if details.User != nil {
		out.From = PrintableParty{
			BusinessName: details.User.BusinessName,
			Email:        details.User.BusinessEmail,
			Phone:        details.User.BusinessPhone,
			Address:      details.User.BusinessAddress,
		}
	}
	if details.Client != nil {
		out.To = PrintableRecipient{
			Name:    details.Client.Name,
			Email:   details.Client.Email,
			Address: details.Client.Address,
		}
	}
	if details.Job != nil {
		out.Job = &PrintableJob{
			Title:     details.Job.Title,
			Location:  details.Job.Location,
			StartTime: details.Job.StartTime,
			EndTime:   details.Job.EndTime,
		}
	}
	return out
}

// InvoicePDFBase64Response carries the rendered document inline for callers
// that cannot take a binary body.
type InvoicePDFBase64Response struct {
	InvoiceID string `json:"invoice_id"`
	PDFBase64 string `json:"pdf_base64"`
}
