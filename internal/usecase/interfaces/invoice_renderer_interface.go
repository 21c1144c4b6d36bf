package interfaces

import "tradebill/internal/domain/entities"

// IInvoiceRenderer produces the printable PDF for an invoice.
//
// Rendering is a pure function of its inputs: no clock, no store, no shared
// state. Two calls with identical documents return identical bytes, which
// callers rely on for caching and for audit reproducibility. Zero-valued
// user/client profiles are legal and render with fallbacks.
type IInvoiceRenderer interface {
	CreateDocument(invoice entities.Invoice, user entities.User, client entities.Client) ([]byte, error)
	CreateDocumentBase64(invoice entities.Invoice, user entities.User, client entities.Client) (string, error)
}
