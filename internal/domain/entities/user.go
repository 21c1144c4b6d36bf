package entities

// User is the business profile behind an account: the "from" party printed
// on invoices. Profiles are managed by the identity/onboarding stack; this
// service reads them for rendering and owns only the invoice number counter.
//
// Storage model (DynamoDB):
//   - PK: id
//
// LastInvoiceNumber backs auto-numbering: the first generated invoice for a
// fresh profile is INV-1001 (counter base 1000).
type User struct {
	ID                string `json:"id"`
	BusinessName      string `json:"businessName,omitempty"`
	BusinessEmail     string `json:"businessEmail,omitempty"`
	BusinessPhone     string `json:"businessPhone,omitempty"`
	BusinessAddress   string `json:"businessAddress,omitempty"`
	BusinessCategory  string `json:"businessCategory,omitempty"`
	HourlyRate        Number `json:"hourlyRate,omitempty"`
	LastInvoiceNumber int64  `json:"lastInvoiceNumber,omitempty"`
}
