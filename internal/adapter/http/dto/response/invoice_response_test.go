package response

import (
	"testing"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-1001",
		Status:        entities.InvoiceStatusSent,
		LineItems:     []entities.LineItem{{Description: "Labor", Quantity: 3, Rate: 75}},
		Total:         225,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.InvoiceNumber != "INV-1001" || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].Rate != 75 {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.Total != 225 {
		t.Fatalf("unexpected total: %v", res.Total)
	}
}

func TestFromInvoice_NilItemsBecomeEmptyList(t *testing.T) {
	res := FromInvoice(entities.Invoice{ID: "inv-1"})
	if res.LineItems == nil || len(res.LineItems) != 0 {
		t.Fatalf("expected empty list, got %+v", res.LineItems)
	}
}

func TestFromClientInvoice(t *testing.T) {
	ci := usecase.ClientInvoice{
		Invoice:     entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-1001"},
		JobTitle:    "Remodel",
		JobLocation: "42 Birch Lane",
	}

	res := FromClientInvoice(ci)
	if res.InvoiceNumber != "INV-1001" {
		t.Fatalf("unexpected invoice fields: %+v", res)
	}
	if res.JobTitle != "Remodel" || res.JobLocation != "42 Birch Lane" {
		t.Fatalf("unexpected job annotation: %+v", res)
	}
}

func TestFromInvoiceDetails(t *testing.T) {
	details := usecase.InvoiceDetails{
		Invoice: entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-1001"},
		User:    &entities.User{ID: "user-1", BusinessName: "Fox Plumbing", BusinessCategory: "plumbing"},
		Client:  &entities.Client{ID: "cl-1", Name: "Dana"},
	}

	res := FromInvoiceDetails(details)
	if res.Invoice.InvoiceNumber != "INV-1001" {
		t.Fatalf("unexpected invoice: %+v", res.Invoice)
	}
	if res.User == nil || res.User.BusinessName != "Fox Plumbing" || res.User.BusinessCategory != "plumbing" {
		t.Fatalf("unexpected user block: %+v", res.User)
	}
	if res.Client == nil || res.Client.Name != "Dana" {
		t.Fatalf("unexpected client block: %+v", res.Client)
	}
	if res.Job != nil {
		t.Fatalf("expected nil job block, got %+v", res.Job)
	}
}

func TestFromInvoicePrintable(t *testing.T) {
	details := usecase.InvoiceDetails{
		Invoice: entities.Invoice{
			InvoiceNumber: "INV-1001",
			IssueDate:     "2024-03-05",
			DueDate:       "2024-03-19",
			Status:        entities.InvoiceStatusSent,
			LineItems:     []entities.LineItem{{Description: "Labor", Quantity: 3, Rate: 75}},
			Total:         225,
		},
		User: &entities.User{
			BusinessName:    "Fox Plumbing",
			BusinessEmail:   "office@foxplumbing.example",
			BusinessPhone:   "555-0100",
			BusinessAddress: "9 Dock Street",
		},
		Client: &entities.Client{Name: "Dana Whitfield", Email: "dana@example.com"},
		Job:    &entities.Job{Title: "Remodel", Location: "42 Birch Lane"},
	}

	res := FromInvoicePrintable(details)
	if res.InvoiceNumber != "INV-1001" || res.Status != "sent" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if res.From.BusinessName != "Fox Plumbing" || res.From.Email != "office@foxplumbing.example" {
		t.Fatalf("unexpected from block: %+v", res.From)
	}
	if res.To.Name != "Dana Whitfield" || res.To.Email != "dana@example.com" {
		t.Fatalf("unexpected to block: %+v", res.To)
	}
	if res.Job == nil || res.Job.Title != "Remodel" {
		t.Fatalf("unexpected job block: %+v", res.Job)
	}
	if len(res.LineItems) != 1 || res.Total != 225 {
		t.Fatalf("unexpected items: %+v", res)
	}
}

func TestFromInvoicePrintable_MissingLinks(t *testing.T) {
	res := FromInvoicePrintable(usecase.InvoiceDetails{
		Invoice: entities.Invoice{InvoiceNumber: "INV-7"},
	})
	if res.From != (PrintableParty{}) || res.To != (PrintableRecipient{}) {
		t.Fatalf("expected zero party blocks, got %+v", res)
	}
	if res.Job != nil {
		t.Fatalf("expected nil job block, got %+v", res.Job)
	}
	if res.LineItems == nil {
		t.Fatalf("expected empty line items list")
	}
}
