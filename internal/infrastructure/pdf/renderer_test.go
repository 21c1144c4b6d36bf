package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"testing"

	"tradebill/internal/domain/entities"
)

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-1001",
		InvoiceTitle:  "Bathroom remodel",
		IssueDate:     "2024-03-05",
		DueDate:       "2024-04-04",
		Status:        entities.InvoiceStatusSent,
		LineItems: []entities.LineItem{
			{Description: "Labor", Quantity: 3, Rate: 75},
			{Description: "PVC Pipe", Quantity: 5, Rate: 12.5},
		},
	}
}

func sampleUser() entities.User {
	return entities.User{
		ID:              "u-1",
		BusinessName:    "Apex Plumbing Co",
		BusinessEmail:   "office@apexplumbing.example",
		BusinessPhone:   "555-0132",
		BusinessAddress: "18 Canal Street, Springfield",
	}
}

func sampleClient() entities.Client {
	return entities.Client{
		ID:      "c-1",
		Name:    "Dana Whitfield",
		Email:   "dana@example.com",
		Address: "42 Birch Lane, Springfield",
	}
}

func TestStatusColor(t *testing.T) {
	st := defaultStyles()

	if got := st.statusColor("OVERDUE"); got != st.alert {
		t.Fatalf("expected alert color for OVERDUE, got %+v", got)
	}
	if got := st.statusColor("PAID"); got != st.primary {
		t.Fatalf("expected primary color for PAID, got %+v", got)
	}
	if got := st.statusColor("DRAFT"); got != st.primary {
		t.Fatalf("expected primary color for DRAFT, got %+v", got)
	}
}

func TestRenderer_CreateDocument(t *testing.T) {
	r := NewRenderer()

	data, err := r.CreateDocument(sampleInvoice(), sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a PDF header, got %q", data[:min(len(data), 8)])
	}
	if len(data) < 1000 {
		t.Fatalf("document suspiciously small: %d bytes", len(data))
	}
}

func TestRenderer_CreateDocumentIsDeterministic(t *testing.T) {
	r := NewRenderer()

	first, err := r.CreateDocument(sampleInvoice(), sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.CreateDocument(sampleInvoice(), sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical bytes for identical inputs (%d vs %d bytes)", len(first), len(second))
	}
}

func TestRenderer_CreateDocumentBase64(t *testing.T) {
	r := NewRenderer()

	raw, err := r.CreateDocument(sampleInvoice(), sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded, err := r.CreateDocumentBase64(sampleInvoice(), sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("expected valid base64: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("base64 body does not match the raw document")
	}
}

func TestRenderer_EmptyDocumentsRender(t *testing.T) {
	r := NewRenderer()

	data, err := r.CreateDocument(entities.Invoice{}, entities.User{}, entities.Client{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a PDF header for the empty document")
	}
}

func TestRenderer_LongItemListsPaginate(t *testing.T) {
	inv := sampleInvoice()
	inv.LineItems = nil
	for i := 0; i < 60; i++ {
		inv.LineItems = append(inv.LineItems, entities.LineItem{
			Description: fmt.Sprintf("Fixture batch %d with extended descriptive text that wraps onto more than one line", i+1),
			Quantity:    2,
			Rate:        9.75,
		})
	}

	data, err := NewRenderer().CreateDocument(inv, sampleUser(), sampleClient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a PDF header")
	}
}

func TestDocWriter_TotalsTaxRowSuppression(t *testing.T) {
	withTax := newDocWriter("2024-03-05")
	withTax.addTotals(billSummary{Subtotal: 100, Tax: 20, Total: 120})

	noTax := newDocWriter("2024-03-05")
	noTax.addTotals(billSummary{Subtotal: 100, Tax: -10, Total: 90})

	if got := withTax.y - noTax.y; !almostEqual(got, bodyLineH) {
		t.Fatalf("expected the tax row to add one body line (%v), got a delta of %v", bodyLineH, got)
	}
}

func TestDocWriter_ItemTablesBreakPages(t *testing.T) {
	w := newDocWriter("2024-03-05")

	items := make([]entities.LineItem, 0, 60)
	for i := 0; i < 60; i++ {
		items = append(items, entities.LineItem{Description: fmt.Sprintf("Material %d", i+1), Quantity: 1, Rate: 5})
	}
	w.addItemsSection("MATERIALS", items, sectionTotal(items))

	if got := w.pdf.PageCount(); got < 2 {
		t.Fatalf("expected the table to spill onto a second page, got %d page(s)", got)
	}
}
