package entities

import (
	"encoding/json"
	"testing"
)

func TestInvoiceData_UnmarshalEnvelope(t *testing.T) {
	raw := `{"invoice":{"id":"inv-1","invoiceNumber":"INV-1001","total":99.5},"user":{"id":"u-1"}}`
	var data InvoiceData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Invoice.ID != "inv-1" || data.Invoice.InvoiceNumber != "INV-1001" {
		t.Fatalf("unexpected invoice: %+v", data.Invoice)
	}
	if data.Invoice.Total.Float() != 99.5 {
		t.Fatalf("expected total 99.5, got %v", data.Invoice.Total.Float())
	}
}

func TestInvoiceData_UnmarshalBareDocument(t *testing.T) {
	raw := `{"id":"inv-2","status":"sent","lineItems":[{"description":"Labor","quantity":3,"rate":"75"}]}`
	var data InvoiceData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Invoice.ID != "inv-2" || data.Invoice.Status != InvoiceStatusSent {
		t.Fatalf("unexpected invoice: %+v", data.Invoice)
	}
	if len(data.Invoice.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(data.Invoice.LineItems))
	}
	if data.Invoice.LineItems[0].Rate.Float() != 75 {
		t.Fatalf("expected rate 75, got %v", data.Invoice.LineItems[0].Rate.Float())
	}
}
