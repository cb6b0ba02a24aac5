package entities

import "testing"

func TestInvoiceKindFormatNumber(t *testing.T) {
	if got := InvoiceKindCustomer.FormatNumber(7); got != "INV-000007" {
		t.Fatalf("expected INV-000007, got %s", got)
	}
	if got := InvoiceKindContractor.FormatNumber(123456); got != "CINV-123456" {
		t.Fatalf("expected CINV-123456, got %s", got)
	}
}

func TestInvoiceStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to InvoiceStatus
	}{
		{InvoiceStatusDraft, InvoiceStatusSent},
		{InvoiceStatusDraft, InvoiceStatusVoid},
		{InvoiceStatusSent, InvoiceStatusPaid},
		{InvoiceStatusSent, InvoiceStatusOverdue},
		{InvoiceStatusSent, InvoiceStatusVoid},
		{InvoiceStatusOverdue, InvoiceStatusPaid},
		{InvoiceStatusOverdue, InvoiceStatusVoid},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to InvoiceStatus
	}{
		{InvoiceStatusDraft, InvoiceStatusPaid},
		{InvoiceStatusDraft, InvoiceStatusOverdue},
		{InvoiceStatusPaid, InvoiceStatusVoid},
		{InvoiceStatusVoid, InvoiceStatusSent},
		{InvoiceStatusPaid, InvoiceStatusSent},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestInvoiceStatusTerminal(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusVoid} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusOverdue} {
		if s.IsTerminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}
