package entities

import (
	"errors"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestComputeTotals(t *testing.T) {
	t.Run("hourly with tax rate", func(t *testing.T) {
		got, err := ComputeTotals(PricingInput{HourlyRate: f(50), EstimatedHours: f(4), TaxRate: f(8)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 200 || got.TaxAmount != 16 || got.Total != 216 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("flat plus materials", func(t *testing.T) {
		got, err := ComputeTotals(PricingInput{FlatAmount: f(300), MaterialsCost: f(45.5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 345.5 || got.TaxAmount != 0 || got.Total != 345.5 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("hourly rate without hours contributes nothing", func(t *testing.T) {
		got, err := ComputeTotals(PricingInput{HourlyRate: f(50), FlatAmount: f(100)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 100 {
			t.Fatalf("expected subtotal 100, got %v", got.Subtotal)
		}
	})

	t.Run("explicit tax amount overrides rate", func(t *testing.T) {
		got, err := ComputeTotals(PricingInput{FlatAmount: f(200), TaxRate: f(10), TaxAmount: f(5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TaxAmount != 5 || got.Total != 205 {
			t.Fatalf("expected override tax 5, got %+v", got)
		}
		if got.TaxRate != 10 {
			t.Fatalf("expected rate kept for display, got %v", got.TaxRate)
		}
	})

	t.Run("all fields absent", func(t *testing.T) {
		got, err := ComputeTotals(PricingInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Subtotal != 0 || got.Total != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("negative input rejected", func(t *testing.T) {
		inputs := []PricingInput{
			{HourlyRate: f(-1)},
			{EstimatedHours: f(-0.5)},
			{FlatAmount: f(-100)},
			{MaterialsCost: f(-3)},
			{TaxRate: f(-8)},
			{TaxAmount: f(-1)},
		}
		for _, in := range inputs {
			if _, err := ComputeTotals(in); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount for %+v, got %v", in, err)
			}
		}
	})
}

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{16.015, 16.02},
		{16.004, 16.0},
		{0, 0},
		{199.999, 200},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Errorf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTotalsRounded(t *testing.T) {
	in := PricingInput{HourlyRate: f(33.33), EstimatedHours: f(3), TaxRate: f(7.25)}
	raw, err := ComputeTotals(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := raw.Rounded()
	if got.Subtotal != 99.99 {
		t.Fatalf("expected subtotal 99.99, got %v", got.Subtotal)
	}
	if got.TaxAmount != 7.25 {
		t.Fatalf("expected tax 7.25, got %v", got.TaxAmount)
	}
	if got.Total != 107.24 {
		t.Fatalf("expected total 107.24, got %v", got.Total)
	}
}

func TestQuoteStatusTransitions(t *testing.T) {
	if !QuoteStatusDraft.CanTransitionTo(QuoteStatusSent) {
		t.Fatalf("expected draft -> sent")
	}
	for _, target := range []QuoteStatus{QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired} {
		if !QuoteStatusSent.CanTransitionTo(target) {
			t.Errorf("expected sent -> %s", target)
		}
		if QuoteStatusDraft.CanTransitionTo(target) {
			t.Errorf("expected draft -> %s to be denied", target)
		}
	}
	for _, terminal := range []QuoteStatus{QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired} {
		if !terminal.IsTerminal() {
			t.Errorf("expected %s to be terminal", terminal)
		}
		if terminal.CanTransitionTo(QuoteStatusSent) {
			t.Errorf("expected %s to allow no transitions", terminal)
		}
	}
}

func TestQuoteStatusIsActive(t *testing.T) {
	for _, s := range []QuoteStatus{QuoteStatusDraft, QuoteStatusSent} {
		if !s.IsActive() {
			t.Errorf("expected %s to be active", s)
		}
	}
	for _, s := range []QuoteStatus{QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired} {
		if s.IsActive() {
			t.Errorf("expected %s to be inactive", s)
		}
	}
}
