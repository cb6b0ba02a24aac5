package entities

import (
	"errors"
	"testing"
)

func TestCustomerValidate(t *testing.T) {
	valid := Customer{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@example.com",
		Phone:     "5125550100",
		Address:   Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"},
	}

	t.Run("ok", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing first name", func(t *testing.T) {
		c := valid
		c.FirstName = "  "
		var ve ValidationError
		if err := c.Validate(); !errors.As(err, &ve) || ve.Field != "first_name" {
			t.Fatalf("expected first_name validation error, got %v", err)
		}
	})

	t.Run("phone must be 10 digits", func(t *testing.T) {
		c := valid
		c.Phone = "555-0100"
		var ve ValidationError
		if err := c.Validate(); !errors.As(err, &ve) || ve.Field != "phone" {
			t.Fatalf("expected phone validation error, got %v", err)
		}
	})

	t.Run("empty phone allowed", func(t *testing.T) {
		c := valid
		c.Phone = ""
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("state must be 2 letters", func(t *testing.T) {
		c := valid
		c.Address.State = "Texas"
		var ve ValidationError
		if err := c.Validate(); !errors.As(err, &ve) || ve.Field != "address.state" {
			t.Fatalf("expected state validation error, got %v", err)
		}
	})

	t.Run("partial billing address rejected", func(t *testing.T) {
		c := valid
		c.BillingAddress = &Address{City: "Dallas"}
		if err := c.Validate(); !errors.Is(err, ErrAddressIncomplete) {
			t.Fatalf("expected ErrAddressIncomplete, got %v", err)
		}
	})

	t.Run("complete billing address accepted", func(t *testing.T) {
		c := valid
		c.BillingAddress = &Address{Street: "9 Elm St", City: "Dallas", State: "TX", Zip: "75201"}
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.HasBillingAddress() {
			t.Fatalf("expected billing address on file")
		}
	})

	t.Run("no billing address", func(t *testing.T) {
		if valid.HasBillingAddress() {
			t.Fatalf("expected no billing address")
		}
	})
}

func TestContractorValidate(t *testing.T) {
	c := Contractor{FirstName: "Lee", LastName: "Nguyen", HourlyRate: 85}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.HourlyRate = -1
	if err := c.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
