package entities

import "testing"

func TestAddressMatches(t *testing.T) {
	base := Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}

	t.Run("state compares case-insensitively", func(t *testing.T) {
		other := base
		other.State = "tx"
		if !base.Matches(other) {
			t.Fatalf("expected TX to match tx")
		}
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		other := Address{Street: " 1 Main St ", City: "Austin ", State: " TX", Zip: "78701 "}
		if !base.Matches(other) {
			t.Fatalf("expected trimmed fields to match")
		}
	})

	t.Run("street compares case-sensitively", func(t *testing.T) {
		other := base
		other.Street = "1 MAIN ST"
		if base.Matches(other) {
			t.Fatalf("expected street case to matter")
		}
	})

	t.Run("zip mismatch", func(t *testing.T) {
		other := base
		other.Zip = "78702"
		if base.Matches(other) {
			t.Fatalf("expected zip mismatch")
		}
	})
}

func TestAddressMergeFrom(t *testing.T) {
	dst := Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}
	src := Address{City: "Dallas", Zip: "75201"}

	got := dst.MergeFrom(src)
	if got.Street != "1 Main St" || got.State != "TX" {
		t.Fatalf("expected untouched fields preserved, got %+v", got)
	}
	if got.City != "Dallas" || got.Zip != "75201" {
		t.Fatalf("expected non-empty source fields to win, got %+v", got)
	}
}

func TestAddressCompleteness(t *testing.T) {
	full := Address{Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701"}
	if !full.IsComplete() || full.IsPartial() || full.IsEmpty() {
		t.Fatalf("expected full address to be complete only")
	}

	empty := Address{}
	if !empty.IsEmpty() || empty.IsPartial() || empty.IsComplete() {
		t.Fatalf("expected empty address to be empty only")
	}

	partial := Address{City: "Austin"}
	if !partial.IsPartial() || partial.IsEmpty() || partial.IsComplete() {
		t.Fatalf("expected partial address to be partial only")
	}
}
