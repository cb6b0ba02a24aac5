package entities

import "strings"

// Address is the four-part US service address used by jobs, customers and
// contractors. All comparisons trim surrounding whitespace; the state code is
// compared case-insensitively because operators type both "tx" and "TX".

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Matches reports whether two addresses denote the same place: street, city and
// zip equal after trimming, state equal after trimming and upper-casing.
func (a Address) Matches(b Address) bool {
	return strings.TrimSpace(a.Street) == strings.TrimSpace(b.Street) &&
		strings.TrimSpace(a.City) == strings.TrimSpace(b.City) &&
		strings.EqualFold(strings.TrimSpace(a.State), strings.TrimSpace(b.State)) &&
		strings.TrimSpace(a.Zip) == strings.TrimSpace(b.Zip)
}

// MergeFrom returns a copy of a with every field the source supplies
// (non-empty after trimming) replaced by the source's value. Fields the
// source leaves blank keep their current value.
func (a Address) MergeFrom(src Address) Address {
	out := a
	if v := strings.TrimSpace(src.Street); v != "" {
		out.Street = v
	}
	if v := strings.TrimSpace(src.City); v != "" {
		out.City = v
	}
	if v := strings.TrimSpace(src.State); v != "" {
		out.State = v
	}
	if v := strings.TrimSpace(src.Zip); v != "" {
		out.Zip = v
	}
	return out
}

func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.Zip) == ""
}

func (a Address) IsComplete() bool {
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.State) != "" &&
		strings.TrimSpace(a.Zip) != ""
}

// IsPartial reports a half-filled address, which is invalid wherever an
// address is optional-but-atomic (customer billing address).
func (a Address) IsPartial() bool {
	return !a.IsEmpty() && !a.IsComplete()
}
