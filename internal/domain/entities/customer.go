package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrAddressIncomplete rejects a partially filled billing address: either all
// four fields are present or the customer has no billing address at all.
var ErrAddressIncomplete = errors.New("billing address must be fully populated or fully absent")

// ValidationError is a field-level schema violation. It is surfaced to the
// initiating form without mutating any entity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Customer is the party a job is performed for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The billing address is optional but atomic: all four fields present or all
// absent. A partially filled billing address is invalid.

type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address        Address  `json:"address"`
	BillingAddress *Address `json:"billing_address,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks schema-level field rules. It does not hit the network or
// the store; repository-level uniqueness is a separate concern.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ValidationError{Field: "first_name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return ValidationError{Field: "last_name", Reason: "must not be empty"}
	}
	if err := validatePhone(c.Phone); err != nil {
		return err
	}
	if err := validateStateCode("address.state", c.Address.State); err != nil {
		return err
	}
	if c.BillingAddress != nil && c.BillingAddress.IsPartial() {
		return ErrAddressIncomplete
	}
	if c.BillingAddress != nil && c.BillingAddress.IsComplete() {
		if err := validateStateCode("billing_address.state", c.BillingAddress.State); err != nil {
			return err
		}
	}
	return nil
}

// HasBillingAddress reports whether a complete billing address is on file;
// otherwise billing falls back to the service address.
func (c Customer) HasBillingAddress() bool {
	return c.BillingAddress != nil && c.BillingAddress.IsComplete()
}

func validatePhone(phone string) error {
	p := strings.TrimSpace(phone)
	if p == "" {
		return nil
	}
	if len(p) != 10 {
		return ValidationError{Field: "phone", Reason: "must be exactly 10 digits"}
	}
	for _, r := range p {
		if !unicode.IsDigit(r) {
			return ValidationError{Field: "phone", Reason: "must contain digits only"}
		}
	}
	return nil
}

func validateStateCode(field, state string) error {
	s := strings.TrimSpace(state)
	if s == "" {
		return nil
	}
	if len(s) != 2 {
		return ValidationError{Field: field, Reason: "must be a 2-letter state code"}
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return ValidationError{Field: field, Reason: "must contain letters only"}
		}
	}
	return nil
}
