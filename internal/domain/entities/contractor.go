package entities

import (
	"strings"
	"time"
)

// Contractor performs jobs on behalf of the brokerage.
//
// Storage model (DynamoDB):
//   - PK: id

type Contractor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address Address `json:"address"`

	HourlyRate float64 `json:"hourly_rate"`
	FlatRate   float64 `json:"flat_rate"`

	TaxID         string `json:"tax_id,omitempty"`
	InsuranceInfo string `json:"insurance_info,omitempty"`

	Active   bool `json:"active"`
	Verified bool `json:"verified"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Contractor) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ValidationError{Field: "first_name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return ValidationError{Field: "last_name", Reason: "must not be empty"}
	}
	if c.HourlyRate < 0 || c.FlatRate < 0 {
		return ErrInvalidAmount
	}
	if err := validatePhone(c.Phone); err != nil {
		return err
	}
	return validateStateCode("address.state", c.Address.State)
}
