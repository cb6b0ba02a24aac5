package response

import (
	"time"

	"brokerhub/internal/domain/entities"
)

type ContractorResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       AddressResponse `json:"address"`
	HourlyRate    float64         `json:"hourly_rate"`
	FlatRate      float64         `json:"flat_rate"`
	TaxID         string          `json:"tax_id,omitempty"`
	InsuranceInfo string          `json:"insurance_info,omitempty"`
	Active        bool            `json:"active"`
	Verified      bool            `json:"verified"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromContractor(c entities.Contractor) ContractorResponse {
	return ContractorResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       fromAddress(c.Address),
		HourlyRate:    c.HourlyRate,
		FlatRate:      c.FlatRate,
		TaxID:         c.TaxID,
		InsuranceInfo: c.InsuranceInfo,
		Active:        c.Active,
		Verified:      c.Verified,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromContractors(contractors []entities.Contractor) []ContractorResponse {
	out := make([]ContractorResponse, 0, len(contractors))
	for _, c := range contractors {
		out = append(out, FromContractor(c))
	}
	return out
}
