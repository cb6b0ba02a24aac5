package request

import "brokerhub/internal/usecase"

type CreateContractorRequest struct {
	FirstName     string         `json:"first_name" binding:"required"`
	LastName      string         `json:"last_name" binding:"required"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       AddressRequest `json:"address"`
	HourlyRate    float64        `json:"hourly_rate"`
	FlatRate      float64        `json:"flat_rate"`
	TaxID         string         `json:"tax_id"`
	InsuranceInfo string         `json:"insurance_info"`
}

func (r CreateContractorRequest) ToInput(createdBy string) usecase.CreateContractorInput {
	return usecase.CreateContractorInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address.ToAddress(),
		HourlyRate:    r.HourlyRate,
		FlatRate:      r.FlatRate,
		TaxID:         r.TaxID,
		InsuranceInfo: r.InsuranceInfo,
		CreatedBy:     createdBy,
	}
}

type UpdateContractorRequest struct {
	FirstName     *string         `json:"first_name"`
	LastName      *string         `json:"last_name"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Address       *AddressRequest `json:"address"`
	HourlyRate    *float64        `json:"hourly_rate"`
	FlatRate      *float64        `json:"flat_rate"`
	TaxID         *string         `json:"tax_id"`
	InsuranceInfo *string         `json:"insurance_info"`
	Active        *bool           `json:"active"`
	Verified      *bool           `json:"verified"`
}

func (r UpdateContractorRequest) ToInput() usecase.UpdateContractorInput {
	return usecase.UpdateContractorInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       addressPtr(r.Address),
		HourlyRate:    r.HourlyRate,
		FlatRate:      r.FlatRate,
		TaxID:         r.TaxID,
		InsuranceInfo: r.InsuranceInfo,
		Active:        r.Active,
		Verified:      r.Verified,
	}
}
