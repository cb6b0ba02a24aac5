package request

import "brokerhub/internal/usecase"

type CreateCustomerRequest struct {
	FirstName      string          `json:"first_name" binding:"required"`
	LastName       string          `json:"last_name" binding:"required"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        AddressRequest  `json:"address"`
	BillingAddress *AddressRequest `json:"billing_address"`
}

func (r CreateCustomerRequest) ToInput(createdBy string) usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address.ToAddress(),
		BillingAddress: addressPtr(r.BillingAddress),
		CreatedBy:      createdBy,
	}
}

type UpdateCustomerRequest struct {
	FirstName           *string         `json:"first_name"`
	LastName            *string         `json:"last_name"`
	Email               *string         `json:"email"`
	Phone               *string         `json:"phone"`
	Address             *AddressRequest `json:"address"`
	BillingAddress      *AddressRequest `json:"billing_address"`
	ClearBillingAddress bool            `json:"clear_billing_address"`
}

func (r UpdateCustomerRequest) ToInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		Phone:               r.Phone,
		Address:             addressPtr(r.Address),
		BillingAddress:      addressPtr(r.BillingAddress),
		ClearBillingAddress: r.ClearBillingAddress,
	}
}
