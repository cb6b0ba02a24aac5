package response

import (
	"time"

	"brokerhub/internal/domain/entities"
)

type CustomerResponse struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Address        AddressResponse  `json:"address"`
	BillingAddress *AddressResponse `json:"billing_address,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   fromAddress(c.Address),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.BillingAddress != nil {
		ba := fromAddress(*c.BillingAddress)
		resp.BillingAddress = &ba
	}
	return resp
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
